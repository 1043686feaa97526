package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// UnspecifiedCustomer es el centinela que reemplaza un nombre de
// comprador en blanco.
const UnspecifiedCustomer = "Cliente no informado"

// TxRunner ejecuta el registro de una venta dentro de una transacción:
// fila de venta, decremento de stock y movimiento se confirman juntos.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// UseCase es el motor de ventas: convierte un decremento del libro de
// inventario en una venta registrada con total calculado.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el motor de ventas.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// RegisterSaleInput datos de una venta.
type RegisterSaleInput struct {
	ProductID     int64
	Quantity      int64
	PaymentMethod string
	CustomerName  string // en blanco -> UnspecifiedCustomer
}

// RegisterSale registra una venta:
//
//  1. bloquea el producto; ErrNotFound si no existe
//  2. ErrInsufficientStock si la cantidad excede la existencia
//  3. total = precio de venta actual × cantidad
//  4. inserta la venta (nombre de producto desnormalizado)
//  5. decrementa la existencia
//  6. registra el movimiento OUT_SALE con el nombre del comprador como
//     usuario del movimiento
//
// Los pasos 4-6 comparten transacción y transaction_id: nunca queda una
// venta sin decremento ni un decremento sin venta. Devuelve la venta
// persistida.
func (uc *UseCase) RegisterSale(ctx context.Context, in RegisterSaleInput) (*entity.Sale, error) {
	if in.Quantity <= 0 || strings.TrimSpace(in.PaymentMethod) == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := strings.TrimSpace(in.CustomerName)
	if customer == "" {
		customer = UnspecifiedCustomer
	}

	var sale *entity.Sale
	err := uc.txRunner.RunSale(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.Quantity > product.Quantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		txID := uuid.New().String()
		total := product.SalePrice.Mul(decimal.NewFromInt(in.Quantity))

		sale = &entity.Sale{
			TransactionID: txID,
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      in.Quantity,
			Date:          now,
			UnitPrice:     product.SalePrice,
			Total:         total,
			PaymentMethod: strings.TrimSpace(in.PaymentMethod),
			CustomerName:  customer,
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(ctx, product.ID, product.Quantity-in.Quantity); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.StockMovement{
			TransactionID: txID,
			ProductID:     product.ID,
			Type:          entity.MovementTypeOUTSale,
			Quantity:      in.Quantity,
			Date:          now,
			Username:      customer,
		})
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}
