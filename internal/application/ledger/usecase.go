package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/application/auth"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// UseCase es el libro de inventario: CRUD del catálogo y entradas/salidas
// de stock. Invariante: toda mutación de cantidad vía StockIn/StockOut
// registra exactamente un movimiento en la misma transacción, de modo que
// Product.Quantity sea siempre el total materializado del log.
type UseCase struct {
	txRunner          TxRunner
	products          repository.ProductRepository
	movements         repository.StockMovementRepository
	lowStockThreshold int64
}

// NewUseCase construye el libro de inventario. threshold define desde qué
// cantidad un producto se marca con stock bajo en los listados.
func NewUseCase(
	txRunner TxRunner,
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	threshold int64,
) *UseCase {
	return &UseCase{
		txRunner:          txRunner,
		products:          products,
		movements:         movements,
		lowStockThreshold: threshold,
	}
}

// CreateProductInput datos para dar de alta un producto.
type CreateProductInput struct {
	Name      string
	SalePrice decimal.Decimal
	CostPrice decimal.Decimal
	Quantity  int64
	Weight    decimal.Decimal
	Brand     string
}

// ProductPatch campos editables de un producto; nil = sin cambio.
type ProductPatch struct {
	Name      *string
	SalePrice *decimal.Decimal
	CostPrice *decimal.Decimal
	Quantity  *int64
	Weight    *decimal.Decimal
	Brand     *string
}

// ProductRow entrada de listado: producto más la marca de stock bajo.
type ProductRow struct {
	Product  *entity.Product
	LowStock bool
}

// CreateProduct valida y persiste un producto nuevo; devuelve el id
// asignado. No hay unicidad de nombre.
func (uc *UseCase) CreateProduct(ctx context.Context, in CreateProductInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, domain.ErrInvalidInput
	}
	if in.SalePrice.IsNegative() || in.CostPrice.IsNegative() || in.Weight.IsNegative() || in.Quantity < 0 {
		return 0, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		Name:      strings.TrimSpace(in.Name),
		SalePrice: in.SalePrice,
		CostPrice: in.CostPrice,
		Quantity:  in.Quantity,
		Weight:    in.Weight,
		Brand:     strings.TrimSpace(in.Brand),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return uc.products.Create(ctx, product)
}

// EditProduct aplica un patch de campos sobre el producto. Los campos
// numéricos se validan con la misma regla de no-negatividad del alta antes
// de persistir. La edición directa de Quantity es un camino administrativo
// que NO registra movimiento; las rutas
// auditadas son StockIn, StockOut y el motor de ventas.
func (uc *UseCase) EditProduct(ctx context.Context, id int64, patch ProductPatch) error {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return domain.ErrInvalidInput
		}
		product.Name = name
	}
	if patch.SalePrice != nil {
		if patch.SalePrice.IsNegative() {
			return domain.ErrInvalidInput
		}
		product.SalePrice = *patch.SalePrice
	}
	if patch.CostPrice != nil {
		if patch.CostPrice.IsNegative() {
			return domain.ErrInvalidInput
		}
		product.CostPrice = *patch.CostPrice
	}
	if patch.Quantity != nil {
		if *patch.Quantity < 0 {
			return domain.ErrInvalidInput
		}
		product.Quantity = *patch.Quantity
	}
	if patch.Weight != nil {
		if patch.Weight.IsNegative() {
			return domain.ErrInvalidInput
		}
		product.Weight = *patch.Weight
	}
	if patch.Brand != nil {
		product.Brand = strings.TrimSpace(*patch.Brand)
	}
	product.UpdatedAt = time.Now()
	return uc.products.Update(ctx, product)
}

// DeleteProduct elimina el producto. Sin cascada: ventas y movimientos
// históricos conservan el product_id como referencia débil.
func (uc *UseCase) DeleteProduct(ctx context.Context, id int64) error {
	return uc.products.Delete(ctx, id)
}

// StockIn suma qty unidades al producto y registra el movimiento IN, todo
// dentro de una transacción.
func (uc *UseCase) StockIn(ctx context.Context, id int64, qty int64, sess auth.Session) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.UpdateQuantity(ctx, id, product.Quantity+qty); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.StockMovement{
			TransactionID: uuid.New().String(),
			ProductID:     id,
			Type:          entity.MovementTypeIN,
			Quantity:      qty,
			Date:          time.Now(),
			Username:      sess.Username,
		})
	})
}

// StockOut resta qty unidades del producto y registra el movimiento OUT.
// Falla con ErrInsufficientStock sin tocar nada si qty excede la
// existencia actual.
func (uc *UseCase) StockOut(ctx context.Context, id int64, qty int64, sess auth.Session) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if qty > product.Quantity {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateQuantity(ctx, id, product.Quantity-qty); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.StockMovement{
			TransactionID: uuid.New().String(),
			ProductID:     id,
			Type:          entity.MovementTypeOUT,
			Quantity:      qty,
			Date:          time.Now(),
			Username:      sess.Username,
		})
	})
}

// ListProducts devuelve el catálogo ordenado por id ascendente, marcando
// stock bajo cuando la cantidad es menor o igual al umbral configurado.
func (uc *UseCase) ListProducts(ctx context.Context) ([]ProductRow, error) {
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ProductRow{
			Product:  p,
			LowStock: p.Quantity <= uc.lowStockThreshold,
		})
	}
	return rows, nil
}

// ListMovements devuelve el log de movimientos, más recientes primero,
// con el nombre del producto resuelto.
func (uc *UseCase) ListMovements(ctx context.Context) ([]repository.MovementRecord, error) {
	return uc.movements.ListWithProduct(ctx)
}
