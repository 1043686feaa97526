package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/application/sales"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El runner ejecuta el callback directo sobre los fakes;
// los tests de fallo verifican que no quedan escrituras parciales.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	product *entity.Product
}

func (r *fakeProductRepo) Create(context.Context, *entity.Product) (int64, error) {
	panic("no usado")
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetForUpdate(ctx, id)
}

func (r *fakeProductRepo) GetForUpdate(_ context.Context, id int64) (*entity.Product, error) {
	if r.product == nil || r.product.ID != id {
		return nil, nil
	}
	cp := *r.product
	return &cp, nil
}

func (r *fakeProductRepo) Update(context.Context, *entity.Product) error { panic("no usado") }

func (r *fakeProductRepo) UpdateQuantity(_ context.Context, id int64, quantity int64) error {
	if r.product == nil || r.product.ID != id {
		return domain.ErrNotFound
	}
	r.product.Quantity = quantity
	return nil
}

func (r *fakeProductRepo) List(context.Context) ([]*entity.Product, error) { panic("no usado") }
func (r *fakeProductRepo) Delete(context.Context, int64) error             { panic("no usado") }

type fakeMovementRepo struct {
	movements []entity.StockMovement
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}

func (r *fakeMovementRepo) ListWithProduct(context.Context) ([]repository.MovementRecord, error) {
	panic("no usado")
}

type fakeSaleRepo struct {
	sales []entity.Sale
}

func (r *fakeSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	s.ID = int64(len(r.sales) + 1)
	r.sales = append(r.sales, *s)
	return nil
}

func (r *fakeSaleRepo) List(context.Context) ([]*entity.Sale, error) { panic("no usado") }

type fakeTxRunner struct {
	movements *fakeMovementRepo
	products  *fakeProductRepo
	sales     *fakeSaleRepo
}

func (t *fakeTxRunner) RunSale(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(t.movements, t.products, t.sales)
}

func newEngine(quantity int64) (*sales.UseCase, *fakeTxRunner) {
	runner := &fakeTxRunner{
		movements: &fakeMovementRepo{},
		products: &fakeProductRepo{product: &entity.Product{
			ID:        1,
			Name:      "Arroz 5kg",
			SalePrice: decimal.RequireFromString("22.50"),
			CostPrice: decimal.RequireFromString("15.00"),
			Quantity:  quantity,
		}},
		sales: &fakeSaleRepo{},
	}
	return sales.NewUseCase(runner), runner
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSale_Completo(t *testing.T) {
	uc, runner := newEngine(20)

	sale, err := uc.RegisterSale(context.Background(), sales.RegisterSaleInput{
		ProductID:     1,
		Quantity:      2,
		PaymentMethod: "Efectivo",
		CustomerName:  "María",
	})
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.True(t, decimal.RequireFromString("45.00").Equal(sale.Total),
		"total = precio unitario 22.50 × 2")
	assert.True(t, decimal.RequireFromString("22.50").Equal(sale.UnitPrice))
	assert.Equal(t, "Arroz 5kg", sale.ProductName, "el nombre se desnormaliza al vender")
	assert.Equal(t, "María", sale.CustomerName)
	assert.EqualValues(t, 1, sale.ID)

	assert.EqualValues(t, 18, runner.products.product.Quantity, "el stock baja 20 → 18")

	require.Len(t, runner.movements.movements, 1, "exactamente un movimiento por venta")
	m := runner.movements.movements[0]
	assert.Equal(t, entity.MovementTypeOUTSale, m.Type)
	assert.EqualValues(t, 2, m.Quantity)
	assert.Equal(t, "María", m.Username, "el usuario del movimiento es el comprador")
	assert.Equal(t, sale.TransactionID, m.TransactionID,
		"venta y movimiento comparten transaction_id")
}

func TestRegisterSale_ClienteNoInformado(t *testing.T) {
	uc, runner := newEngine(20)

	sale, err := uc.RegisterSale(context.Background(), sales.RegisterSaleInput{
		ProductID:     1,
		Quantity:      1,
		PaymentMethod: "Tarjeta",
		CustomerName:  "   ",
	})
	require.NoError(t, err)

	assert.Equal(t, sales.UnspecifiedCustomer, sale.CustomerName)
	assert.Equal(t, sales.UnspecifiedCustomer, runner.movements.movements[0].Username)
}

func TestRegisterSale_StockInsuficiente_NoEscribeNada(t *testing.T) {
	uc, runner := newEngine(3)

	_, err := uc.RegisterSale(context.Background(), sales.RegisterSaleInput{
		ProductID:     1,
		Quantity:      4,
		PaymentMethod: "Efectivo",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.EqualValues(t, 3, runner.products.product.Quantity)
	assert.Empty(t, runner.sales.sales, "no debe quedar venta registrada")
	assert.Empty(t, runner.movements.movements, "no debe quedar movimiento registrado")
}

func TestRegisterSale_ProductoNoExiste(t *testing.T) {
	uc, _ := newEngine(20)

	_, err := uc.RegisterSale(context.Background(), sales.RegisterSaleInput{
		ProductID:     99,
		Quantity:      1,
		PaymentMethod: "Efectivo",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterSale_DatosInvalidos(t *testing.T) {
	uc, _ := newEngine(20)
	ctx := context.Background()

	_, err := uc.RegisterSale(ctx, sales.RegisterSaleInput{
		ProductID: 1, Quantity: 0, PaymentMethod: "Efectivo",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero debe rechazarse")

	_, err = uc.RegisterSale(ctx, sales.RegisterSaleInput{
		ProductID: 1, Quantity: 1, PaymentMethod: "  ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "forma de pago en blanco debe rechazarse")
}
