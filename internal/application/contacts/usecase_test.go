package contacts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/application/contacts"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

type fakeCustomerRepo struct {
	customers []*entity.Customer
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) (int64, error) {
	cp := *c
	cp.ID = int64(len(r.customers) + 1)
	r.customers = append(r.customers, &cp)
	return cp.ID, nil
}

func (r *fakeCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	return r.customers, nil
}

type fakeSupplierRepo struct {
	suppliers []*entity.Supplier
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) (int64, error) {
	cp := *s
	cp.ID = int64(len(r.suppliers) + 1)
	r.suppliers = append(r.suppliers, &cp)
	return cp.ID, nil
}

func (r *fakeSupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	return r.suppliers, nil
}

func TestCreateCustomer_RecortaYPersiste(t *testing.T) {
	customers := &fakeCustomerRepo{}
	uc := contacts.NewUseCase(customers, &fakeSupplierRepo{})

	id, err := uc.CreateCustomer(context.Background(), "  María  ", " 3001234567 ")
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	require.Len(t, customers.customers, 1)
	assert.Equal(t, "María", customers.customers[0].Name)
	assert.Equal(t, "3001234567", customers.customers[0].Contact)
}

func TestCreateCustomer_NombreObligatorio(t *testing.T) {
	uc := contacts.NewUseCase(&fakeCustomerRepo{}, &fakeSupplierRepo{})

	_, err := uc.CreateCustomer(context.Background(), "   ", "contacto")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSupplier_NombreObligatorio(t *testing.T) {
	uc := contacts.NewUseCase(&fakeCustomerRepo{}, &fakeSupplierRepo{})

	_, err := uc.CreateSupplier(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListContactos(t *testing.T) {
	customers := &fakeCustomerRepo{}
	suppliers := &fakeSupplierRepo{}
	uc := contacts.NewUseCase(customers, suppliers)
	ctx := context.Background()

	_, err := uc.CreateCustomer(ctx, "María", "300")
	require.NoError(t, err)
	_, err = uc.CreateSupplier(ctx, "Distribuidora Norte", "601")
	require.NoError(t, err)

	gotCustomers, err := uc.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, gotCustomers, 1)

	gotSuppliers, err := uc.ListSuppliers(ctx)
	require.NoError(t, err)
	assert.Len(t, gotSuppliers, 1)
}
