package contacts

import (
	"context"
	"strings"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// UseCase registro y listado de clientes y proveedores. Registros
// independientes: no participan en las invariantes del inventario.
type UseCase struct {
	customers repository.CustomerRepository
	suppliers repository.SupplierRepository
}

// NewUseCase construye el caso de uso de contactos.
func NewUseCase(customers repository.CustomerRepository, suppliers repository.SupplierRepository) *UseCase {
	return &UseCase{customers: customers, suppliers: suppliers}
}

// CreateCustomer registra un cliente. El nombre es obligatorio.
func (uc *UseCase) CreateCustomer(ctx context.Context, name, contact string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.customers.Create(ctx, &entity.Customer{Name: name, Contact: strings.TrimSpace(contact)})
}

// ListCustomers devuelve todos los clientes.
func (uc *UseCase) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	return uc.customers.List(ctx)
}

// CreateSupplier registra un proveedor. El nombre es obligatorio.
func (uc *UseCase) CreateSupplier(ctx context.Context, name, contact string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.suppliers.Create(ctx, &entity.Supplier{Name: name, Contact: strings.TrimSpace(contact)})
}

// ListSuppliers devuelve todos los proveedores.
func (uc *UseCase) ListSuppliers(ctx context.Context) ([]*entity.Supplier, error) {
	return uc.suppliers.List(ctx)
}
