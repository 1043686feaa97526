package repository

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y devuelve el id asignado.
	Create(ctx context.Context, product *entity.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity fija la cantidad en existencia. Los casos de uso la
	// calculan bajo bloqueo de fila; el movimiento de auditoría se registra
	// en la misma transacción.
	UpdateQuantity(ctx context.Context, id int64, quantity int64) error
	// List devuelve el catálogo completo ordenado por id ascendente.
	List(ctx context.Context) ([]*entity.Product, error)
	// Delete elimina el producto. No cascada sobre ventas ni movimientos.
	// Devuelve domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id int64) error
}
