package repository

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas. Append-only.
type SaleRepository interface {
	// Create persiste la venta y rellena sale.ID con el id asignado.
	Create(ctx context.Context, sale *entity.Sale) error
	// List devuelve el historial ordenado por fecha descendente.
	List(ctx context.Context) ([]*entity.Sale, error)
}
