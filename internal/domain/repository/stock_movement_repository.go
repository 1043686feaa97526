package repository

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// MovementRecord es un movimiento unido con el nombre del producto para
// listados. ProductName es nil cuando el producto fue eliminado (la
// referencia es débil y el historial sobrevive). Username es nil cuando
// la operación no registró usuario.
type MovementRecord struct {
	ID          int64
	ProductID   int64
	ProductName *string
	Type        string
	Quantity    int64
	Date        time.Time
	Username    *string
}

// StockMovementRepository define el puerto de persistencia para el log de
// movimientos. Solo inserta y lista: el log es append-only.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListWithProduct devuelve los movimientos ordenados por fecha
	// descendente, con el nombre del producto resuelto vía LEFT JOIN.
	ListWithProduct(ctx context.Context) ([]MovementRecord, error)
}
