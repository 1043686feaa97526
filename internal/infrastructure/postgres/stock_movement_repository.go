package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (transaction_id, product_id, type, quantity, date, username)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	username := (*string)(nil)
	if movement.Username != "" {
		username = &movement.Username
	}
	err := r.q.QueryRow(ctx, query,
		movement.TransactionID, movement.ProductID, movement.Type,
		movement.Quantity, movement.Date, username,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListWithProduct lista los movimientos más recientes primero, con el
// nombre del producto vía LEFT JOIN: los movimientos de productos
// eliminados siguen apareciendo, con ProductName nil.
func (r *StockMovementRepo) ListWithProduct(ctx context.Context) ([]repository.MovementRecord, error) {
	query := `
		SELECT m.id, m.product_id, p.name, m.type, m.quantity, m.date, m.username
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		ORDER BY m.date DESC, m.id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementRecord
	for rows.Next() {
		var rec repository.MovementRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.ProductName, &rec.Type,
			&rec.Quantity, &rec.Date, &rec.Username); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
