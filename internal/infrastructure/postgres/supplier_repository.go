package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor y devuelve su id.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) (int64, error) {
	query := `INSERT INTO suppliers (name, contact) VALUES ($1, $2) RETURNING id`
	var id int64
	if err := r.q.QueryRow(ctx, query, supplier.Name, nullIfEmpty(supplier.Contact)).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert supplier: %w", err)
	}
	supplier.ID = id
	return id, nil
}

// List devuelve todos los proveedores ordenados por id.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, contact FROM suppliers ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		var contact *string
		if err := rows.Scan(&s.ID, &s.Name, &contact); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		if contact != nil {
			s.Contact = *contact
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
