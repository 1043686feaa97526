package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y devuelve su id.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) (int64, error) {
	query := `INSERT INTO customers (name, contact) VALUES ($1, $2) RETURNING id`
	var id int64
	if err := r.q.QueryRow(ctx, query, customer.Name, nullIfEmpty(customer.Contact)).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	customer.ID = id
	return id, nil
}

// List devuelve todos los clientes ordenados por id.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, contact FROM customers ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		var contact *string
		if err := rows.Scan(&c.ID, &c.Name, &contact); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		if contact != nil {
			c.Contact = *contact
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
