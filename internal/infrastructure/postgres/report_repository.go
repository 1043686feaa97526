package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el resumen financiero.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// SalesTotals devuelve ingreso total y costo total de lo vendido.
// El costo une cada venta con el costo ACTUAL del producto (no el costo
// histórico) y el INNER JOIN excluye del costo las ventas de productos
// eliminados. Usa COALESCE para devolver cero si no hay filas.
func (r *ReportRepo) SalesTotals(ctx context.Context) (revenue, cost decimal.Decimal, err error) {
	const revenueQuery = `SELECT COALESCE(SUM(total), 0) FROM sales`
	if err = r.q.QueryRow(ctx, revenueQuery).Scan(&revenue); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("reports.SalesTotals revenue: %w", err)
	}

	const costQuery = `
		SELECT COALESCE(SUM(s.quantity * p.cost_price), 0)
		FROM sales s
		JOIN products p ON p.id = s.product_id`
	if err = r.q.QueryRow(ctx, costQuery).Scan(&cost); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("reports.SalesTotals cost: %w", err)
	}
	return revenue, cost, nil
}
