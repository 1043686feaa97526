package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ReportRepository consultas de solo lectura para el resumen financiero.
type ReportRepository interface {
	// SalesTotals devuelve el ingreso total (suma de Sale.Total) y el costo
	// total de lo vendido. El costo se calcula uniendo cada venta con el
	// costo ACTUAL del producto, no el costo al momento de la venta; las
	// ventas de productos eliminados aportan ingreso pero no costo.
	SalesTotals(ctx context.Context) (revenue, cost decimal.Decimal, err error)
}
