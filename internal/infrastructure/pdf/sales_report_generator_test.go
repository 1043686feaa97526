package pdf_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/application/reports"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/pdf"
)

func sampleSummary() reports.Summary {
	return reports.Summary{
		TotalRevenue: decimal.RequireFromString("45.00"),
		TotalCost:    decimal.RequireFromString("30.00"),
		Profit:       decimal.RequireFromString("15.00"),
	}
}

func TestGenerate_DocumentoNoVacio(t *testing.T) {
	gen := pdf.NewSalesReportGenerator("Tienda Prueba")
	sales := []*entity.Sale{{
		ID:            1,
		ProductName:   "Arroz 5kg",
		Quantity:      2,
		Date:          time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
		UnitPrice:     decimal.RequireFromString("22.50"),
		Total:         decimal.RequireFromString("45.00"),
		PaymentMethod: "Efectivo",
		CustomerName:  "María",
	}}

	doc, err := gen.Generate(sales, sampleSummary())
	require.NoError(t, err)
	require.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]), "el documento debe ser un PDF válido")
}

func TestGenerate_SinVentas(t *testing.T) {
	gen := pdf.NewSalesReportGenerator("Tienda Prueba")

	doc, err := gen.Generate(nil, reports.Summary{
		TotalRevenue: decimal.Zero,
		TotalCost:    decimal.Zero,
		Profit:       decimal.Zero,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, doc, "un historial vacío igual produce el reporte con el resumen")
}
