package reports_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/application/reports"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

type fakeReportRepo struct {
	revenue decimal.Decimal
	cost    decimal.Decimal
	err     error
}

func (r *fakeReportRepo) SalesTotals(context.Context) (decimal.Decimal, decimal.Decimal, error) {
	return r.revenue, r.cost, r.err
}

type fakeSaleRepo struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(context.Context, *entity.Sale) error { panic("no usado") }

func (r *fakeSaleRepo) List(context.Context) ([]*entity.Sale, error) {
	return r.sales, nil
}

type fakeGenerator struct {
	doc []byte
	err error

	gotSales   []*entity.Sale
	gotSummary reports.Summary
}

func (g *fakeGenerator) Generate(sales []*entity.Sale, summary reports.Summary) ([]byte, error) {
	g.gotSales = sales
	g.gotSummary = summary
	return g.doc, g.err
}

func sampleSales() []*entity.Sale {
	return []*entity.Sale{{
		ID:            1,
		TransactionID: "tx-1",
		ProductID:     1,
		ProductName:   "Arroz 5kg",
		Quantity:      2,
		Date:          time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC),
		UnitPrice:     decimal.RequireFromString("22.50"),
		Total:         decimal.RequireFromString("45.00"),
		PaymentMethod: "Efectivo",
		CustomerName:  "María",
	}}
}

func TestFinancialSummary_CalculaUtilidad(t *testing.T) {
	repo := &fakeReportRepo{
		revenue: decimal.RequireFromString("45.00"),
		cost:    decimal.RequireFromString("30.00"),
	}
	uc := reports.NewUseCase(repo, &fakeSaleRepo{}, &fakeGenerator{}, t.TempDir())

	s, err := uc.FinancialSummary(context.Background())
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("45.00").Equal(s.TotalRevenue))
	assert.True(t, decimal.RequireFromString("30.00").Equal(s.TotalCost))
	assert.True(t, decimal.RequireFromString("15.00").Equal(s.Profit),
		"utilidad = ingreso - costo")
}

func TestFinancialSummary_SinVentas(t *testing.T) {
	repo := &fakeReportRepo{revenue: decimal.Zero, cost: decimal.Zero}
	uc := reports.NewUseCase(repo, &fakeSaleRepo{}, &fakeGenerator{}, t.TempDir())

	s, err := uc.FinancialSummary(context.Background())
	require.NoError(t, err)
	assert.True(t, s.Profit.IsZero())
}

func TestExportSalesPDF_EscribeElArchivo(t *testing.T) {
	dir := t.TempDir()
	gen := &fakeGenerator{doc: []byte("%PDF-falso")}
	uc := reports.NewUseCase(
		&fakeReportRepo{
			revenue: decimal.RequireFromString("45.00"),
			cost:    decimal.RequireFromString("30.00"),
		},
		&fakeSaleRepo{sales: sampleSales()},
		gen,
		dir,
	)

	path, err := uc.ExportSalesPDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path), "el archivo debe quedar en el directorio configurado")
	assert.True(t, strings.HasPrefix(filepath.Base(path), "ventas-"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-falso"), data)

	require.Len(t, gen.gotSales, 1, "el generador recibe el historial completo")
	assert.True(t, decimal.RequireFromString("15.00").Equal(gen.gotSummary.Profit),
		"el generador recibe el resumen ya calculado")
}

func TestExportSalesPDF_ErrorDelGenerador(t *testing.T) {
	dir := t.TempDir()
	uc := reports.NewUseCase(
		&fakeReportRepo{revenue: decimal.Zero, cost: decimal.Zero},
		&fakeSaleRepo{},
		&fakeGenerator{err: errors.New("fuente no disponible")},
		dir,
	)

	_, err := uc.ExportSalesPDF(context.Background())
	require.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no debe quedar archivo a medias")
}
