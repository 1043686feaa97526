package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// Summary resumen financiero: ingreso, costo y utilidad estimada.
// TotalCost se calcula con el costo ACTUAL de cada producto, no con el
// costo al momento de la venta; ver ReportRepository.SalesTotals.
type Summary struct {
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	Profit       decimal.Decimal
}

// SalesReportGenerator renderiza el historial de ventas más el resumen a
// un documento PDF.
type SalesReportGenerator interface {
	Generate(sales []*entity.Sale, summary Summary) ([]byte, error)
}

// UseCase agregaciones de solo lectura sobre ventas y productos, más la
// exportación del reporte a PDF.
type UseCase struct {
	reports   repository.ReportRepository
	sales     repository.SaleRepository
	generator SalesReportGenerator
	outputDir string
}

// NewUseCase construye el caso de uso de reportes. outputDir es el
// directorio donde se escriben los PDF exportados.
func NewUseCase(
	reports repository.ReportRepository,
	sales repository.SaleRepository,
	generator SalesReportGenerator,
	outputDir string,
) *UseCase {
	return &UseCase{
		reports:   reports,
		sales:     sales,
		generator: generator,
		outputDir: outputDir,
	}
}

// FinancialSummary calcula ingreso total, costo total y utilidad.
func (uc *UseCase) FinancialSummary(ctx context.Context) (Summary, error) {
	revenue, cost, err := uc.reports.SalesTotals(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		TotalRevenue: revenue,
		TotalCost:    cost,
		Profit:       revenue.Sub(cost),
	}, nil
}

// ListSales devuelve el historial de ventas, más recientes primero.
func (uc *UseCase) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	return uc.sales.List(ctx)
}

// ExportSalesPDF genera el reporte de ventas con el resumen financiero y
// lo escribe en el directorio configurado. Devuelve la ruta del archivo.
func (uc *UseCase) ExportSalesPDF(ctx context.Context) (string, error) {
	sales, err := uc.sales.List(ctx)
	if err != nil {
		return "", err
	}
	summary, err := uc.FinancialSummary(ctx)
	if err != nil {
		return "", err
	}
	doc, err := uc.generator.Generate(sales, summary)
	if err != nil {
		return "", fmt.Errorf("generar reporte PDF: %w", err)
	}
	if err := os.MkdirAll(uc.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de reportes: %w", err)
	}
	path := filepath.Join(uc.outputDir, fmt.Sprintf("ventas-%s.pdf", time.Now().Format("20060102-150405")))
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return "", fmt.Errorf("escribir reporte PDF: %w", err)
	}
	return path, nil
}
