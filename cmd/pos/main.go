package main

import (
	"context"
	"os"

	"github.com/jhoicas/tienda-pos/internal/application/auth"
	"github.com/jhoicas/tienda-pos/internal/application/contacts"
	"github.com/jhoicas/tienda-pos/internal/application/ledger"
	"github.com/jhoicas/tienda-pos/internal/application/reports"
	"github.com/jhoicas/tienda-pos/internal/application/sales"
	infrapdf "github.com/jhoicas/tienda-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-pos/internal/interfaces/cli"
	"github.com/jhoicas/tienda-pos/pkg/config"
	"github.com/jhoicas/tienda-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	seeded, err := postgres.SeedDefaultProducts(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar productos iniciales")
	}
	if seeded > 0 {
		log.Info().Int("productos", seeded).Msg("catálogo inicial cargado")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo)
	ledgerUC := ledger.NewUseCase(txRunner, productRepo, movementRepo, int64(cfg.Inventory.LowStockThreshold))
	salesUC := sales.NewUseCase(txRunner)
	contactsUC := contacts.NewUseCase(customerRepo, supplierRepo)

	pdfGenerator := infrapdf.NewSalesReportGenerator(cfg.App.Name)
	reportsUC := reports.NewUseCase(reportRepo, saleRepo, pdfGenerator, cfg.Reports.OutputDir)

	shell := cli.New(os.Stdin, os.Stdout, log, authUC, ledgerUC, salesUC, contactsUC, reportsUC)
	if err := shell.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("shell finalizado con error")
	}

	log.Info().Msg("aplicación detenida")
}
