package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentencias de arranque del esquema. Seis relaciones; sales y
// stock_movements guardan product_id sin FOREIGN KEY: la referencia es
// débil para que el historial sobreviva a la eliminación del producto.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		sale_price NUMERIC(12,2) NOT NULL,
		cost_price NUMERIC(12,2) NOT NULL,
		quantity   BIGINT NOT NULL,
		weight     NUMERIC(10,3) NOT NULL,
		brand      TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id             BIGSERIAL PRIMARY KEY,
		transaction_id TEXT NOT NULL,
		product_id     BIGINT NOT NULL,
		product_name   TEXT NOT NULL,
		quantity       BIGINT NOT NULL,
		date           TIMESTAMPTZ NOT NULL,
		unit_price     NUMERIC(12,2) NOT NULL,
		total          NUMERIC(12,2) NOT NULL,
		payment_method TEXT NOT NULL,
		customer_name  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		id             BIGSERIAL PRIMARY KEY,
		transaction_id TEXT NOT NULL,
		product_id     BIGINT NOT NULL,
		type           TEXT NOT NULL,
		quantity       BIGINT NOT NULL,
		date           TIMESTAMPTZ NOT NULL,
		username       TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id      BIGSERIAL PRIMARY KEY,
		name    TEXT NOT NULL,
		contact TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id      BIGSERIAL PRIMARY KEY,
		name    TEXT NOT NULL,
		contact TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate crea las tablas si no existen. Idempotente; se ejecuta en cada
// arranque.
func Migrate(ctx context.Context, q Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}

type seedProduct struct {
	name      string
	salePrice string
	costPrice string
	quantity  int64
	weight    string
	brand     string
}

// Catálogo inicial que se carga solo la primera vez (tabla vacía).
var defaultProducts = []seedProduct{
	{"Arroz 5kg", "22.50", "15.00", 20, "5.0", "Diana"},
	{"Frijol 1kg", "8.90", "5.00", 35, "1.0", "La Costeña"},
	{"Pasta 500g", "4.50", "2.50", 40, "0.5", "Doria"},
	{"Azúcar 1kg", "5.20", "3.00", 30, "1.0", "Manuelita"},
	{"Aceite 900ml", "7.80", "5.20", 25, "0.9", "Premier"},
	{"Café 500g", "12.90", "8.00", 15, "0.5", "Sello Rojo"},
	{"Leche 1L", "4.10", "2.90", 50, "1.0", "Alquería"},
	{"Harina 1kg", "6.00", "3.80", 28, "1.0", "Haz de Oros"},
	{"Sal 1kg", "2.30", "1.00", 60, "1.0", "Refisal"},
	{"Galletas 350g", "3.80", "2.00", 22, "0.35", "Noel"},
}

// SeedDefaultProducts inserta el catálogo inicial si no hay productos.
// Devuelve cuántos insertó (0 si la tabla ya tenía datos).
func SeedDefaultProducts(ctx context.Context, q Querier) (int, error) {
	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("contar productos: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	const insert = `
		INSERT INTO products (name, sale_price, cost_price, quantity, weight, brand, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())`
	for _, p := range defaultProducts {
		sale, err := decimal.NewFromString(p.salePrice)
		if err != nil {
			return 0, fmt.Errorf("seed %q: %w", p.name, err)
		}
		cost, err := decimal.NewFromString(p.costPrice)
		if err != nil {
			return 0, fmt.Errorf("seed %q: %w", p.name, err)
		}
		weight, err := decimal.NewFromString(p.weight)
		if err != nil {
			return 0, fmt.Errorf("seed %q: %w", p.name, err)
		}
		if _, err := q.Exec(ctx, insert, p.name, sale, cost, p.quantity, weight, p.brand); err != nil {
			return 0, fmt.Errorf("insertar producto inicial %q: %w", p.name, err)
		}
	}
	return len(defaultProducts), nil
}
