package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Inventory.LowStockThreshold)
	assert.Equal(t, "reportes", cfg.Reports.OutputDir)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
}

func TestLoad_EnteroDesdeEnv(t *testing.T) {
	t.Setenv("LOW_STOCK_THRESHOLD", "9")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Inventory.LowStockThreshold)
}

// TestLoad_EnteroInvalidoUsaElDefault verifica que un valor no numérico
// en el entorno no desactiva la alerta de stock bajo en silencio.
func TestLoad_EnteroInvalidoUsaElDefault(t *testing.T) {
	t.Setenv("LOW_STOCK_THRESHOLD", "cinco")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Inventory.LowStockThreshold)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "postgres", Password: "p@ss:word",
		DBName: "tienda_pos", SSLMode: "disable",
	}

	dsn := db.ConnectionString()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%3Aword", "la contraseña debe ir con URL encoding")

	db.DatabaseURL = "postgresql://todo@host/db"
	assert.Equal(t, "postgresql://todo@host/db", db.ConnectionString(),
		"DATABASE_URL tiene prioridad sobre los campos sueltos")
}
