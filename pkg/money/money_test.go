package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-pos/pkg/money"
)

func TestFormat_ConvencionEsCO(t *testing.T) {
	casos := []struct {
		in   string
		want string
	}{
		{"0", "$ 0,00"},
		{"22.50", "$ 22,50"},
		{"45.00", "$ 45,00"},
		{"1234567.5", "$ 1.234.567,50"},
		{"-45.00", "$ -45,00"},
	}
	for _, c := range casos {
		got := money.Format(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got, "monto %s", c.in)
	}
}

func TestPlain_SinSimbolo(t *testing.T) {
	got := money.Plain(decimal.RequireFromString("1000"))
	assert.Equal(t, "1.000,00", got)
}

// TestPlain_MagnitudesGrandes verifica que montos fuera del rango exacto
// de float64 conservan todos sus dígitos.
func TestPlain_MagnitudesGrandes(t *testing.T) {
	got := money.Plain(decimal.RequireFromString("12345678901234567.89"))
	assert.Equal(t, "12.345.678.901.234.567,89", got)
}
