// Package money formatea montos en pesos con convención es-CO: punto de
// miles y coma decimal. Ej: 1234567.5 -> "$ 1.234.567,50".
//
// El agrupado se hace sobre la representación decimal exacta, sin pasar
// por float64: los montos conservan su precisión completa sin importar la
// magnitud.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format devuelve el monto con símbolo de pesos y dos decimales.
func Format(d decimal.Decimal) string {
	return "$ " + Plain(d)
}

// Plain devuelve el monto formateado sin símbolo, con dos decimales.
func Plain(d decimal.Decimal) string {
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	out := groupThousands(intPart) + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

// groupThousands inserta puntos de miles en un string de dígitos.
// Ej: "25000" -> "25.000", "1000000" -> "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}
