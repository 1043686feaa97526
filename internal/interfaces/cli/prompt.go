package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompt lee valores tipados desde la terminal, reintentando ante entrada
// inválida. Un error de lectura (EOF incluido) se propaga para que el
// shell termine limpio.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt construye un Prompt sobre los streams dados.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// Line muestra la etiqueta y devuelve la línea leída sin el salto final.
func (p *Prompt) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Int pide un entero >= min, reintentando hasta obtener uno válido.
func (p *Prompt) Int(label string, min int64) (int64, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		v, convErr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if convErr != nil {
			fmt.Fprintln(p.out, "Valor inválido.")
			continue
		}
		if v < min {
			fmt.Fprintf(p.out, "Digite un número >= %d.\n", min)
			continue
		}
		return v, nil
	}
}

// Decimal pide un decimal >= min. Acepta coma como separador decimal.
func (p *Prompt) Decimal(label string, min decimal.Decimal) (decimal.Decimal, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return decimal.Zero, err
		}
		normalized := strings.ReplaceAll(strings.TrimSpace(line), ",", ".")
		v, convErr := decimal.NewFromString(normalized)
		if convErr != nil {
			fmt.Fprintln(p.out, "Valor inválido.")
			continue
		}
		if v.LessThan(min) {
			fmt.Fprintf(p.out, "Digite un número >= %s.\n", min.String())
			continue
		}
		return v, nil
	}
}

// Password pide una contraseña. La entrada se lee como línea normal; la
// terminal hace eco (sin dependencia de modo raw).
func (p *Prompt) Password(label string) (string, error) {
	return p.Line(label)
}
