package cli_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/interfaces/cli"
)

func newPrompt(input string) (*cli.Prompt, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return cli.NewPrompt(strings.NewReader(input), out), out
}

func TestPrompt_Line_RecortaElSalto(t *testing.T) {
	p, _ := newPrompt("hola mundo\r\n")

	got, err := p.Line("Nombre: ")
	require.NoError(t, err)
	assert.Equal(t, "hola mundo", got)
}

func TestPrompt_Line_EOF(t *testing.T) {
	p, _ := newPrompt("")

	_, err := p.Line("Nombre: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompt_Int_ReintentaHastaValido(t *testing.T) {
	p, out := newPrompt("abc\n-1\n7\n")

	got, err := p.Int("Cantidad: ", 0)
	require.NoError(t, err)
	assert.EqualValues(t, 7, got)

	assert.Contains(t, out.String(), "Valor inválido.", "texto no numérico debe reintentar")
	assert.Contains(t, out.String(), "Digite un número >= 0.", "bajo el mínimo debe reintentar")
}

func TestPrompt_Int_EOFDuranteReintento(t *testing.T) {
	p, _ := newPrompt("abc\n")

	_, err := p.Int("Cantidad: ", 0)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompt_Decimal_AceptaComa(t *testing.T) {
	p, _ := newPrompt("12,50\n")

	got, err := p.Decimal("Precio: ", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("12.50").Equal(got))
}

func TestPrompt_Decimal_ReintentaBajoElMinimo(t *testing.T) {
	p, out := newPrompt("-0,5\n0,5\n")

	got, err := p.Decimal("Peso: ", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.5").Equal(got))
	assert.Contains(t, out.String(), "Digite un número >= 0.")
}
