package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN      = "IN"       // entrada de mercancía
	MovementTypeOUT     = "OUT"      // salida manual
	MovementTypeOUTSale = "OUT_SALE" // salida generada por una venta
)

// StockMovement es el registro de auditoría de un cambio de existencias.
// Es append-only: nunca se actualiza ni se elimina. Quantity siempre es
// positivo; el tipo determina el signo efectivo sobre el stock.
// ProductID es una referencia débil: el historial sobrevive a la
// eliminación del producto.
type StockMovement struct {
	ID            int64
	TransactionID string // agrupa el movimiento con la operación que lo originó
	ProductID     int64
	Type          string
	Quantity      int64
	Date          time.Time
	Username      string // usuario que ejecutó la operación; vacío si no aplica
}
