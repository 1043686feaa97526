package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una venta registrada. Append-only.
// ProductName y UnitPrice se desnormalizan al momento de la venta para que
// el historial conserve los valores históricos aunque el producto cambie
// de precio o sea eliminado (referencia débil por ProductID).
type Sale struct {
	ID            int64
	TransactionID string
	ProductID     int64
	ProductName   string
	Quantity      int64
	Date          time.Time
	UnitPrice     decimal.Decimal
	Total         decimal.Decimal // UnitPrice × Quantity, calculado al vender
	PaymentMethod string
	CustomerName  string // nunca vacío: se usa un centinela si no se informa
}
