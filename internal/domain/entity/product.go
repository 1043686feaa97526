package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Quantity es el total materializado del log de movimientos: todo camino
// que lo modifique debe registrar exactamente un StockMovement en la misma
// transacción.
type Product struct {
	ID        int64
	Name      string
	SalePrice decimal.Decimal // precio de venta al público
	CostPrice decimal.Decimal // costo de compra
	Quantity  int64           // unidades en existencia, nunca negativo
	Weight    decimal.Decimal // peso en kg
	Brand     string          // marca, opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}
