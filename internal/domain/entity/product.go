package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product un artículo del inventario de la zapatería. Stock nunca puede quedar
// negativo: la venta lo decrementa con un UPDATE condicional (stock >= cantidad).
type Product struct {
	ID        string
	Name      string
	Brand     string
	Size      string // talla, ej. "42"
	Price     decimal.Decimal
	Stock     int
	AddedBy   string // UserID del que lo registró
	CreatedAt time.Time
}
