package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registro inmutable de una venta. Copia desnormalizada de los atributos
// del producto al momento de vender: el producto puede cambiar o borrarse después
// sin afectar el histórico. TotalPrice siempre es UnitPrice × Quantity.
type Sale struct {
	ID           string
	ProductName  string
	Brand        string
	Size         string
	Quantity     int
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
	SoldBy       string // UserID del vendedor
	CustomerName string // opcional
	SaleDate     time.Time
}
