package dto

import "time"

// SellRequest venta de un producto (solo worker).
type SellRequest struct {
	ProductID    string `json:"product_id"`
	Quantity     int    `json:"quantity"`
	CustomerName string `json:"customer_name"`
}

// SaleResponse venta registrada (snapshot inmutable del producto).
type SaleResponse struct {
	ID           string    `json:"id"`
	ProductName  string    `json:"product_name"`
	Brand        string    `json:"brand,omitempty"`
	Size         string    `json:"size,omitempty"`
	Quantity     int       `json:"quantity"`
	UnitPrice    string    `json:"unit_price"`
	TotalPrice   string    `json:"total_price"`
	SoldBy       string    `json:"sold_by"`
	CustomerName string    `json:"customer_name,omitempty"`
	SaleDate     time.Time `json:"sale_date"`
}

// ActivityLogResponse entrada de bitácora para el panel de admin.
type ActivityLogResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
