package dto

import "time"

// AddProductRequest alta de producto (solo worker). Name y Price son
// obligatorios; Price llega como texto para no perder precisión en el JSON
// y debe parsear como decimal. Stock por defecto 0.
type AddProductRequest struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Size  string `json:"size"`
	Price string `json:"price"`
	Stock int    `json:"stock"`
}

// ProductResponse producto persistido.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand,omitempty"`
	Size      string    `json:"size,omitempty"`
	Price     string    `json:"price"`
	Stock     int       `json:"stock"`
	AddedBy   string    `json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
}
