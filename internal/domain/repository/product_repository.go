package repository

import "github.com/HaosShot/zapateria-pos/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Usado dentro de transacciones para garantizar consistencia del stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Solo tiene
	// sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	// DecrementStock resta quantity de forma condicional:
	//   UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $1
	// Devuelve domain.ErrInsufficientStock si ninguna fila cambió.
	DecrementStock(id string, quantity int) error
	ListAvailable() ([]*entity.Product, error)
}
