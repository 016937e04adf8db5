package repository

import "github.com/HaosShot/zapateria-pos/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas son inmutables: solo Create y lecturas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)
}
