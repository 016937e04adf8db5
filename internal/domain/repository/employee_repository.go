package repository

import "github.com/HaosShot/zapateria-pos/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByUserID(userID string) (*entity.Employee, error)
	List(limit, offset int) ([]*entity.Employee, error)
}
