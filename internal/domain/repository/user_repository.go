package repository

import "github.com/HaosShot/zapateria-pos/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Create devuelve domain.ErrUsernameTaken ante violación del constraint único.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	UpdatePasswordHash(username, passwordHash string) error
	Delete(id string) error
}
