package entity

import "time"

// Employee perfil de un empleado, uno-a-uno con su User (se crean juntos en una
// sola transacción). Photo es un blob binario opcional, sin validar ni transcodificar.
type Employee struct {
	ID        string
	FullName  string
	Position  string
	BirthDate *time.Time
	Phone     string
	Email     string
	Photo     []byte
	UserID    string
	Username  string // denormalizado del User ligado; las lecturas lo traen con JOIN
	CreatedAt time.Time
}
