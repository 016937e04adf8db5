package dto

import "time"

// RegisterEmployeeRequest alta de empleado (solo admin). FullName, Username y
// Password son obligatorios. PhotoPath es una ruta local opcional; el blob se
// lee antes de tocar el almacén.
type RegisterEmployeeRequest struct {
	FullName  string `json:"full_name"`
	Position  string `json:"position"`
	BirthDate string `json:"birth_date"` // yyyy-MM-dd, opcional
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	PhotoPath string `json:"photo_path"`
}

// EmployeeResponse perfil persistido (sin el blob de la foto).
type EmployeeResponse struct {
	ID        string     `json:"id"`
	FullName  string     `json:"full_name"`
	Position  string     `json:"position"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Email     string     `json:"email,omitempty"`
	HasPhoto  bool       `json:"has_photo"`
	UserID    string     `json:"user_id"`
	Username  string     `json:"username"`
	CreatedAt time.Time  `json:"created_at"`
}
