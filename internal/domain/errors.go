package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	// ErrInvalidCredentials cubre tanto usuario inexistente como contraseña
	// incorrecta: el caller no debe poder distinguirlos (enumeración de usuarios).
	ErrInvalidCredentials = errors.New("usuario o contraseña incorrectos")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUnknownRole        = errors.New("rol de usuario desconocido")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya está en uso")
	ErrProductNotFound    = errors.New("producto no encontrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrSaleNotFound       = errors.New("venta no encontrada")
	ErrPhotoUnreadable    = errors.New("no se pudo leer el archivo de foto")
)

// ValidationError campo mal formado o faltante; el caller puede corregirlo
// sin tocar el almacén.
type ValidationError struct {
	Field  string
	Reason string // "requerido", "email inválido", "teléfono inválido", "precio inválido", ...
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Field, e.Reason)
}

// Constructores de los subtipos de validación.
func MissingField(field string) error {
	return &ValidationError{Field: field, Reason: "requerido"}
}

func BadEmail() error {
	return &ValidationError{Field: "email", Reason: "email inválido"}
}

func BadPhone() error {
	return &ValidationError{Field: "phone", Reason: "teléfono inválido"}
}

func BadPrice() error {
	return &ValidationError{Field: "price", Reason: "precio inválido"}
}

func BadQuantity() error {
	return &ValidationError{Field: "quantity", Reason: "cantidad inválida"}
}

// IsValidation indica si err es un error de validación.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
