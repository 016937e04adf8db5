package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que el dominio distingue del resto de errores de persistencia.
const (
	codeUniqueViolation = "23505" // unique_violation
	codeInvalidTextRepr = "22P02" // invalid_text_representation
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation: violación de constraint único (p.ej. username duplicado).
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// isInvalidUUID: el valor enviado no parsea como el tipo de la columna, p.ej.
// un id del cliente que no es un UUID. Un id malformado no identifica ninguna
// fila, así que las lecturas lo tratan igual que "no encontrado".
func isInvalidUUID(err error) bool {
	return pgCode(err) == codeInvalidTextRepr
}
