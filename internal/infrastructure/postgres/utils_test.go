package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Querier falso cuyo QueryRow siempre falla con el error configurado. Permite
// probar la taxonomía de errores de los repos sin un servidor PostgreSQL.

type errRow struct{ err error }

func (r errRow) Scan(_ ...any) error { return r.err }

type errQuerier struct{ err error }

func (q errQuerier) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, q.err
}

func (q errQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, q.err
}

func (q errQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return errRow{q.err}
}

// 22P02 tal como lo devuelve el servidor al no poder parsear "abc" como uuid.
func invalidUUIDErr() error {
	return &pgconn.PgError{
		Severity: "ERROR",
		Code:     codeInvalidTextRepr,
		Message:  `invalid input syntax for type uuid: "abc"`,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de SQLSTATE
// ──────────────────────────────────────────────────────────────────────────────

func TestPgCodeHelpers(t *testing.T) {
	unique := &pgconn.PgError{Code: codeUniqueViolation}

	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isInvalidUUID(invalidUUIDErr()))

	// También a través de errores envueltos con %w
	assert.True(t, isUniqueViolation(fmt.Errorf("insert user: %w", unique)))
	assert.True(t, isInvalidUUID(fmt.Errorf("get product: %w", invalidUUIDErr())))

	// Negativos: códigos cruzados y errores ajenos a PostgreSQL
	assert.False(t, isUniqueViolation(invalidUUIDErr()))
	assert.False(t, isInvalidUUID(unique))
	assert.False(t, isInvalidUUID(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas por id: un id malformado responde "no encontrado", nunca error interno
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_IDMalformadoEsNoEncontrado(t *testing.T) {
	repo := NewProductRepository(errQuerier{err: invalidUUIDErr()})

	p, err := repo.GetByID("abc")
	require.NoError(t, err, "un id que no es UUID no debe ser un error de persistencia")
	assert.Nil(t, p)

	p, err = repo.GetForUpdate("abc")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSaleRepo_IDMalformadoEsNoEncontrado(t *testing.T) {
	repo := NewSaleRepository(errQuerier{err: invalidUUIDErr()})

	s, err := repo.GetByID("abc")
	require.NoError(t, err)
	assert.Nil(t, s)
}

// Un fallo real del almacén sí se propaga (no se disfraza de no-encontrado).
func TestRepos_ErrorDePersistenciaSePropaga(t *testing.T) {
	boom := errors.New("connection reset by peer")

	_, err := NewProductRepository(errQuerier{err: boom}).GetByID("5f0c2c6e-0000-0000-0000-000000000001")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	_, err = NewSaleRepository(errQuerier{err: boom}).GetByID("5f0c2c6e-0000-0000-0000-000000000001")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
