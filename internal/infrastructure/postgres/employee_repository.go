package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
	"github.com/HaosShot/zapateria-pos/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste el perfil. Se asume dentro de la misma tx que el insert del User.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, full_name, position, birth_date, phone, email, photo, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.FullName, employee.Position, employee.BirthDate,
		employee.Phone, employee.Email, employee.Photo, employee.UserID, employee.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByUserID obtiene el perfil ligado a un User. Devuelve nil, nil si no existe.
// El JOIN trae el username de la cuenta ligada.
func (r *EmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	query := `
		SELECT e.id, e.full_name, e.position, e.birth_date, e.phone, e.email, e.photo, e.user_id, u.username, e.created_at
		FROM employees e JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&e.ID, &e.FullName, &e.Position, &e.BirthDate, &e.Phone, &e.Email, &e.Photo, &e.UserID, &e.Username, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by user: %w", err)
	}
	return &e, nil
}

// List lista perfiles con paginación, con el username de cada cuenta.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT e.id, e.full_name, e.position, e.birth_date, e.phone, e.email, e.photo, e.user_id, u.username, e.created_at
		FROM employees e JOIN users u ON u.id = e.user_id
		ORDER BY e.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.Position, &e.BirthDate, &e.Phone, &e.Email, &e.Photo, &e.UserID, &e.Username, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
