package postgres

import (
	"context"
	"fmt"

	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
	"github.com/HaosShot/zapateria-pos/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo bitácora append-only sobre PostgreSQL (usable con pool o tx).
// No hay UPDATE ni DELETE: las entradas son inmutables.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Append inserta una entrada.
func (r *ActivityLogRepo) Append(entry *entity.ActivityLogEntry) error {
	query := `
		INSERT INTO activity_logs (id, user_id, action, details, timestamp)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.UserID, entry.Action, entry.Details, entry.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// List entradas más recientes primero.
func (r *ActivityLogRepo) List(limit, offset int) ([]*entity.ActivityLogEntry, error) {
	query := `
		SELECT id, user_id, action, COALESCE(details, ''), timestamp
		FROM activity_logs ORDER BY timestamp DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list activity logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLogEntry
	for rows.Next() {
		var e entity.ActivityLogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Details, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
