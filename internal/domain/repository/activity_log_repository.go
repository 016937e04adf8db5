package repository

import "github.com/HaosShot/zapateria-pos/internal/domain/entity"

// ActivityLogRepository puerto de la bitácora append-only.
type ActivityLogRepository interface {
	Append(entry *entity.ActivityLogEntry) error
	List(limit, offset int) ([]*entity.ActivityLogEntry, error)
}
