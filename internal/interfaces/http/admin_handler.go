package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HaosShot/zapateria-pos/internal/application/dto"
	"github.com/HaosShot/zapateria-pos/internal/domain/repository"
	"github.com/HaosShot/zapateria-pos/internal/infrastructure/backup"
)

// AdminHandler lectura de la bitácora y respaldo manual (solo admin).
type AdminHandler struct {
	logRepo repository.ActivityLogRepository
	backup  *backup.Service
}

// NewAdminHandler construye el handler.
func NewAdminHandler(logRepo repository.ActivityLogRepository, backupSvc *backup.Service) *AdminHandler {
	return &AdminHandler{logRepo: logRepo, backup: backupSvc}
}

// Activity lista la bitácora, más recientes primero.
func (h *AdminHandler) Activity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	entries, err := h.logRepo.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ActivityLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ActivityLogResponse{
			ID:        e.ID,
			UserID:    e.UserID,
			Action:    e.Action,
			Details:   e.Details,
			Timestamp: e.Timestamp,
		})
	}
	return c.JSON(out)
}

// Backup dispara pg_dump de forma síncrona y devuelve la ruta del volcado.
func (h *AdminHandler) Backup(c *fiber.Ctx) error {
	file, err := h.backup.Run(c.Context())
	if err != nil {
		// El respaldo manual sí reporta el fallo (el automático de logout no).
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "BACKUP_FAILED", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"file": file})
}
