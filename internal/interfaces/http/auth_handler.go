package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/HaosShot/zapateria-pos/internal/application/auth"
	"github.com/HaosShot/zapateria-pos/internal/application/dto"
	"github.com/HaosShot/zapateria-pos/internal/domain"
	"github.com/HaosShot/zapateria-pos/internal/domain/entity"
	"github.com/HaosShot/zapateria-pos/internal/infrastructure/backup"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	backup *backup.Service
}

// NewAuthHandler construye el handler de auth. backupSvc puede ser nil (sin respaldo al salir).
func NewAuthHandler(uc *auth.AuthUseCase, backupSvc *backup.Service) *AuthHandler {
	return &AuthHandler{uc: uc, backup: backupSvc}
}

// Login verifica credenciales y devuelve token + sesión.
// Usuario desconocido y contraseña incorrecta responden el mismo 401.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrUnknownRole) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario o contraseña incorrectos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Logout deja constancia en la bitácora y, para admins, dispara el respaldo
// (equivalente a "guardar y salir"). El respaldo es best-effort: su fallo no
// impide cerrar la sesión.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	session := SessionFromCtx(c)
	h.uc.Logout(session)
	if session.Role == entity.RoleAdmin && h.backup != nil {
		h.backup.RunBestEffort(c.Context())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
