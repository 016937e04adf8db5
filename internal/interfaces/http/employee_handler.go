package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HaosShot/zapateria-pos/internal/application/dto"
	"github.com/HaosShot/zapateria-pos/internal/application/registrar"
)

// EmployeeHandler alta y listado de empleados (panel de administración).
type EmployeeHandler struct {
	uc *registrar.RegistrarUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *registrar.RegistrarUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Register crea User(worker) + Employee en una sola transacción.
func (h *EmployeeHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterEmployee(c.Context(), SessionFromCtx(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List perfiles registrados, paginado con limit/offset.
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	out, err := h.uc.ListEmployees(SessionFromCtx(c), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
