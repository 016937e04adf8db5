package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HaosShot/zapateria-pos/internal/application/dto"
	"github.com/HaosShot/zapateria-pos/internal/application/inventory"
)

// ProductHandler alta y consulta de productos (panel de trabajador).
type ProductHandler struct {
	uc *inventory.InventoryUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *inventory.InventoryUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create registra un producto nuevo.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddProduct(c.Context(), SessionFromCtx(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List productos con stock disponible (lo que se puede vender).
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAvailable(SessionFromCtx(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID lectura directa de un producto.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetProduct(SessionFromCtx(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
