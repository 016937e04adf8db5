package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HaosShot/zapateria-pos/internal/application/dto"
	"github.com/HaosShot/zapateria-pos/internal/application/inventory"
	"github.com/HaosShot/zapateria-pos/internal/infrastructure/pdf"
)

// SaleHandler registro y consulta de ventas, más el recibo PDF.
type SaleHandler struct {
	uc      *inventory.InventoryUseCase
	receipt *pdf.ReceiptGenerator
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *inventory.InventoryUseCase, receipt *pdf.ReceiptGenerator) *SaleHandler {
	return &SaleHandler{uc: uc, receipt: receipt}
}

// Sell registra una venta: snapshot + decremento de stock + bitácora, todo en una tx.
func (h *SaleHandler) Sell(c *fiber.Ctx) error {
	var in dto.SellRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Sell(c.Context(), SessionFromCtx(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List histórico de ventas.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	out, err := h.uc.ListSales(SessionFromCtx(c), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Receipt genera y descarga el recibo PDF de una venta.
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	sale, err := h.uc.GetSale(SessionFromCtx(c), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	data, err := h.receipt.GenerateReceipt(c.Context(), sale)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recibo_`+sale.ID+`.pdf"`)
	return c.Send(data)
}
