package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// ReservaHandler reservas de producto: alta del cliente y gestión desde administración.
type ReservaHandler struct {
	uc *usecase.ReservaUseCase
}

// NewReservaHandler construye el handler de reservas.
func NewReservaHandler(uc *usecase.ReservaUseCase) *ReservaHandler {
	return &ReservaHandler{uc: uc}
}

// Create godoc
// @Summary      Reservar un producto para recogida en tienda
// @Tags         reservations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservaRequest  true  "producto_id, cantidad"
// @Success      201   {object}  dto.ReservaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reservations [post]
func (h *ReservaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReservaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Reservas del cliente autenticado
// @Tags         reservations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ReservaResponse
// @Router       /api/reservations [get]
func (h *ReservaHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListByCliente(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista todas las reservas (administración).
func (h *ReservaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateEstado cambia el estado de una reserva (administración).
func (h *ReservaHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateEstado(c.Params("id"), in.Estado); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina una reserva (administración).
func (h *ReservaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
