package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// IncidenciaHandler reclamaciones del cliente y su gestión desde administración.
type IncidenciaHandler struct {
	uc *usecase.IncidenciaUseCase
}

// NewIncidenciaHandler construye el handler de incidencias.
func NewIncidenciaHandler(uc *usecase.IncidenciaUseCase) *IncidenciaHandler {
	return &IncidenciaHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir una incidencia sobre un pedido propio
// @Tags         issues
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIncidenciaRequest  true  "pedido_id, tipo, descripcion"
// @Success      201   {object}  dto.IncidenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/issues [post]
func (h *IncidenciaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIncidenciaRequest
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
// @Summary      Incidencias del cliente autenticado
// @Tags         issues
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.IncidenciaResponse
// @Router       /api/issues [get]
func (h *IncidenciaHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListByCliente(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista todas las incidencias (administración).
func (h *IncidenciaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateEstado acepta o rechaza una incidencia (administración).
func (h *IncidenciaHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateEstado(c.Params("id"), in.Estado); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina una incidencia (administración).
func (h *IncidenciaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
