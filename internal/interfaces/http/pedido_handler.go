package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// PedidoHandler historial del cliente y gestión de pedidos desde administración.
type PedidoHandler struct {
	uc *usecase.PedidoUseCase
}

// NewPedidoHandler construye el handler de pedidos.
func NewPedidoHandler(uc *usecase.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

// ListMine godoc
// @Summary      Pedidos del cliente autenticado
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PedidoResponse
// @Router       /api/orders [get]
func (h *PedidoHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListByCliente(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetMine godoc
// @Summary      Detalle de un pedido propio
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.PedidoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *PedidoHandler) GetMine(c *fiber.Ctx) error {
	out, err := h.uc.GetForCliente(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar un pedido propio (solo EN_PREPARACION)
// @Tags         orders
// @Security     Bearer
// @Param        id  path  string  true  "ID del pedido"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/cancel [post]
func (h *PedidoHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar todos los pedidos (administración)
// @Tags         admin-orders
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por id, cliente o estado"
// @Success      200     {array}  dto.PedidoResponse
// @Router       /api/admin/orders [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateEstado godoc
// @Summary      Cambiar estado de un pedido (administración)
// @Tags         admin-orders
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateEstadoRequest  true  "estado"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id}/estado [put]
func (h *PedidoHandler) UpdateEstado(c *fiber.Ctx) error {
	var in dto.UpdateEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateEstado(c.Params("id"), in.Estado); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdatePagado godoc
// @Summary      Marcar o desmarcar pago de un pedido (administración)
// @Tags         admin-orders
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdatePagadoRequest  true  "pagado"
// @Success      204
// @Router       /api/admin/orders/{id}/pagado [put]
func (h *PedidoHandler) UpdatePagado(c *fiber.Ctx) error {
	var in dto.UpdatePagadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdatePagado(c.Params("id"), in.Pagado); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar un pedido (administración)
// @Tags         admin-orders
// @Security     Bearer
// @Param        id  path  string  true  "ID del pedido"
// @Success      204
// @Router       /api/admin/orders/{id} [delete]
func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
