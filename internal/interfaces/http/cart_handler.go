package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/dto"
)

// CartHandler carrito de sesión y checkout del usuario autenticado.
type CartHandler struct {
	uc *checkout.CheckoutUseCase
}

// NewCartHandler construye el handler del carrito.
func NewCartHandler(uc *checkout.CheckoutUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get godoc
// @Summary      Carrito actual
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetCart(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Añadir producto al carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "producto_id, cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddItem(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetItem godoc
// @Summary      Fijar cantidad de un producto del carrito (0 lo elimina)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productoId  path  string  true  "ID del producto"
// @Param        body        body  dto.SetCartItemRequest  true  "cantidad"
// @Success      200         {object}  dto.CartResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /api/cart/items/{productoId} [put]
func (h *CartHandler) SetItem(c *fiber.Ctx) error {
	productoID := c.Params("productoId")
	var in dto.SetCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetItemQuantity(c.Context(), GetUserID(c), productoID, in.Cantidad)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Eliminar producto del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        productoId  path  string  true  "ID del producto"
// @Success      200         {object}  dto.CartResponse
// @Router       /api/cart/items/{productoId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(c.Context(), GetUserID(c), c.Params("productoId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         cart
// @Security     Bearer
// @Success      204
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.ClearCart(c.Context(), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Checkout godoc
// @Summary      Convertir el carrito en pedido
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "a_domicilio, metodo_pago, direccion_envio"
// @Success      201   {object}  dto.PedidoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.PlaceOrder(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
