package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// CategoriaHandler CRUD de categorías desde administración.
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

// NewCategoriaHandler construye el handler de categorías.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// Create crea una categoría.
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista las categorías.
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una categoría.
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una categoría.
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
