package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/application/dto"
)

// CatalogHandler lecturas públicas del catálogo.
type CatalogHandler struct {
	uc *catalog.CatalogUseCase
}

// NewCatalogHandler construye el handler del catálogo.
func NewCatalogHandler(uc *catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts godoc
// @Summary      Listar productos activos
// @Tags         catalog
// @Produce      json
// @Param        search  query  string  false  "Filtro por nombre, referencia o categoría"
// @Success      200     {array}  dto.ProductResponse
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetProduct godoc
// @Summary      Detalle de producto
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetProduct(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.CategoriaResponse
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
