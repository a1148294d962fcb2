package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// UserHandler gestión de usuarios desde administración.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios (excluye al administrador que consulta)
// @Tags         admin-users
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por nombre, email, dni o teléfono"
// @Success      200     {array}  dto.ProfileResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c), c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateRol godoc
// @Summary      Cambiar rol de un usuario
// @Tags         admin-users
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateRolRequest  true  "rol"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/rol [put]
func (h *UserHandler) UpdateRol(c *fiber.Ctx) error {
	var in dto.UpdateRolRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateRol(GetUserID(c), c.Params("id"), in.Rol); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar un usuario
// @Tags         admin-users
// @Security     Bearer
// @Param        id  path  string  true  "ID del usuario"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
