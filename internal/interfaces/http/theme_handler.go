package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
)

// ThemeHandler maneja los temas de la tienda: lectura pública del tema activo
// y CRUD protegido del admin.
type ThemeHandler struct {
	uc *usecase.ThemeUseCase
}

// NewThemeHandler construye el handler.
func NewThemeHandler(uc *usecase.ThemeUseCase) *ThemeHandler {
	return &ThemeHandler{uc: uc}
}

// GetActive godoc
// @Summary      Tema activo de la tienda (público)
// @Tags         store
// @Produce      json
// @Param        locale  path  string  true  "Locale (es, en)"
// @Success      200  {object}  dto.ThemeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store/{locale}/theme [get]
func (h *ThemeHandler) GetActive(c *fiber.Ctx) error {
	out, err := h.uc.GetActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay tema activo"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear tema
// @Tags         themes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateThemeRequest  true  "Nombre y configuración"
// @Success      201   {object}  dto.ThemeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/themes [post]
func (h *ThemeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar temas
// @Tags         themes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ThemeListResponse
// @Router       /api/admin/themes [get]
func (h *ThemeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tema
// @Tags         themes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tema"
// @Param        body  body  dto.UpdateThemeRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ThemeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/themes/{id} [put]
func (h *ThemeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateThemeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tema no encontrado"})
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Activar tema (desactiva el resto)
// @Tags         themes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del tema"
// @Success      200  {object}  dto.ThemeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/themes/{id}/activate [post]
func (h *ThemeHandler) Activate(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Activate(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tema no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tema (el activo no se puede eliminar)
// @Tags         themes
// @Security     Bearer
// @Param        id  path  string  true  "ID del tema"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/themes/{id} [delete]
func (h *ThemeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "THEME_ACTIVE", Message: "el tema activo no se puede eliminar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
