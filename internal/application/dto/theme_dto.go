package dto

import (
	"encoding/json"
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// CreateThemeRequest entrada para crear un tema.
type CreateThemeRequest struct {
	Name   string          `json:"name" validate:"required,min=1,max=120"`
	Config json.RawMessage `json:"config"`
}

// UpdateThemeRequest entrada para actualizar un tema.
type UpdateThemeRequest struct {
	Name   *string         `json:"name" validate:"omitempty,min=1,max=120"`
	Config json.RawMessage `json:"config"`
}

// ThemeResponse salida de un tema.
type ThemeResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Config    json.RawMessage `json:"config,omitempty"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ThemeListResponse lista de temas (admin).
type ThemeListResponse struct {
	Items []ThemeResponse `json:"items"`
}

// ToThemeResponse mapea la entidad a su DTO.
func ToThemeResponse(t *entity.Theme) ThemeResponse {
	return ThemeResponse{
		ID:        t.ID,
		Name:      t.Name,
		Config:    t.Config,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
