package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ThemeUseCase casos de uso para los temas de la tienda. El customizer visual
// vive fuera del backend: aquí solo se persiste Config y se garantiza que hay
// a lo sumo un tema activo.
type ThemeUseCase struct {
	themes repository.ThemeRepository
}

// NewThemeUseCase construye el caso de uso.
func NewThemeUseCase(themes repository.ThemeRepository) *ThemeUseCase {
	return &ThemeUseCase{themes: themes}
}

// Create crea un tema inactivo.
func (uc *ThemeUseCase) Create(in dto.CreateThemeRequest) (*dto.ThemeResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	theme := &entity.Theme{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Config:    in.Config,
		IsActive:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.themes.Create(theme); err != nil {
		return nil, err
	}
	out := dto.ToThemeResponse(theme)
	return &out, nil
}

// GetActive devuelve el tema activo para el renderer. (nil, nil) si no hay.
func (uc *ThemeUseCase) GetActive() (*dto.ThemeResponse, error) {
	theme, err := uc.themes.GetActive()
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, nil
	}
	out := dto.ToThemeResponse(theme)
	return &out, nil
}

// List lista todos los temas (admin).
func (uc *ThemeUseCase) List() (*dto.ThemeListResponse, error) {
	themes, err := uc.themes.List()
	if err != nil {
		return nil, err
	}
	out := &dto.ThemeListResponse{Items: make([]dto.ThemeResponse, 0, len(themes))}
	for _, t := range themes {
		out.Items = append(out.Items, dto.ToThemeResponse(t))
	}
	return out, nil
}

// Update actualiza nombre o configuración de un tema.
func (uc *ThemeUseCase) Update(id string, in dto.UpdateThemeRequest) (*dto.ThemeResponse, error) {
	theme, err := uc.themes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, nil
	}
	if in.Name != nil {
		theme.Name = *in.Name
	}
	if len(in.Config) > 0 {
		theme.Config = in.Config
	}
	theme.UpdatedAt = time.Now()
	if err := uc.themes.Update(theme); err != nil {
		return nil, err
	}
	out := dto.ToThemeResponse(theme)
	return &out, nil
}

// Activate marca un tema como el activo (y desactiva el resto).
func (uc *ThemeUseCase) Activate(id string) (*dto.ThemeResponse, error) {
	theme, err := uc.themes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, nil
	}
	if err := uc.themes.Activate(id); err != nil {
		return nil, err
	}
	theme.IsActive = true
	out := dto.ToThemeResponse(theme)
	return &out, nil
}

// Delete elimina un tema. El tema activo no se puede eliminar.
func (uc *ThemeUseCase) Delete(id string) error {
	theme, err := uc.themes.GetByID(id)
	if err != nil {
		return err
	}
	if theme == nil {
		return nil
	}
	if theme.IsActive {
		return domain.ErrConflict
	}
	return uc.themes.Delete(id)
}
