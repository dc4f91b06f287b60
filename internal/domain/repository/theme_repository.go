package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// ThemeRepository define el puerto de persistencia para Theme (DIP).
type ThemeRepository interface {
	Create(theme *entity.Theme) error
	GetByID(id string) (*entity.Theme, error)
	// GetActive devuelve el tema activo o (nil, nil) si no hay ninguno.
	GetActive() (*entity.Theme, error)
	List() ([]*entity.Theme, error)
	Update(theme *entity.Theme) error
	// Activate marca el tema como activo y desactiva el resto en la misma transacción.
	Activate(id string) error
	Delete(id string) error
}
