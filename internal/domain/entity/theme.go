package entity

import (
	"encoding/json"
	"time"
)

// Theme representa la configuración visual de la tienda (paleta, tipografía,
// banners). Solo un tema puede estar activo a la vez; el customizer visual vive
// fuera de este servicio y consume Config tal cual.
type Theme struct {
	ID        string
	Name      string
	Config    json.RawMessage // colores, fuentes, layout; opaco para el backend
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
