package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/pkg/slug"
)

// Estados válidos para Product.
const (
	ProductActive   = "active"
	ProductDraft    = "draft"
	ProductArchived = "archived"
)

// Product representa un producto del marketplace. Slug puede venir vacío de la
// fila; en ese caso se deriva del nombre en lectura y nunca se persiste.
// Cada producto referencia exactamente un par hoja (CategoryID, ChildCategoryID opcional).
type Product struct {
	ID              int64
	Name            string
	Slug            string // puede estar vacío; ver EffectiveSlug
	Brand           string
	Description     string
	Price           decimal.Decimal
	OriginalPrice   decimal.NullDecimal // precio antes de descuento, nullable
	Stock           int
	Status          string // active, draft, archived
	CategoryID      int64
	ChildCategoryID *int64
	Rating          float64
	Reviews         int
	Image           string
	IsBestSeller    bool
	IsOnSale        bool
	MetaTitle       string
	MetaDescription string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Campos display traídos por join en los listados; no se persisten aquí.
	CategoryName      string
	ChildCategoryName string
}

// EffectiveSlug devuelve el slug almacenado o, si falta, uno derivado del nombre.
func (p *Product) EffectiveSlug() string {
	if p.Slug != "" {
		return p.Slug
	}
	return slug.FromName(p.Name)
}
