package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `
	id, parent_id, name, slug, COALESCE(description, ''), COALESCE(image, ''),
	is_active, sort_order, COALESCE(meta_title, ''), COALESCE(meta_description, ''),
	created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(
		&c.ID, &c.ParentID, &c.Name, &c.Slug, &c.Description, &c.Image,
		&c.IsActive, &c.SortOrder, &c.MetaTitle, &c.MetaDescription,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva categoría y asigna el ID generado.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (parent_id, name, slug, description, image, is_active, sort_order, meta_title, meta_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		category.ParentID, category.Name, category.Slug, nullString(category.Description),
		nullString(category.Image), category.IsActive, category.SortOrder,
		nullString(category.MetaTitle), nullString(category.MetaDescription),
		category.CreatedAt, category.UpdatedAt,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(context.Background(),
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// GetBySlug busca por slug con política de niveles; gana el primer nivel con
// resultado. Un nivel que falla se loguea y se pasa al siguiente; si todos los
// niveles fallaron se devuelve el último error (la ausencia no se confunde con
// un backend caído).
func (r *CategoryRepo) GetBySlug(slug string) (*entity.Category, error) {
	// Entrada vacía tras trim: no se consulta
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, nil
	}

	tiers := []struct {
		name  string
		query string
	}{
		{"slug_exacto", `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1 AND is_active = true LIMIT 1`},
		{"slug_insensible", `SELECT ` + categoryColumns + ` FROM categories WHERE lower(slug) = lower($1) AND is_active = true LIMIT 1`},
		{"nombre_insensible", `SELECT ` + categoryColumns + ` FROM categories WHERE lower(name) = lower($1) AND is_active = true LIMIT 1`},
		// Diagnóstico: ignora is_active para detectar categorías despublicadas
		{"cualquier_estado", `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1 OR name = $1 LIMIT 1`},
	}

	var lastErr error
	for _, tier := range tiers {
		c, err := scanCategory(r.q.QueryRow(context.Background(), tier.query, slug))
		if err == nil {
			return c, nil
		}
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		log.Warn().Err(err).Str("tier", tier.name).Str("slug", slug).Msg("lookup de categoría falló, se intenta el siguiente nivel")
		lastErr = err
	}
	if lastErr != nil {
		return nil, fmt.Errorf("get category by slug: %w", lastErr)
	}
	return nil, nil
}

// ListSubcategories devuelve las categorías activas bajo parentID ordenadas por sort_order.
func (r *CategoryRepo) ListSubcategories(parentID int64) ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories WHERE parent_id = $1 AND is_active = true
		ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	return collectCategories(rows)
}

// ListActive lectura bulk de todas las categorías activas; el árbol se arma en memoria.
func (r *CategoryRepo) ListActive() ([]*entity.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories WHERE is_active = true
		ORDER BY sort_order, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list active categories: %w", err)
	}
	defer rows.Close()
	return collectCategories(rows)
}

func collectCategories(rows pgx.Rows) ([]*entity.Category, error) {
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(
			&c.ID, &c.ParentID, &c.Name, &c.Slug, &c.Description, &c.Image,
			&c.IsActive, &c.SortOrder, &c.MetaTitle, &c.MetaDescription,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET parent_id = $2, name = $3, slug = $4, description = $5, image = $6,
			is_active = $7, sort_order = $8, meta_title = $9, meta_description = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.ParentID, category.Name, category.Slug,
		nullString(category.Description), nullString(category.Image),
		category.IsActive, category.SortOrder,
		nullString(category.MetaTitle), nullString(category.MetaDescription),
		category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
