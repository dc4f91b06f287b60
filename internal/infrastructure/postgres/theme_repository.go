package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.ThemeRepository = (*ThemeRepo)(nil)

const themeColumns = `id, name, COALESCE(config, '{}'::jsonb), is_active, created_at, updated_at`

// ThemeRepo implementación del puerto ThemeRepository sobre PostgreSQL.
type ThemeRepo struct {
	q Querier
}

// NewThemeRepository construye el adaptador de persistencia para temas.
func NewThemeRepository(q Querier) *ThemeRepo {
	return &ThemeRepo{q: q}
}

func scanTheme(row pgx.Row) (*entity.Theme, error) {
	var t entity.Theme
	if err := row.Scan(&t.ID, &t.Name, &t.Config, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste un nuevo tema.
func (r *ThemeRepo) Create(theme *entity.Theme) error {
	query := `
		INSERT INTO themes (id, name, config, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		theme.ID, theme.Name, theme.Config, theme.IsActive, theme.CreatedAt, theme.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert theme: %w", err)
	}
	return nil
}

// GetByID obtiene un tema por ID. (nil, nil) si no existe.
func (r *ThemeRepo) GetByID(id string) (*entity.Theme, error) {
	t, err := scanTheme(r.q.QueryRow(context.Background(),
		`SELECT `+themeColumns+` FROM themes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get theme: %w", err)
	}
	return t, nil
}

// GetActive devuelve el tema activo o (nil, nil) si no hay ninguno.
func (r *ThemeRepo) GetActive() (*entity.Theme, error) {
	t, err := scanTheme(r.q.QueryRow(context.Background(),
		`SELECT `+themeColumns+` FROM themes WHERE is_active = true LIMIT 1`))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active theme: %w", err)
	}
	return t, nil
}

// List lista todos los temas, el activo primero.
func (r *ThemeRepo) List() ([]*entity.Theme, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+themeColumns+` FROM themes ORDER BY is_active DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Theme
	for rows.Next() {
		var t entity.Theme
		if err := rows.Scan(&t.ID, &t.Name, &t.Config, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan theme: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza nombre y configuración de un tema.
func (r *ThemeRepo) Update(theme *entity.Theme) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE themes SET name = $2, config = $3, updated_at = $4 WHERE id = $1`,
		theme.ID, theme.Name, theme.Config, theme.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update theme: %w", err)
	}
	return nil
}

// Activate marca el tema activo y desactiva el resto en una sola sentencia
// (atómica sin transacción explícita).
func (r *ThemeRepo) Activate(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE themes SET is_active = (id = $1), updated_at = now()`, id)
	if err != nil {
		return fmt.Errorf("activate theme: %w", err)
	}
	return nil
}

// Delete elimina un tema por ID.
func (r *ThemeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM themes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	return nil
}
