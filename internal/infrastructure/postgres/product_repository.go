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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `
	p.id, p.name, COALESCE(p.slug, ''), COALESCE(p.brand, ''), COALESCE(p.description, ''),
	p.price, p.original_price, p.stock, p.status, p.category_id, p.child_category_id,
	COALESCE(p.rating, 0), COALESCE(p.reviews, 0), COALESCE(p.image, ''),
	p.is_best_seller, p.is_on_sale, COALESCE(p.meta_title, ''), COALESCE(p.meta_description, ''),
	p.created_at, p.updated_at`

// Columnas display unidas desde categories para los listados del storefront.
const productJoinedColumns = productColumns + `,
	COALESCE(c.name, ''), COALESCE(cc.name, '')`

const productJoins = `
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN categories cc ON cc.id = p.child_category_id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row, joined bool) (*entity.Product, error) {
	var p entity.Product
	dest := []any{
		&p.ID, &p.Name, &p.Slug, &p.Brand, &p.Description,
		&p.Price, &p.OriginalPrice, &p.Stock, &p.Status, &p.CategoryID, &p.ChildCategoryID,
		&p.Rating, &p.Reviews, &p.Image,
		&p.IsBestSeller, &p.IsOnSale, &p.MetaTitle, &p.MetaDescription,
		&p.CreatedAt, &p.UpdatedAt,
	}
	if joined {
		dest = append(dest, &p.CategoryName, &p.ChildCategoryName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto y asigna el ID generado. Un slug vacío se
// guarda como NULL (el storefront lo deriva del nombre en lectura).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, slug, brand, description, price, original_price, stock, status,
			category_id, child_category_id, rating, reviews, image, is_best_seller, is_on_sale,
			meta_title, meta_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, nullString(product.Slug), nullString(product.Brand), nullString(product.Description),
		product.Price, product.OriginalPrice, product.Stock, product.Status,
		product.CategoryID, product.ChildCategoryID, product.Rating, product.Reviews,
		nullString(product.Image), product.IsBestSeller, product.IsOnSale,
		nullString(product.MetaTitle), nullString(product.MetaDescription),
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productJoinedColumns+` FROM products p`+productJoins+` WHERE p.id = $1`, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySlug obtiene un producto por slug almacenado exacto, en cualquier estado
// (lo usa el admin para garantizar unicidad en escritura).
func (r *ProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	if slug == "" {
		return nil, nil
	}
	p, err := scanProduct(r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products p WHERE p.slug = $1 LIMIT 1`, slug), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return p, nil
}

// ListByCategories productos activos con category_id en el set, ordenados por nombre.
func (r *ProductRepo) ListByCategories(categoryIDs []int64) ([]*entity.Product, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + productJoinedColumns + `
		FROM products p` + productJoins + `
		WHERE p.category_id = ANY($1) AND p.status = 'active'
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, categoryIDs)
	if err != nil {
		return nil, fmt.Errorf("list products by categories: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

// ListBySubcategory caso de un solo id.
func (r *ProductRepo) ListBySubcategory(subcategoryID int64) ([]*entity.Product, error) {
	return r.ListByCategories([]int64{subcategoryID})
}

// List listado paginado del admin, todos los estados, más recientes primero.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productJoinedColumns + `
		FROM products p` + productJoins + `
		ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows, true)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, slug = $3, brand = $4, description = $5, price = $6,
			original_price = $7, stock = $8, status = $9, category_id = $10, child_category_id = $11,
			image = $12, is_best_seller = $13, is_on_sale = $14, meta_title = $15,
			meta_description = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, nullString(product.Slug), nullString(product.Brand),
		nullString(product.Description), product.Price, product.OriginalPrice,
		product.Stock, product.Status, product.CategoryID, product.ChildCategoryID,
		nullString(product.Image), product.IsBestSeller, product.IsOnSale,
		nullString(product.MetaTitle), nullString(product.MetaDescription),
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
