package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos de los puertos
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products []*entity.Product
	nextID   int64
}

func (m *memProductRepo) Create(p *entity.Product) error {
	m.nextID++
	p.ID = m.nextID
	m.products = append(m.products, p)
	return nil
}

func (m *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	for _, p := range m.products {
		if p.Slug != "" && p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProductRepo) ListByCategories(ids []int64) ([]*entity.Product, error) { return nil, nil }
func (m *memProductRepo) ListBySubcategory(id int64) ([]*entity.Product, error)   { return nil, nil }
func (m *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return m.products, nil
}
func (m *memProductRepo) Update(p *entity.Product) error { return nil }
func (m *memProductRepo) Delete(id int64) error          { return nil }

type memCategoryRepo struct {
	categories []*entity.Category
}

func (m *memCategoryRepo) Create(c *entity.Category) error { return nil }
func (m *memCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (m *memCategoryRepo) GetBySlug(slug string) (*entity.Category, error)        { return nil, nil }
func (m *memCategoryRepo) ListSubcategories(id int64) ([]*entity.Category, error) { return nil, nil }
func (m *memCategoryRepo) ListActive() ([]*entity.Category, error)                { return m.categories, nil }
func (m *memCategoryRepo) Update(c *entity.Category) error                        { return nil }
func (m *memCategoryRepo) Delete(id int64) error                                  { return nil }

func newProductUC() (*usecase.ProductUseCase, *memProductRepo) {
	products := &memProductRepo{}
	categories := &memCategoryRepo{categories: []*entity.Category{
		{ID: 1, Name: "Hair Care", Slug: "hair-care", IsActive: true},
	}}
	return usecase.NewProductUseCase(products, categories), products
}

// ──────────────────────────────────────────────────────────────────────────────
// Unicidad de slug en escritura
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_SlugDuplicadoRechazado(t *testing.T) {
	uc, _ := newProductUC()

	_, err := uc.Create(dto.CreateProductRequest{
		Name: "Shampoo Uno", Slug: "mi-shampoo", CategoryID: 1, Price: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{
		Name: "Shampoo Dos", Slug: "mi-shampoo", CategoryID: 1, Price: decimal.NewFromInt(12),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// El slug entrante se normaliza antes de validar unicidad.
func TestProductCreate_SlugSeNormaliza(t *testing.T) {
	uc, repo := newProductUC()

	out, err := uc.Create(dto.CreateProductRequest{
		Name: "Crema Facial", Slug: "Crema Facial PRO", CategoryID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "crema-facial-pro", out.Slug)
	assert.Equal(t, "crema-facial-pro", repo.products[0].Slug)
}

// Sin slug: no se persiste uno derivado; la respuesta sí lo muestra derivado.
func TestProductCreate_SinSlugNoPersisteDerivado(t *testing.T) {
	uc, repo := newProductUC()

	out, err := uc.Create(dto.CreateProductRequest{Name: "Café Serum", CategoryID: 1})
	require.NoError(t, err)

	assert.Equal(t, "", repo.products[0].Slug, "la fila queda sin slug")
	assert.Equal(t, "café-serum", out.Slug, "la respuesta expone el derivado")
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _ := newProductUC()
	_, err := uc.Create(dto.CreateProductRequest{Name: "X", CategoryID: 99})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductCreate_EstadoPorDefectoEsBorrador(t *testing.T) {
	uc, _ := newProductUC()
	out, err := uc.Create(dto.CreateProductRequest{Name: "Nuevo", CategoryID: 1})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductDraft, out.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_CambioDeSlugRevalidaUnicidad(t *testing.T) {
	uc, _ := newProductUC()

	first, err := uc.Create(dto.CreateProductRequest{Name: "Uno", Slug: "uno", CategoryID: 1})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateProductRequest{Name: "Dos", Slug: "dos", CategoryID: 1})
	require.NoError(t, err)

	taken := "uno"
	_, err = uc.Update(second.ID, dto.UpdateProductRequest{Slug: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Reasignarse su propio slug no es conflicto
	own := "uno"
	_, err = uc.Update(first.ID, dto.UpdateProductRequest{Slug: &own})
	assert.NoError(t, err)
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc, _ := newProductUC()
	out, err := uc.Update(42, dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductUpdate_EstadoInvalido(t *testing.T) {
	uc, _ := newProductUC()
	created, err := uc.Create(dto.CreateProductRequest{Name: "Uno", CategoryID: 1})
	require.NoError(t, err)

	bad := "publicado"
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_StockNegativo(t *testing.T) {
	uc, _ := newProductUC()
	created, err := uc.Create(dto.CreateProductRequest{Name: "Uno", CategoryID: 1})
	require.NoError(t, err)

	neg := -1
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Stock: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
