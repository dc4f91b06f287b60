package catalog_test

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de repositorio
// ──────────────────────────────────────────────────────────────────────────────

var errDown = errors.New("backend caído")

// fakeCategoryRepo implementa repository.CategoryRepository sobre un slice.
type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories []*entity.Category

	failAll         bool  // todas las lecturas fallan
	listActiveCalls int32 // contador atómico para el test de dedup
	gate            chan struct{}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error { return nil }
func (f *fakeCategoryRepo) Update(c *entity.Category) error { return nil }
func (f *fakeCategoryRepo) Delete(id int64) error           { return nil }

func (f *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	if f.failAll {
		return nil, errDown
	}
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// GetBySlug reproduce la política de niveles del adaptador real.
func (f *fakeCategoryRepo) GetBySlug(slug string) (*entity.Category, error) {
	if f.failAll {
		return nil, errDown
	}
	if strings.TrimSpace(slug) == "" {
		return nil, nil
	}
	for _, c := range f.categories { // nivel 1: slug exacto entre activas
		if c.IsActive && c.Slug == slug {
			return c, nil
		}
	}
	for _, c := range f.categories { // nivel 2: slug case-insensitive
		if c.IsActive && strings.EqualFold(c.Slug, slug) {
			return c, nil
		}
	}
	for _, c := range f.categories { // nivel 3: nombre case-insensitive
		if c.IsActive && strings.EqualFold(c.Name, slug) {
			return c, nil
		}
	}
	for _, c := range f.categories { // nivel 4: ignora is_active
		if c.Slug == slug || c.Name == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) ListSubcategories(parentID int64) ([]*entity.Category, error) {
	if f.failAll {
		return nil, errDown
	}
	var out []*entity.Category
	for _, c := range f.categories {
		if c.IsActive && c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) ListActive() ([]*entity.Category, error) {
	atomic.AddInt32(&f.listActiveCalls, 1)
	if f.gate != nil {
		<-f.gate // retiene la lectura hasta que el test abra la compuerta
	}
	if f.failAll {
		return nil, errDown
	}
	var out []*entity.Category
	for _, c := range f.categories {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

// fakeProductRepo implementa repository.ProductRepository sobre un slice.
// Los listados conservan el orden de inserción (el "orden por nombre" del
// adaptador real se simula insertando ya ordenado).
type fakeProductRepo struct {
	products []*entity.Product
	failAll  bool
}

func (f *fakeProductRepo) Create(p *entity.Product) error { return nil }
func (f *fakeProductRepo) Update(p *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(id int64) error          { return nil }

func (f *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	if f.failAll {
		return nil, errDown
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	if f.failAll {
		return nil, errDown
	}
	for _, p := range f.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ListByCategories(categoryIDs []int64) ([]*entity.Product, error) {
	if f.failAll {
		return nil, errDown
	}
	in := make(map[int64]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		in[id] = true
	}
	var out []*entity.Product
	for _, p := range f.products {
		if p.Status == entity.ProductActive && in[p.CategoryID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListBySubcategory(subcategoryID int64) ([]*entity.Product, error) {
	return f.ListByCategories([]int64{subcategoryID})
}

func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	if f.failAll {
		return nil, errDown
	}
	return f.products, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture compartida: árbol hair-care / skin-care con productos
// ──────────────────────────────────────────────────────────────────────────────

func ptr(v int64) *int64 { return &v }

func fixtureCategories() []*entity.Category {
	return []*entity.Category{
		{ID: 1, Name: "Hair Care", Slug: "hair-care", IsActive: true, SortOrder: 1},
		{ID: 2, Name: "Skin Care", Slug: "skin-care", IsActive: true, SortOrder: 2},
		{ID: 3, ParentID: ptr(1), Name: "Shampoo", Slug: "shampoo", IsActive: true, SortOrder: 1},
		{ID: 4, ParentID: ptr(2), Name: "Face Cream", Slug: "face-cream", IsActive: true, SortOrder: 1},
		{ID: 5, ParentID: ptr(3), Name: "Sulfate Free", Slug: "sulfate-free", IsActive: true, SortOrder: 1},
		// Huérfana: su padre no existe en ningún nivel, debe ser invisible
		{ID: 6, ParentID: ptr(99), Name: "Huérfana", Slug: "huerfana", IsActive: true},
	}
}

func fixtureProducts() []*entity.Product {
	return []*entity.Product{
		{ID: 10, Name: "Anti Caspa Pro", Slug: "anti-caspa-pro", Status: entity.ProductActive, CategoryID: 3},
		{ID: 11, Name: "Hydra Boost SPF30", Slug: "", Status: entity.ProductActive, CategoryID: 4},
		{ID: 12, Name: "Café Serum", Slug: "", Status: entity.ProductActive, CategoryID: 2},
		// Mismo slug que la subcategoría "shampoo": la subcategoría debe ganar
		{ID: 13, Name: "Shampoo Genérico", Slug: "shampoo", Status: entity.ProductActive, CategoryID: 1},
		// Slug duplicado: el primero en orden del repositorio gana
		{ID: 14, Name: "Aceite Argán", Slug: "aceite-argan", Status: entity.ProductActive, CategoryID: 3},
		{ID: 15, Name: "Aceite Argán Premium", Slug: "aceite-argan", Status: entity.ProductActive, CategoryID: 3},
		// Borrador: nunca visible en el storefront
		{ID: 16, Name: "Prelanzamiento", Slug: "prelanzamiento", Status: entity.ProductDraft, CategoryID: 3},
	}
}

func fixtureRepos() (*fakeCategoryRepo, *fakeProductRepo) {
	return &fakeCategoryRepo{categories: fixtureCategories()},
		&fakeProductRepo{products: fixtureProducts()}
}
