package catalog_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/catalog"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Árbol de navegación: una lectura bulk + particionado en memoria
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryTree_ParticionaTresNiveles(t *testing.T) {
	cats, prods := fixtureRepos()
	svc := catalog.NewService(cats, prods)

	tree, err := svc.CategoryTree()
	require.NoError(t, err)
	require.Len(t, tree, 2, "dos raíces: hair-care y skin-care")

	hair := tree[0]
	assert.Equal(t, "hair-care", hair.Slug)
	assert.Equal(t, 0, hair.Level)
	require.Len(t, hair.Children, 1)

	shampoo := hair.Children[0]
	assert.Equal(t, "shampoo", shampoo.Slug)
	assert.Equal(t, 1, shampoo.Level)
	require.Len(t, shampoo.Children, 1)
	assert.Equal(t, "sulfate-free", shampoo.Children[0].Slug)
	assert.Equal(t, 2, shampoo.Children[0].Level)
}

// Una fila cuyo padre no está en ningún nivel se descarta en silencio.
func TestCategoryTree_DescartaHuerfanas(t *testing.T) {
	cats, prods := fixtureRepos()
	svc := catalog.NewService(cats, prods)

	tree, err := svc.CategoryTree()
	require.NoError(t, err)

	var walk func(nodes []*entity.CategoryNode)
	var seen []string
	walk = func(nodes []*entity.CategoryNode) {
		for _, n := range nodes {
			seen = append(seen, n.Slug)
			walk(n.Children)
		}
	}
	walk(tree)
	assert.NotContains(t, seen, "huerfana")
}

// Escenario 4: dos callers concurrentes dentro de la misma ventana en vuelo
// disparan exactamente una lectura y reciben el mismo resultado.
func TestCategoryTree_DeduplicaLecturasEnVuelo(t *testing.T) {
	cats, prods := fixtureRepos()
	cats.gate = make(chan struct{})
	svc := catalog.NewService(cats, prods)

	const callers = 2
	results := make([][]*entity.CategoryNode, callers)
	errs := make([]error, callers)

	var done sync.WaitGroup
	done.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer done.Done()
			results[i], errs[i] = svc.CategoryTree()
		}(i)
	}

	// Espera a que la primera lectura esté retenida en la compuerta y da
	// margen a que el segundo caller se una a la ventana en vuelo.
	for atomic.LoadInt32(&cats.listActiveCalls) == 0 {
		time.Sleep(time.Millisecond)
	}
	time.Sleep(20 * time.Millisecond)
	close(cats.gate) // libera la única lectura retenida
	done.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&cats.listActiveCalls),
		"exactamente una lectura a la base dentro de la ventana en vuelo")
	assert.Same(t, results[0][0], results[1][0], "ambos callers comparten el mismo resultado")
}

// Tras completar, la entrada desaparece: la siguiente llamada vuelve a leer.
func TestCategoryTree_SinCachePorTiempo(t *testing.T) {
	cats, prods := fixtureRepos()
	svc := catalog.NewService(cats, prods)

	_, err := svc.CategoryTree()
	require.NoError(t, err)
	_, err = svc.CategoryTree()
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&cats.listActiveCalls),
		"sin ventana en vuelo compartida no hay deduplicación ni caché")
}

// ──────────────────────────────────────────────────────────────────────────────
// Subtree: fan-out de hijas por subcategoría
// ──────────────────────────────────────────────────────────────────────────────

func TestSubtree_TraeHijasDeCadaSubcategoria(t *testing.T) {
	cats, prods := fixtureRepos()
	svc := catalog.NewService(cats, prods)

	nodes, err := svc.Subtree(1)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "shampoo", nodes[0].Slug)
	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, "sulfate-free", nodes[0].Children[0].Slug)
}

// Invariante: todo elemento devuelto para un parentID tiene ese parent.
func TestSubtree_InvarianteDeParent(t *testing.T) {
	cats, prods := fixtureRepos()
	svc := catalog.NewService(cats, prods)

	nodes, err := svc.Subtree(2)
	require.NoError(t, err)
	for _, n := range nodes {
		require.NotNil(t, n.ParentID)
		assert.Equal(t, int64(2), *n.ParentID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos bajo una categoría
// ──────────────────────────────────────────────────────────────────────────────

func TestProductsUnderCategory_IncluyeRaizYSubcategorias(t *testing.T) {
	cats, prods := fixtureRepos()
	svc := catalog.NewService(cats, prods)

	products, err := svc.ProductsUnderCategory(1)
	require.NoError(t, err)

	var ids []int64
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	// Productos de hair-care (1) y shampoo (3); el borrador queda fuera
	assert.ElementsMatch(t, []int64{10, 13, 14, 15}, ids)
}

func TestProductsBySubcategory_SoloEsaSubcategoria(t *testing.T) {
	cats, prods := fixtureRepos()
	svc := catalog.NewService(cats, prods)

	products, err := svc.ProductsBySubcategory(4)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Hydra Boost SPF30", products[0].Name)
}

// Fallo del backend se propaga como error, no como lista vacía.
func TestProductsUnderCategory_PropagaFallo(t *testing.T) {
	cats, prods := fixtureRepos()
	prods.failAll = true
	svc := catalog.NewService(cats, prods)

	_, err := svc.ProductsUnderCategory(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errDown)
}
