package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/catalog"
)

func newResolver() *catalog.Resolver {
	cats, prods := fixtureRepos()
	return catalog.NewResolver(cats, prods)
}

// ──────────────────────────────────────────────────────────────────────────────
// Un segmento
// ──────────────────────────────────────────────────────────────────────────────

// Escenario 1: el segmento coincide con el slug de una subcategoría.
func TestResolve_UnSegmento_Subcategoria(t *testing.T) {
	target, err := newResolver().Resolve("hair-care", []string{"shampoo"})
	require.NoError(t, err)

	assert.Equal(t, catalog.TargetSubcategory, target.Kind)
	require.NotNil(t, target.Subcategory)
	assert.Equal(t, "Shampoo", target.Subcategory.Name)
	assert.Equal(t, "hair-care", target.Category.Slug)
}

// Precedencia: un segmento que coincide con subcategoría Y con producto
// resuelve a la subcategoría (el paso 2 precede al paso 3).
func TestResolve_UnSegmento_SubcategoriaGanaAProducto(t *testing.T) {
	target, err := newResolver().Resolve("hair-care", []string{"shampoo"})
	require.NoError(t, err)

	assert.Equal(t, catalog.TargetSubcategory, target.Kind)
	assert.Nil(t, target.Product)
}

// El segmento no coincide con nada: NotFound sin error.
func TestResolve_UnSegmento_SinCoincidencia(t *testing.T) {
	target, err := newResolver().Resolve("hair-care", []string{"anti-dandruff-pro"})
	require.NoError(t, err)
	assert.Equal(t, catalog.TargetNotFound, target.Kind)
}

// Producto colgado directo de la raíz: subcategoría nil en el resultado.
func TestResolve_UnSegmento_ProductoBajoRaiz(t *testing.T) {
	target, err := newResolver().Resolve("skin-care", []string{"café-serum"})
	require.NoError(t, err)

	assert.Equal(t, catalog.TargetProduct, target.Kind)
	require.NotNil(t, target.Product)
	assert.Equal(t, "Café Serum", target.Product.Name)
	assert.Nil(t, target.Subcategory)
}

// Normalización: el segmento llega percent-encoded y con mayúsculas; debe
// igualar el slug derivado del nombre tras decode + lowercase.
func TestResolve_UnSegmento_NormalizacionPercentEncoding(t *testing.T) {
	target, err := newResolver().Resolve("skin-care", []string{"Caf%C3%A9-Serum"})
	require.NoError(t, err)

	assert.Equal(t, catalog.TargetProduct, target.Kind)
	assert.Equal(t, int64(12), target.Product.ID)
}

// Desempate entre slugs duplicados: gana el primero en el orden natural del
// repositorio. Regla explícita, no accidental.
func TestResolve_UnSegmento_DesempatePrimeraCoincidencia(t *testing.T) {
	target, err := newResolver().Resolve("hair-care", []string{"aceite-argan"})
	require.NoError(t, err)

	assert.Equal(t, catalog.TargetProduct, target.Kind)
	assert.Equal(t, int64(14), target.Product.ID, "debe ganar el primero en orden del repositorio")
}

// Un producto en borrador no es visible aunque el slug coincida.
func TestResolve_UnSegmento_BorradorInvisible(t *testing.T) {
	target, err := newResolver().Resolve("hair-care", []string{"prelanzamiento"})
	require.NoError(t, err)
	assert.Equal(t, catalog.TargetNotFound, target.Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dos segmentos
// ──────────────────────────────────────────────────────────────────────────────

// Escenario 3: subcategoría + producto con slug derivado del nombre.
func TestResolve_DosSegmentos_Producto(t *testing.T) {
	target, err := newResolver().Resolve("skin-care", []string{"face-cream", "hydra-boost-spf30"})
	require.NoError(t, err)

	assert.Equal(t, catalog.TargetProduct, target.Kind)
	require.NotNil(t, target.Product)
	assert.Equal(t, "Hydra Boost SPF30", target.Product.Name)
	require.NotNil(t, target.Subcategory)
	assert.Equal(t, "face-cream", target.Subcategory.Slug)
}

func TestResolve_DosSegmentos_PrimerSegmentoNoEsSubcategoria(t *testing.T) {
	target, err := newResolver().Resolve("skin-care", []string{"no-existe", "hydra-boost-spf30"})
	require.NoError(t, err)
	assert.Equal(t, catalog.TargetNotFound, target.Kind)
}

func TestResolve_DosSegmentos_ProductoNoEsta(t *testing.T) {
	target, err := newResolver().Resolve("skin-care", []string{"face-cream", "no-existe"})
	require.NoError(t, err)
	assert.Equal(t, catalog.TargetNotFound, target.Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reinterpretación de jerarquía (segmento de categoría ambiguo)
// ──────────────────────────────────────────────────────────────────────────────

// La URL nombra una subcategoría en la posición de categoría: el nodo pasa a
// ser la subcategoría, su padre la raíz efectiva.
func TestResolve_Reinterpretacion_SubcategoriaComoRaiz(t *testing.T) {
	target, err := newResolver().Resolve("shampoo", nil)
	require.NoError(t, err)

	assert.Equal(t, catalog.TargetSubcategory, target.Kind)
	assert.Equal(t, "hair-care", target.Category.Slug)
	assert.Equal(t, "shampoo", target.Subcategory.Slug)
}

// El siguiente segmento se resuelve como subcategoría hija (parent_id = subcategoría).
func TestResolve_Reinterpretacion_SubcategoriaHija(t *testing.T) {
	target, err := newResolver().Resolve("shampoo", []string{"sulfate-free"})
	require.NoError(t, err)

	assert.Equal(t, catalog.TargetChildCategory, target.Kind)
	require.NotNil(t, target.ChildCategory)
	assert.Equal(t, "sulfate-free", target.ChildCategory.Slug)
	assert.Equal(t, "shampoo", target.Subcategory.Slug)
	assert.Equal(t, "hair-care", target.Category.Slug)
}

// Si no hay hija, el segmento se intenta como producto de la subcategoría.
func TestResolve_Reinterpretacion_ProductoDeSubcategoria(t *testing.T) {
	target, err := newResolver().Resolve("shampoo", []string{"anti-caspa-pro"})
	require.NoError(t, err)

	assert.Equal(t, catalog.TargetProduct, target.Kind)
	assert.Equal(t, int64(10), target.Product.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Señales: ausencia vs fallo, idempotencia, bordes
// ──────────────────────────────────────────────────────────────────────────────

// Categoría inexistente es NotFound; backend caído es error. Nunca se confunden.
func TestResolve_AusenciaYFalloSonSeñalesDistintas(t *testing.T) {
	target, err := newResolver().Resolve("no-existe", []string{"shampoo"})
	require.NoError(t, err)
	assert.Equal(t, catalog.TargetNotFound, target.Kind)

	cats, prods := fixtureRepos()
	cats.failAll = true
	_, err = catalog.NewResolver(cats, prods).Resolve("hair-care", []string{"shampoo"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errDown)
}

// Resolver dos veces con la misma entrada sobre el mismo store produce el
// mismo target.
func TestResolve_Idempotencia(t *testing.T) {
	r := newResolver()
	first, err := r.Resolve("skin-care", []string{"face-cream", "hydra-boost-spf30"})
	require.NoError(t, err)
	second, err := r.Resolve("skin-care", []string{"face-cream", "hydra-boost-spf30"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_SlugVacioYMasDeDosSegmentos(t *testing.T) {
	r := newResolver()

	target, err := r.Resolve("   ", nil)
	require.NoError(t, err)
	assert.Equal(t, catalog.TargetNotFound, target.Kind)

	target, err = r.Resolve("hair-care", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, catalog.TargetNotFound, target.Kind)
}

// Sin segmentos: la raíz resuelve a sí misma.
func TestResolve_SinSegmentos_Categoria(t *testing.T) {
	target, err := newResolver().Resolve("hair-care", nil)
	require.NoError(t, err)
	assert.Equal(t, catalog.TargetCategory, target.Kind)
	assert.Equal(t, "hair-care", target.Category.Slug)
}
