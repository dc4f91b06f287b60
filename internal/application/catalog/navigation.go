package catalog

import (
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// Service lecturas de navegación del storefront. Las lecturas idénticas
// concurrentes se colapsan con singleflight: la segunda petición en vuelo
// recibe el mismo resultado sin ir a la base. La entrada desaparece al
// completar (éxito o error); no hay caché por tiempo ni invalidación.
type Service struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	flight     singleflight.Group
}

// NewService construye el servicio con sus repositorios.
func NewService(categories repository.CategoryRepository, products repository.ProductRepository) *Service {
	return &Service{categories: categories, products: products}
}

// CategoryTree devuelve el árbol completo raíz -> subcategoría -> hija a partir
// de una sola lectura bulk, particionada en memoria por parent_id. Las filas
// cuyo padre no aparece en ningún nivel se descartan en silencio.
func (s *Service) CategoryTree() ([]*entity.CategoryNode, error) {
	v, err, _ := s.flight.Do("categoryTree", func() (interface{}, error) {
		rows, err := s.categories.ListActive()
		if err != nil {
			return nil, fmt.Errorf("listar categorías activas: %w", err)
		}
		return buildTree(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*entity.CategoryNode), nil
}

// Subtree devuelve las subcategorías de una categoría con sus hijas, trayendo
// las hijas de cada subcategoría en paralelo (fan-out de solo lectura, sin
// dependencia de orden entre las llamadas).
func (s *Service) Subtree(categoryID int64) ([]*entity.CategoryNode, error) {
	subs, err := s.categories.ListSubcategories(categoryID)
	if err != nil {
		return nil, fmt.Errorf("subcategorías de %d: %w", categoryID, err)
	}

	nodes := make([]*entity.CategoryNode, len(subs))
	var g errgroup.Group
	for i, sub := range subs {
		i, sub := i, sub
		g.Go(func() error {
			children, err := s.categories.ListSubcategories(sub.ID)
			if err != nil {
				return fmt.Errorf("hijas de %d: %w", sub.ID, err)
			}
			node := &entity.CategoryNode{Category: *sub, Level: 1}
			for _, c := range children {
				node.Children = append(node.Children, &entity.CategoryNode{Category: *c, Level: 2})
			}
			nodes[i] = node
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}

// ProductsUnderCategory lista los productos activos bajo la raíz y todas sus
// subcategorías, deduplicando lecturas en vuelo por categoría raíz.
func (s *Service) ProductsUnderCategory(rootID int64) ([]*entity.Product, error) {
	v, err, _ := s.flight.Do("products:"+strconv.FormatInt(rootID, 10), func() (interface{}, error) {
		subs, err := s.categories.ListSubcategories(rootID)
		if err != nil {
			return nil, fmt.Errorf("subcategorías de %d: %w", rootID, err)
		}
		ids := make([]int64, 0, len(subs)+1)
		ids = append(ids, rootID)
		for _, sub := range subs {
			ids = append(ids, sub.ID)
		}
		products, err := s.products.ListByCategories(ids)
		if err != nil {
			return nil, fmt.Errorf("productos de %v: %w", ids, err)
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*entity.Product), nil
}

// ProductsBySubcategory lista los productos activos de una subcategoría.
func (s *Service) ProductsBySubcategory(subcategoryID int64) ([]*entity.Product, error) {
	v, err, _ := s.flight.Do("productsSub:"+strconv.FormatInt(subcategoryID, 10), func() (interface{}, error) {
		products, err := s.products.ListBySubcategory(subcategoryID)
		if err != nil {
			return nil, fmt.Errorf("productos de subcategoría %d: %w", subcategoryID, err)
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*entity.Product), nil
}

// buildTree particiona la lectura bulk en tres niveles siguiendo parent_id:
// raíces (parent nulo), subcategorías (padre en el set de raíces) y las hijas
// (padre en el set de subcategorías). Se preserva el orden de las filas
// (sort_order, nombre) dentro de cada nivel.
func buildTree(rows []*entity.Category) []*entity.CategoryNode {
	rootSet := make(map[int64]*entity.CategoryNode)
	var roots []*entity.CategoryNode
	for _, c := range rows {
		if c.ParentID == nil {
			n := &entity.CategoryNode{Category: *c, Level: 0}
			rootSet[c.ID] = n
			roots = append(roots, n)
		}
	}

	subSet := make(map[int64]*entity.CategoryNode)
	for _, c := range rows {
		if c.ParentID == nil {
			continue
		}
		if parent, ok := rootSet[*c.ParentID]; ok {
			n := &entity.CategoryNode{Category: *c, Level: 1}
			subSet[c.ID] = n
			parent.Children = append(parent.Children, n)
		}
	}

	for _, c := range rows {
		if c.ParentID == nil {
			continue
		}
		if _, isSub := subSet[c.ID]; isSub {
			continue
		}
		if parent, ok := subSet[*c.ParentID]; ok {
			parent.Children = append(parent.Children, &entity.CategoryNode{Category: *c, Level: 2})
		}
		// Padre en ningún set: fila huérfana, se descarta.
	}

	return roots
}
