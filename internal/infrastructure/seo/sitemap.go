// Package seo construye el sitemap.xml del storefront a partir del árbol de
// navegación y el catálogo de productos. Una URL por locale soportado para el
// home, cada categoría de los tres niveles y cada producto activo.
package seo

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/beevik/etree"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/config"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapBuilder arma el documento XML del sitemap.
type SitemapBuilder struct {
	baseURL string
	locales []string
}

// NewSitemapBuilder construye el builder desde la configuración de la tienda.
func NewSitemapBuilder(store config.StoreConfig) *SitemapBuilder {
	return &SitemapBuilder{
		baseURL: strings.TrimRight(store.BaseURL, "/"),
		locales: store.Locales,
	}
}

// Build genera el sitemap en bytes. Los productos cuya categoría no aparece en
// el árbol (huérfanos o despublicados) se omiten, igual que en la navegación.
func (b *SitemapBuilder) Build(tree []*entity.CategoryNode, products []*entity.Product) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNS)

	paths := categoryPaths(tree)

	for _, locale := range b.locales {
		b.addURL(urlset, "/"+locale)

		for _, root := range tree {
			b.addURL(urlset, "/"+locale+paths[root.ID])
			for _, sub := range root.Children {
				b.addURL(urlset, "/"+locale+paths[sub.ID])
				for _, child := range sub.Children {
					b.addURL(urlset, "/"+locale+paths[child.ID])
				}
			}
		}

		for _, p := range products {
			base, ok := paths[p.CategoryID]
			if !ok {
				continue
			}
			b.addURL(urlset, "/"+locale+base+"/"+url.PathEscape(p.EffectiveSlug()))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("sitemap: serializar: %w", err)
	}
	return out, nil
}

func (b *SitemapBuilder) addURL(urlset *etree.Element, path string) {
	u := urlset.CreateElement("url")
	u.CreateElement("loc").SetText(b.baseURL + path)
}

// categoryPaths aplana el árbol en un índice id -> path relativo con slugs
// escapados ("/hair-care/shampoo/sulfate-free").
func categoryPaths(tree []*entity.CategoryNode) map[int64]string {
	paths := make(map[int64]string)
	for _, root := range tree {
		rootPath := "/" + url.PathEscape(root.Slug)
		paths[root.ID] = rootPath
		for _, sub := range root.Children {
			subPath := rootPath + "/" + url.PathEscape(sub.Slug)
			paths[sub.ID] = subPath
			for _, child := range sub.Children {
				paths[child.ID] = subPath + "/" + url.PathEscape(child.Slug)
			}
		}
	}
	return paths
}
