// Package catalog es el motor de consultas del directorio: búsqueda por texto,
// filtros, orden, insignias derivadas y productos relacionados sobre una
// colección en memoria. Todas las operaciones son puras; no hay E/S.
package catalog

import (
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cre-directory/internal/domain/entity"
)

// Catalog es una instantánea inmutable de productos y categorías para una sesión de consulta.
// Se construye una vez por carga y puede compartirse entre goroutines sin sincronización.
type Catalog struct {
	id         string
	loadedAt   time.Time
	products   []*entity.Product
	bySlug     map[string]*entity.Product
	categories map[string]*entity.Category
	byName     map[string]*entity.Category
	ordered    []*entity.Category
	badges     BadgeTable
}

// CategoryLink nombre de categoría de un producto resuelto contra el índice.
// Linked es falso cuando el nombre no existe en categories.json.
type CategoryLink struct {
	Name   string
	Slug   string
	Linked bool
}

// Query consulta compuesta: categoría, texto, filtros, orden y página.
type Query struct {
	Category string // slug; vacío = toda la colección
	Text     string
	Criteria Criteria
	Sort     SortKey
	Offset   int
	Limit    int // 0 = sin límite
}

// Result página de resultados y total antes de paginar.
type Result struct {
	Products []*entity.Product
	Total    int
}

// New indexa la colección y calcula las insignias. Los registros sin slug se descartan
// y ante slugs repetidos gana la primera aparición.
func New(products []*entity.Product, categories map[string]*entity.Category) *Catalog {
	c := &Catalog{
		id:         uuid.New().String(),
		loadedAt:   time.Now(),
		products:   make([]*entity.Product, 0, len(products)),
		bySlug:     make(map[string]*entity.Product, len(products)),
		categories: make(map[string]*entity.Category, len(categories)),
		byName:     make(map[string]*entity.Category, len(categories)),
	}
	for _, p := range products {
		if p == nil || p.Slug == "" {
			continue
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			continue
		}
		c.bySlug[p.Slug] = p
		c.products = append(c.products, p)
	}

	keys := make([]string, 0, len(categories))
	for k, cat := range categories {
		if cat != nil && k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		cat := *categories[k]
		if cat.Slug == "" {
			cat.Slug = k
		}
		c.categories[k] = &cat
		if _, exists := c.byName[cat.Name]; !exists && cat.Name != "" {
			c.byName[cat.Name] = &cat
		}
		c.ordered = append(c.ordered, &cat)
	}
	sort.SliceStable(c.ordered, func(i, j int) bool {
		a, b := c.ordered[i], c.ordered[j]
		if a.ProductCount != b.ProductCount {
			return a.ProductCount > b.ProductCount
		}
		return a.Name < b.Name
	})

	c.badges = AssignBadges(c.products)
	return c
}

// Empty catálogo sin datos; es el estado ante un fallo de carga.
func Empty() *Catalog { return New(nil, nil) }

// ID identificador de la instantánea.
func (c *Catalog) ID() string { return c.id }

// LoadedAt momento de construcción.
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

// Len cantidad de productos indexados.
func (c *Catalog) Len() int { return len(c.products) }

// CategoryCount cantidad de categorías indexadas.
func (c *Catalog) CategoryCount() int { return len(c.categories) }

// Products copia de la colección en su orden original.
func (c *Catalog) Products() []*entity.Product { return slices.Clone(c.products) }

// Product busca por slug.
func (c *Catalog) Product(slug string) (*entity.Product, bool) {
	p, ok := c.bySlug[slug]
	return p, ok
}

// Category busca por slug.
func (c *Catalog) Category(slug string) (*entity.Category, bool) {
	cat, ok := c.categories[slug]
	return cat, ok
}

// CategoryByName busca por nombre exacto.
func (c *Catalog) CategoryByName(name string) (*entity.Category, bool) {
	cat, ok := c.byName[name]
	return cat, ok
}

// Categories categorías ordenadas por product_count descendente y luego por nombre.
func (c *Catalog) Categories() []*entity.Category { return slices.Clone(c.ordered) }

// ProductsInCategory productos listados en category.products, en el orden de la colección.
// La lista categories del propio producto no interviene.
func (c *Catalog) ProductsInCategory(slug string) ([]*entity.Product, bool) {
	cat, ok := c.categories[slug]
	if !ok {
		return nil, false
	}
	members := make(map[string]bool, len(cat.Products))
	for _, s := range cat.Products {
		members[s] = true
	}
	out := make([]*entity.Product, 0, len(cat.Products))
	for _, p := range c.products {
		if members[p.Slug] {
			out = append(out, p)
		}
	}
	return out, true
}

// CategoryLinks resuelve los nombres de categoría del producto contra el índice.
func (c *Catalog) CategoryLinks(p *entity.Product) []CategoryLink {
	links := make([]CategoryLink, 0, len(p.Categories))
	for _, name := range p.Categories {
		if cat, ok := c.byName[name]; ok {
			links = append(links, CategoryLink{Name: name, Slug: cat.Slug, Linked: true})
			continue
		}
		links = append(links, CategoryLink{Name: name})
	}
	return links
}

// Badges insignias de un producto.
func (c *Catalog) Badges(slug string) entity.BadgeSet { return c.badges.Of(slug) }

// BadgeHolders productos con la insignia, en el orden de la colección.
func (c *Catalog) BadgeHolders(b entity.Badge) []*entity.Product {
	var out []*entity.Product
	for _, p := range c.products {
		if c.badges.Of(p.Slug).Has(b) {
			out = append(out, p)
		}
	}
	return out
}

// Featured productos destacados (top rated o featured); si hay menos de n se usan los primeros n.
func (c *Catalog) Featured(n int) []*entity.Product {
	if n <= 0 {
		return nil
	}
	var top []*entity.Product
	for _, p := range c.products {
		if p.IsTopRated || p.IsFeatured {
			top = append(top, p)
			if len(top) == n {
				return top
			}
		}
	}
	if len(c.products) < n {
		n = len(c.products)
	}
	return slices.Clone(c.products[:n])
}

// Compare resuelve slugs en el orden dado, descartando vacíos y desconocidos.
func (c *Catalog) Compare(slugs []string) []*entity.Product {
	out := make([]*entity.Product, 0, len(slugs))
	for _, s := range slugs {
		if p, ok := c.bySlug[strings.TrimSpace(s)]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Related productos relacionados por categoría del sujeto.
func (c *Catalog) Related(p *entity.Product, limit int) []RelatedGroup {
	return RelatedByCategory(p, c.products, limit)
}

// Query aplica categoría, búsqueda, filtros y orden, y luego pagina.
// Una categoría desconocida produce un resultado vacío.
func (c *Catalog) Query(q Query) Result {
	base := c.products
	if q.Category != "" {
		members, ok := c.ProductsInCategory(q.Category)
		if !ok {
			return Result{Products: []*entity.Product{}}
		}
		base = members
	}
	matched := Sort(Filter(Search(base, q.Text), q.Criteria), q.Sort)
	return Result{Products: page(matched, q.Offset, q.Limit), Total: len(matched)}
}

func page(list []*entity.Product, offset, limit int) []*entity.Product {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return []*entity.Product{}
	}
	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return list[offset:end]
}
