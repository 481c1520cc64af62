package catalog

import "github.com/jhoicas/cre-directory/internal/domain/entity"

// DefaultRelatedLimit tope por categoría en la vista de detalle.
const DefaultRelatedLimit = 10

// RelatedGroup productos relacionados bajo una categoría del producto.
type RelatedGroup struct {
	Category string
	Products []*entity.Product
}

// RelatedByCategory agrupa otros productos por cada categoría del sujeto, en el orden en que las lista.
// Un producto se atribuye solo a la primera categoría compartida; el sujeto nunca aparece.
// Cada grupo conserva el orden de la colección y se corta en limit. Los grupos vacíos se omiten.
func RelatedByCategory(subject *entity.Product, products []*entity.Product, limit int) []RelatedGroup {
	if subject == nil {
		return nil
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	seen := map[string]bool{subject.Slug: true}
	var groups []RelatedGroup
	for _, cat := range subject.Categories {
		var members []*entity.Product
		for _, p := range products {
			if len(members) == limit {
				break
			}
			if p == nil || p == subject || seen[p.Slug] || !hasString(p.Categories, cat) {
				continue
			}
			members = append(members, p)
			seen[p.Slug] = true
		}
		if len(members) > 0 {
			groups = append(groups, RelatedGroup{Category: cat, Products: members})
		}
	}
	return groups
}
