package catalog

import (
	"strings"

	"github.com/jhoicas/cre-directory/internal/domain/entity"
)

// Search filtra por contención de subcadena, sin distinguir mayúsculas.
// Consulta vacía (o solo espacios) devuelve la entrada tal cual. El orden se conserva.
func Search(products []*entity.Product, query string) []*entity.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// Matches evalúa el predicado de búsqueda; q debe venir normalizado (minúsculas, sin espacios extremos).
func Matches(p *entity.Product, q string) bool {
	if contains(p.Title, q) || contains(p.Summary(), q) || contains(p.Description, q) {
		return true
	}
	for _, c := range p.Categories {
		if contains(c, q) {
			return true
		}
	}
	return contains(p.FeatureText(), q)
}

func contains(s, q string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), q)
}
