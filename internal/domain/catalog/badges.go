package catalog

import (
	"regexp"
	"slices"

	"github.com/jhoicas/cre-directory/internal/domain/entity"
)

// BadgeLimit máximo de productos por insignia.
const BadgeLimit = 5

// smallTeamsPattern regla literal del sitio: "1-" también coincide con "11-50".
var smallTeamsPattern = regexp.MustCompile(`(?i)small|startup|1-|individual`)

// BadgeTable tabla lateral slug -> insignias. Reemplaza las marcas _badge_* escritas sobre los productos.
type BadgeTable map[string]entity.BadgeSet

// Of devuelve las insignias de un slug (conjunto vacío si no tiene).
func (t BadgeTable) Of(slug string) entity.BadgeSet { return t[slug] }

// Holders slugs que tienen la insignia, en el orden de asignación.
func (t BadgeTable) Holders(products []*entity.Product, b entity.Badge) []string {
	var out []string
	for _, p := range products {
		if t[p.Slug].Has(b) {
			out = append(out, p.Slug)
		}
	}
	return out
}

// AssignBadges calcula las tres insignias como selecciones top-5 independientes.
// Es una función pura: repetirla produce la misma tabla.
func AssignBadges(products []*entity.Product) BadgeTable {
	table := make(BadgeTable)
	mark := func(b entity.Badge, eligible []*entity.Product) {
		slices.SortStableFunc(eligible, func(a, c *entity.Product) int {
			return compareFloatDesc(a.RatingOrZero(), c.RatingOrZero())
		})
		for i, p := range eligible {
			if i == BadgeLimit {
				break
			}
			table[p.Slug] = table[p.Slug].With(b)
		}
	}

	var popular, value, small []*entity.Product
	for _, p := range products {
		if p == nil {
			continue
		}
		if p.Rating != nil && p.IsFeatured {
			popular = append(popular, p)
		}
		if (p.HasFreeTier() || p.HasFreeTrial()) && p.Rating != nil && *p.Rating >= 4 {
			value = append(value, p)
		}
		if servesSmallTeams(p) {
			small = append(small, p)
		}
	}
	mark(entity.BadgePopular, popular)
	mark(entity.BadgeValue, value)
	mark(entity.BadgeSmallTeams, small)
	return table
}

func servesSmallTeams(p *entity.Product) bool {
	for _, size := range p.CompanySizes() {
		if smallTeamsPattern.MatchString(size) {
			return true
		}
	}
	return false
}
