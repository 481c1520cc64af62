package catalog

import "github.com/jhoicas/cre-directory/internal/domain/entity"

// Criteria predicados independientes combinados con AND. El valor cero es el filtro identidad.
type Criteria struct {
	FreeTrial    bool
	FreeTier     bool
	HasPricing   bool
	PropertyType string // vacío = sin filtro
}

// IsZero indica que no hay ningún criterio activo.
func (c Criteria) IsZero() bool {
	return !c.FreeTrial && !c.FreeTier && !c.HasPricing && c.PropertyType == ""
}

// Accepts evalúa todos los criterios activos sobre un producto.
func (c Criteria) Accepts(p *entity.Product) bool {
	if c.FreeTrial && !p.HasFreeTrial() {
		return false
	}
	if c.FreeTier && !p.HasFreeTier() {
		return false
	}
	if c.HasPricing && !p.HasPricing() {
		return false
	}
	if c.PropertyType != "" && !hasString(p.EffectivePropertyTypes(), c.PropertyType) {
		return false
	}
	return true
}

// Filter conserva los productos que cumplen todos los criterios, en el orden de entrada.
func Filter(products []*entity.Product, c Criteria) []*entity.Product {
	if c.IsZero() {
		return products
	}
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if c.Accepts(p) {
			out = append(out, p)
		}
	}
	return out
}

func hasString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
