package catalog

import (
	"slices"
	"strings"

	"github.com/jhoicas/cre-directory/internal/domain/entity"
)

// FacetCount valor de faceta con su cantidad de productos.
type FacetCount struct {
	Value string
	Count int
}

// FacetSummary datos para construir los controles de filtro.
type FacetSummary struct {
	PropertyTypes []FacetCount // por tipo de propiedad efectivo
	Categories    []FacetCount // por nombre de categoría declarado en el producto
	FreeTrial     int
	FreeTier      int
	WithPricing   int
	Total         int
}

// Facets cuenta valores sobre la colección dada. Las listas salen por cantidad descendente y luego por nombre.
func Facets(products []*entity.Product) FacetSummary {
	var s FacetSummary
	types := map[string]int{}
	cats := map[string]int{}
	for _, p := range products {
		if p == nil {
			continue
		}
		s.Total++
		for _, t := range dedupe(p.EffectivePropertyTypes()) {
			types[t]++
		}
		for _, c := range dedupe(p.Categories) {
			cats[c]++
		}
		if p.HasFreeTrial() {
			s.FreeTrial++
		}
		if p.HasFreeTier() {
			s.FreeTier++
		}
		if p.HasPricing() {
			s.WithPricing++
		}
	}
	s.PropertyTypes = sortedCounts(types)
	s.Categories = sortedCounts(cats)
	return s
}

func sortedCounts(m map[string]int) []FacetCount {
	out := make([]FacetCount, 0, len(m))
	for v, n := range m {
		out = append(out, FacetCount{Value: v, Count: n})
	}
	slices.SortFunc(out, func(a, b FacetCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Value, b.Value)
	})
	return out
}

func dedupe(list []string) []string {
	if len(list) < 2 {
		return list
	}
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
