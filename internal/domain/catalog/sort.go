package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/cre-directory/internal/domain"
	"github.com/jhoicas/cre-directory/internal/domain/entity"
)

// SortKey criterio de orden de un listado.
type SortKey string

const (
	SortDefault SortKey = ""        // orden de la colección
	SortName    SortKey = "name"    // título ascendente, con collation
	SortRating  SortKey = "rating"  // calificación descendente; sin calificación = 0
	SortUpdated SortKey = "updated" // last_updated descendente; vacío al final
	SortPrice   SortKey = "price"   // precio inicial ascendente; sin precio al final
)

// ParseSortKey valida un criterio recibido como texto.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortDefault, SortName, SortRating, SortUpdated, SortPrice:
		return k, nil
	default:
		return SortDefault, fmt.Errorf("%w: %q", domain.ErrInvalidSortKey, s)
	}
}

// Sort devuelve una copia ordenada de forma estable; la entrada no se modifica.
// Los empates conservan el orden previo.
func Sort(products []*entity.Product, key SortKey) []*entity.Product {
	out := slices.Clone(products)
	switch key {
	case SortName:
		col := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b *entity.Product) int {
			return col.CompareString(a.Title, b.Title)
		})
	case SortRating:
		slices.SortStableFunc(out, func(a, b *entity.Product) int {
			return compareFloatDesc(a.RatingOrZero(), b.RatingOrZero())
		})
	case SortUpdated:
		slices.SortStableFunc(out, func(a, b *entity.Product) int {
			return strings.Compare(b.LastUpdated, a.LastUpdated)
		})
	case SortPrice:
		slices.SortStableFunc(out, comparePrice)
	}
	return out
}

// compareFloatDesc orden descendente total: NaN queda después de cualquier número.
func compareFloatDesc(a, b float64) int {
	return cmp.Compare(b, a)
}

func comparePrice(a, b *entity.Product) int {
	da, okA := a.StartingAmount()
	db, okB := b.StartingAmount()
	switch {
	case okA && okB:
		return da.Cmp(db)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return 0
	}
}
