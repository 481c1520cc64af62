package catalog

import (
	"fmt"
	"sort"

	"github.com/jhoicas/cre-directory/internal/domain/entity"
)

// IssueKind tipo de inconsistencia detectada en los datos.
type IssueKind string

const (
	IssueMissingSlug       IssueKind = "missing_slug"
	IssueDuplicateSlug     IssueKind = "duplicate_slug"
	IssueCountMismatch     IssueKind = "count_mismatch"
	IssueUnknownMember     IssueKind = "unknown_member"
	IssueUnindexedCategory IssueKind = "unindexed_category"
)

// Issue una inconsistencia. Ninguna impide usar el catálogo.
type Issue struct {
	Kind    IssueKind
	Subject string // slug del producto o de la categoría
	Detail  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Kind, i.Subject, i.Detail)
}

// Validate revisa los invariantes de los dos conjuntos de datos sin modificarlos.
func Validate(products []*entity.Product, categories map[string]*entity.Category) []Issue {
	var issues []Issue
	slugs := make(map[string]bool, len(products))
	kept := make([]*entity.Product, 0, len(products))
	for i, p := range products {
		if p == nil || p.Slug == "" {
			issues = append(issues, Issue{Kind: IssueMissingSlug, Subject: fmt.Sprintf("#%d", i), Detail: "registro sin slug, se descarta"})
			continue
		}
		if slugs[p.Slug] {
			issues = append(issues, Issue{Kind: IssueDuplicateSlug, Subject: p.Slug, Detail: "slug repetido, se conserva la primera aparición"})
			continue
		}
		slugs[p.Slug] = true
		kept = append(kept, p)
	}

	names := make(map[string]bool, len(categories))
	keys := make([]string, 0, len(categories))
	for k, c := range categories {
		if c != nil {
			keys = append(keys, k)
			names[c.Name] = true
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		c := categories[k]
		if c.ProductCount != len(c.Products) {
			issues = append(issues, Issue{
				Kind:    IssueCountMismatch,
				Subject: k,
				Detail:  fmt.Sprintf("product_count=%d pero products tiene %d", c.ProductCount, len(c.Products)),
			})
		}
		for _, s := range c.Products {
			if !slugs[s] {
				issues = append(issues, Issue{Kind: IssueUnknownMember, Subject: k, Detail: fmt.Sprintf("producto %q no existe", s)})
			}
		}
	}

	for _, p := range kept {
		for _, name := range p.Categories {
			if !names[name] {
				issues = append(issues, Issue{Kind: IssueUnindexedCategory, Subject: p.Slug, Detail: fmt.Sprintf("categoría %q sin índice, se muestra sin enlace", name)})
			}
		}
	}
	return issues
}
