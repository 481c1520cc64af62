package catalog_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cre-directory/internal/domain"
	"github.com/jhoicas/cre-directory/internal/domain/catalog"
	"github.com/jhoicas/cre-directory/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func rating(v float64) *float64 { return &v }

func slugs(list []*entity.Product) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Slug)
	}
	return out
}

// decodeProducts decodifica como lo hace la fuente JSON real.
func decodeProducts(t *testing.T, raw string) []*entity.Product {
	t.Helper()
	var out []*entity.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

// sample es el escenario de ejemplo: Alpha con free trial y Beta sin pricing.
func sample() []*entity.Product {
	return []*entity.Product{
		{Slug: "a", Title: "Alpha", Rating: rating(4.5), IsFeatured: true, Pricing: &entity.Pricing{FreeTrial: true}},
		{Slug: "b", Title: "Beta", Rating: rating(3.0), Pricing: &entity.Pricing{}},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de ejemplo
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenarioEjemplo(t *testing.T) {
	products := sample()

	assert.Equal(t, []string{"a"}, slugs(catalog.Search(products, "alp")))
	assert.Equal(t, []string{"a"}, slugs(catalog.Filter(products, catalog.Criteria{FreeTrial: true})))
	assert.Equal(t, []string{"a", "b"}, slugs(catalog.Sort(products, catalog.SortRating)))
}

func TestProductsInCategory_AutoridadEsLaCategoria(t *testing.T) {
	products := []*entity.Product{
		{Slug: "a", Title: "A"},
		{Slug: "b", Title: "B", Categories: []string{"Otra"}},
		{Slug: "c", Title: "C", Categories: []string{"Property Management"}},
	}
	cats := map[string]*entity.Category{
		"pm": {Slug: "pm", Name: "Property Management", Products: []string{"a", "b"}, ProductCount: 2},
	}
	c := catalog.New(products, cats)

	got, ok := c.ProductsInCategory("pm")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, slugs(got), "la lista products de la categoría manda, no la del producto")

	_, ok = c.ProductsInCategory("no-existe")
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

func TestSearch_ConsultaVaciaDevuelveColeccion(t *testing.T) {
	products := sample()
	for _, q := range []string{"", "   ", "\t\n"} {
		got := catalog.Search(products, q)
		assert.Equal(t, slugs(products), slugs(got), "consulta %q", q)
	}
}

func TestSearch_CamposCubiertos(t *testing.T) {
	products := []*entity.Product{
		{Slug: "title", Title: "LeaseWise"},
		{Slug: "short", ShortDescription: "Tenant portal"},
		{Slug: "tagline", Tagline: "Broker CRM"},
		{Slug: "headline", Headline: "Cap table toolkit"},
		{Slug: "desc", Description: "Handles CAM reconciliation"},
		{Slug: "cat", Categories: []string{"Energy & Sustainability"}},
		{Slug: "feat", FeatureGroups: []entity.FeatureGroup{{Name: "Grupo", Features: []entity.Feature{{Name: "Rent roll", Description: "Automated abstraction"}}}}},
	}

	cases := map[string][]string{
		"leasewise":      {"title"},
		"TENANT":         {"short"},
		"broker":         {"tagline"},
		"cap table":      {"headline"},
		"reconciliation": {"desc"},
		"sustainab":      {"cat"},
		"rent roll":      {"feat"},
		"abstraction":    {"feat"},
		"  Automated  ":  {"feat"},
		"grupo":          {},
		"nada-coincide":  {},
	}
	for q, want := range cases {
		got := slugs(catalog.Search(products, q))
		assert.ElementsMatch(t, want, got, "consulta %q", q)
	}
}

func TestSearch_ResumenUsaSoloElPrimerTextoNoVacio(t *testing.T) {
	p := &entity.Product{Slug: "x", ShortDescription: "Short", Tagline: "Tagline oculta"}
	assert.Empty(t, catalog.Search([]*entity.Product{p}, "oculta"),
		"el tagline no participa si short_description tiene texto")
}

func TestSearch_CoincidenciaExactaEnResultadoYAusenciaFuera(t *testing.T) {
	products := decodeProducts(t, `[
		{"slug":"a","title":"Yardi Breeze","categories":["Property Management"]},
		{"slug":"b","title":"VTS","description":"Leasing and asset management"},
		{"slug":"c","title":"Juniper Square","tagline":"Investor portal"}
	]`)
	q := "management"
	got := catalog.Search(products, q)
	assert.Equal(t, []string{"a", "b"}, slugs(got))
	for _, p := range got {
		assert.True(t, catalog.Matches(p, q))
	}
	assert.False(t, catalog.Matches(products[2], q))
}

// ──────────────────────────────────────────────────────────────────────────────
// Filter
// ──────────────────────────────────────────────────────────────────────────────

func filterFixture(t *testing.T) []*entity.Product {
	return decodeProducts(t, `[
		{"slug":"p1","pricing":{"free_trial":true,"starting_price":"$25/mo"},"target_audience":{"property_types":["Office"]}},
		{"slug":"p2","pricing":{"free_tier":true},"property_types":["Office","Retail"]},
		{"slug":"p3","pricing":{"free_trial":true,"free_tier":true,"starting_price":""},"target_audience":{"property_types":[]},"property_types":["Office"]},
		{"slug":"p4","pricing":{"starting_price":99}},
		{"slug":"p5"}
	]`)
}

func TestFilter_CriteriosIndividuales(t *testing.T) {
	products := filterFixture(t)

	assert.Equal(t, slugs(products), slugs(catalog.Filter(products, catalog.Criteria{})), "sin criterios es identidad")
	assert.Equal(t, []string{"p1", "p3"}, slugs(catalog.Filter(products, catalog.Criteria{FreeTrial: true})))
	assert.Equal(t, []string{"p2", "p3"}, slugs(catalog.Filter(products, catalog.Criteria{FreeTier: true})))
	assert.Equal(t, []string{"p1", "p4"}, slugs(catalog.Filter(products, catalog.Criteria{HasPricing: true})))
	// p3 declara target_audience.property_types vacío: no cae al campo heredado.
	assert.Equal(t, []string{"p1", "p2"}, slugs(catalog.Filter(products, catalog.Criteria{PropertyType: "Office"})))
}

func TestFilter_ConjuncionEsInterseccion(t *testing.T) {
	products := filterFixture(t)
	a := catalog.Criteria{FreeTrial: true}
	b := catalog.Criteria{PropertyType: "Office"}
	both := catalog.Criteria{FreeTrial: true, PropertyType: "Office"}

	ab := catalog.Filter(catalog.Filter(products, a), b)
	ba := catalog.Filter(catalog.Filter(products, b), a)
	assert.Equal(t, slugs(ab), slugs(ba))
	assert.Equal(t, slugs(ab), slugs(catalog.Filter(products, both)))

	onlyA := map[string]bool{}
	for _, p := range catalog.Filter(products, a) {
		onlyA[p.Slug] = true
	}
	var inter []string
	for _, p := range catalog.Filter(products, b) {
		if onlyA[p.Slug] {
			inter = append(inter, p.Slug)
		}
	}
	assert.Equal(t, inter, slugs(ab))
}

// ──────────────────────────────────────────────────────────────────────────────
// Sort
// ──────────────────────────────────────────────────────────────────────────────

func TestSort_RatingEstable(t *testing.T) {
	products := []*entity.Product{
		{Slug: "sin1"},
		{Slug: "cuatro-a", Rating: rating(4)},
		{Slug: "cero", Rating: rating(0)},
		{Slug: "cinco", Rating: rating(5)},
		{Slug: "cuatro-b", Rating: rating(4)},
		{Slug: "sin2"},
	}
	got := catalog.Sort(products, catalog.SortRating)
	assert.Equal(t, []string{"cinco", "cuatro-a", "cuatro-b", "sin1", "cero", "sin2"}, slugs(got))
	assert.Equal(t, "sin1", products[0].Slug, "la entrada no se modifica")
}

func TestSort_RatingConRegistroMalFormado(t *testing.T) {
	products := decodeProducts(t, `[{"slug":"three","rating":3},{"slug":"bad","rating":"NaN"},{"slug":"five","rating":5}]`)
	assert.Equal(t, []string{"five", "three", "bad"}, slugs(catalog.Sort(products, catalog.SortRating)))
}

func TestSort_RatingNaNConstruidoEnCodigoVaAlFinal(t *testing.T) {
	products := []*entity.Product{
		{Slug: "tres", Rating: rating(3)},
		{Slug: "nan", Rating: rating(math.NaN())},
		{Slug: "cinco", Rating: rating(5)},
		{Slug: "uno", Rating: rating(1)},
	}
	assert.Equal(t, []string{"cinco", "tres", "uno", "nan"}, slugs(catalog.Sort(products, catalog.SortRating)))
}

func TestSort_NameYUpdated(t *testing.T) {
	products := []*entity.Product{
		{Slug: "z", Title: "zeta", LastUpdated: "2024-01-10"},
		{Slug: "b", Title: "Beta"},
		{Slug: "a", Title: "alpha", LastUpdated: "2025-03-01"},
		{Slug: "e", Title: "Éclair", LastUpdated: ""},
	}
	assert.Equal(t, []string{"a", "b", "e", "z"}, slugs(catalog.Sort(products, catalog.SortName)))
	assert.Equal(t, []string{"a", "z", "b", "e"}, slugs(catalog.Sort(products, catalog.SortUpdated)))
	assert.Equal(t, []string{"z", "b", "a", "e"}, slugs(catalog.Sort(products, catalog.SortDefault)))
}

func TestSort_Price(t *testing.T) {
	products := decodeProducts(t, `[
		{"slug":"quote","pricing":{"starting_price":"Contact for pricing"}},
		{"slug":"grande","pricing":{"starting_price":"$1,200/mo"}},
		{"slug":"none"},
		{"slug":"chico","pricing":{"starting_price":25}}
	]`)
	assert.Equal(t, []string{"chico", "grande", "quote", "none"}, slugs(catalog.Sort(products, catalog.SortPrice)))
}

func TestParseSortKey(t *testing.T) {
	k, err := catalog.ParseSortKey(" Rating ")
	require.NoError(t, err)
	assert.Equal(t, catalog.SortRating, k)

	k, err = catalog.ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, catalog.SortDefault, k)

	_, err = catalog.ParseSortKey("popularity")
	assert.ErrorIs(t, err, domain.ErrInvalidSortKey)
}

// ──────────────────────────────────────────────────────────────────────────────
// Query
// ──────────────────────────────────────────────────────────────────────────────

func TestQuery_TotalYPagina(t *testing.T) {
	products := []*entity.Product{
		{Slug: "a", Title: "Lease A", Rating: rating(3)},
		{Slug: "b", Title: "Lease B", Rating: rating(5)},
		{Slug: "c", Title: "Other"},
		{Slug: "d", Title: "Lease D", Rating: rating(4)},
	}
	c := catalog.New(products, nil)

	res := c.Query(catalog.Query{Text: "lease", Sort: catalog.SortRating, Limit: 2})
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, []string{"b", "d"}, slugs(res.Products))

	res = c.Query(catalog.Query{Text: "lease", Sort: catalog.SortRating, Offset: 2, Limit: 2})
	assert.Equal(t, []string{"a"}, slugs(res.Products))

	res = c.Query(catalog.Query{Offset: 10})
	assert.Equal(t, 4, res.Total)
	assert.Empty(t, res.Products)

	res = c.Query(catalog.Query{Category: "desconocida"})
	assert.Zero(t, res.Total)
	assert.NotNil(t, res.Products)

	assert.Equal(t, []string{"a", "b", "c", "d"}, slugs(c.Products()), "las consultas no alteran la colección")
}

// ──────────────────────────────────────────────────────────────────────────────
// Catalog
// ──────────────────────────────────────────────────────────────────────────────

func TestNew_DescartaSinSlugYDuplicados(t *testing.T) {
	products := []*entity.Product{
		{Slug: "a", Title: "Primero"},
		nil,
		{Title: "sin slug"},
		{Slug: "a", Title: "Duplicado"},
	}
	c := catalog.New(products, nil)
	assert.Equal(t, 1, c.Len())
	p, ok := c.Product("a")
	require.True(t, ok)
	assert.Equal(t, "Primero", p.Title)
	assert.NotEmpty(t, c.ID())
}

func TestCategories_OrdenYSlugDesdeClave(t *testing.T) {
	cats := map[string]*entity.Category{
		"crm":   {Name: "CRM & Marketing", ProductCount: 2, Products: []string{"x", "y"}},
		"data":  {Name: "Data & Analytics", ProductCount: 5},
		"legal": {Name: "Legal & Compliance", ProductCount: 2},
	}
	c := catalog.New(nil, cats)
	ordered := c.Categories()
	require.Len(t, ordered, 3)
	assert.Equal(t, "data", ordered[0].Slug)
	assert.Equal(t, "crm", ordered[1].Slug)
	assert.Equal(t, "legal", ordered[2].Slug)
	assert.Empty(t, cats["crm"].Slug, "el registro de entrada no se modifica")
}

func TestCategoryLinks_NombreSinIndiceQuedaSinEnlace(t *testing.T) {
	p := &entity.Product{Slug: "a", Categories: []string{"Broker Tools", "Inventada"}}
	c := catalog.New([]*entity.Product{p}, map[string]*entity.Category{
		"broker-tools": {Slug: "broker-tools", Name: "Broker Tools"},
	})
	links := c.CategoryLinks(p)
	require.Len(t, links, 2)
	assert.Equal(t, catalog.CategoryLink{Name: "Broker Tools", Slug: "broker-tools", Linked: true}, links[0])
	assert.Equal(t, catalog.CategoryLink{Name: "Inventada"}, links[1])
}

func TestFeaturedYCompare(t *testing.T) {
	products := []*entity.Product{
		{Slug: "a"}, {Slug: "b", IsTopRated: true}, {Slug: "c", IsFeatured: true}, {Slug: "d"},
	}
	c := catalog.New(products, nil)
	assert.Equal(t, []string{"b", "c"}, slugs(c.Featured(2)))
	assert.Equal(t, []string{"a", "b", "c"}, slugs(c.Featured(3)), "menos destacados que n: primeros n")
	assert.Empty(t, c.Featured(0))

	assert.Equal(t, []string{"d", "a"}, slugs(c.Compare([]string{"d", "", "zz", "a"})))
}

func TestEmpty(t *testing.T) {
	c := catalog.Empty()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Query(catalog.Query{Text: "x"}).Products)
	_, ok := c.Product("a")
	assert.False(t, ok)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de presentación
// ──────────────────────────────────────────────────────────────────────────────

func TestSlugify(t *testing.T) {
	assert.Equal(t, "crm-marketing", catalog.Slugify("CRM & Marketing"))
	assert.Equal(t, "workplace-space-management", catalog.Slugify(" Workplace & Space  Management "))
	assert.Equal(t, "ai-automation", catalog.Slugify("AI_&_Automation"))
}

func TestLogoColorEInitial(t *testing.T) {
	assert.Equal(t, catalog.LogoColor("AppFolio"), catalog.LogoColor("AppFolio"))
	assert.Regexp(t, `^#[0-9a-f]{6}$`, catalog.LogoColor("HqO"))
	assert.Equal(t, "A", catalog.Initial("appfolio"))
	assert.Equal(t, "?", catalog.Initial(""))
}
