package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cre-directory/internal/domain/entity"
)

func TestProduct_DecodificaDocumentoCompleto(t *testing.T) {
	raw := `{
		"slug": "appfolio",
		"title": "AppFolio",
		"headline": "Move Beyond Property Management Software",
		"short_description": "AI-native property management platform.",
		"categories": ["Property Management", "AI & Automation"],
		"pricing": {"model": "Subscription", "starting_price": "$1.40/unit/mo", "free_trial": false, "free_tier": false,
			"plans": [{"name": "Core", "price": "$1.40", "description": "Base"}]},
		"target_audience": {"roles": ["Property Managers"], "company_sizes": ["Small", "Enterprise"], "property_types": ["Multifamily"]},
		"feature_groups": [{"name": "AI", "features": [{"name": "Agentic AI", "description": "Native AI"}]}],
		"company": {"name": "AppFolio, Inc.", "founded": 2006, "headquarters": "Santa Barbara, CA"},
		"is_featured": true,
		"rating": 4.2,
		"review_count": 310,
		"last_updated": "2025-02-01"
	}`
	var p entity.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "appfolio", p.Slug)
	assert.Equal(t, "AI-native property management platform.", p.Summary())
	assert.Equal(t, []string{"Multifamily"}, p.EffectivePropertyTypes())
	require.NotNil(t, p.Rating)
	assert.InDelta(t, 4.2, *p.Rating, 1e-9)
	assert.Equal(t, 310, p.ReviewCount)
	assert.True(t, p.IsFeatured)
	assert.True(t, p.HasPricing())
	require.NotNil(t, p.Company)
	assert.Equal(t, 2006, p.Company.Founded)
	assert.Equal(t, "Agentic AI Native AI", p.FeatureText())

	amount, ok := p.StartingAmount()
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("1.40")))
}

func TestProduct_CamposMalFormadosQuedanEnCero(t *testing.T) {
	raw := `{
		"slug": "raro",
		"title": "Raro",
		"categories": "no es lista",
		"rating": "4.5",
		"review_count": "muchas",
		"pricing": "gratis",
		"target_audience": {"company_sizes": [1, "Small"]},
		"is_verified": "yes",
		"feature_groups": [{"name": "G", "features": "x"}, 7]
	}`
	var p entity.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, "raro", p.Slug)
	assert.Nil(t, p.Categories)
	require.NotNil(t, p.Rating, "una cadena numérica se acepta como calificación")
	assert.InDelta(t, 4.5, *p.Rating, 1e-9)
	assert.Zero(t, p.ReviewCount)
	assert.Nil(t, p.Pricing)
	assert.False(t, p.HasFreeTrial())
	assert.Equal(t, []string{"Small"}, p.CompanySizes())
	assert.False(t, p.IsVerified)
	require.Len(t, p.FeatureGroups, 1)
	assert.Empty(t, p.FeatureGroups[0].Features)
}

func TestProduct_CalificacionNoFinitaOFueraDeRangoQuedaAusente(t *testing.T) {
	cases := map[string]string{
		"nan":       `"NaN"`,
		"inf":       `"Inf"`,
		"infinity":  `"-Infinity"`,
		"negativa":  `-1`,
		"mayor a 5": `7.5`,
		"cadena":    `"excelente"`,
	}
	for name, rating := range cases {
		t.Run(name, func(t *testing.T) {
			var p entity.Product
			require.NoError(t, json.Unmarshal([]byte(`{"slug":"x","rating":`+rating+`}`), &p))
			assert.Nil(t, p.Rating)
		})
	}

	var p entity.Product
	require.NoError(t, json.Unmarshal([]byte(`{"slug":"x","rating":5}`), &p))
	require.NotNil(t, p.Rating, "los extremos del rango son válidos")
	assert.Equal(t, 5.0, *p.Rating)
}

func TestProduct_ContadoresFueraDeRangoQuedanEnCero(t *testing.T) {
	raw := `[
		{"slug":"enorme","review_count":1e300,"company":{"name":"A","founded":"Infinity"}},
		{"slug":"fraccion","review_count":12.5,"company":{"name":"B","founded":-1999}},
		{"slug":"ok","review_count":"42","company":{"name":"C","founded":2006}}
	]`
	var list []entity.Product
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	require.Len(t, list, 3)

	assert.Zero(t, list[0].ReviewCount)
	assert.Zero(t, list[0].Company.Founded)
	assert.Zero(t, list[1].ReviewCount)
	assert.Zero(t, list[1].Company.Founded)
	assert.Equal(t, 42, list[2].ReviewCount)
	assert.Equal(t, 2006, list[2].Company.Founded)

	var c entity.Category
	require.NoError(t, json.Unmarshal([]byte(`{"slug":"x","name":"X","product_count":1e300}`), &c))
	assert.Zero(t, c.ProductCount)
	require.NoError(t, json.Unmarshal([]byte(`{"slug":"x","name":"X","product_count":3}`), &c))
	assert.Equal(t, 3, c.ProductCount)
}

func TestProduct_PropertyTypesHeredado(t *testing.T) {
	var p entity.Product
	require.NoError(t, json.Unmarshal([]byte(`{"slug":"x","property_types":["Office"],"target_audience":{"roles":["Broker"]}}`), &p))
	assert.Equal(t, []string{"Office"}, p.EffectivePropertyTypes(), "sin la clave en target_audience se usa el campo heredado")

	require.NoError(t, json.Unmarshal([]byte(`{"slug":"x","property_types":["Office"],"target_audience":{"property_types":[]}}`), &p))
	assert.Empty(t, p.EffectivePropertyTypes(), "la clave presente aunque vacía tiene prioridad")
}

func TestProduct_StartingPrice(t *testing.T) {
	cases := []struct {
		raw     string
		priced  bool
		amount  string
		hasAmnt bool
	}{
		{`{"pricing":{"starting_price":null}}`, false, "", false},
		{`{"pricing":{"starting_price":""}}`, false, "", false},
		{`{"pricing":{"starting_price":"Contact for pricing"}}`, true, "", false},
		{`{"pricing":{"starting_price":"$2,500/month"}}`, true, "2500", true},
		{`{"pricing":{"starting_price":49}}`, true, "49", true},
	}
	for _, tc := range cases {
		var p entity.Product
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &p))
		assert.Equal(t, tc.priced, p.HasPricing(), tc.raw)
		amount, ok := p.StartingAmount()
		assert.Equal(t, tc.hasAmnt, ok, tc.raw)
		if tc.hasAmnt {
			assert.True(t, amount.Equal(decimal.RequireFromString(tc.amount)), tc.raw)
		}
	}
}

func TestProduct_ListaConRegistrosInvalidos(t *testing.T) {
	var list []*entity.Product
	require.NoError(t, json.Unmarshal([]byte(`[{"slug":"a"}, "texto", null]`), &list))
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Slug)
	assert.Empty(t, list[1].Slug)
	assert.Nil(t, list[2])
}

func TestCategory_Decodifica(t *testing.T) {
	var cats map[string]*entity.Category
	raw := `{"pm":{"name":"Property Management","product_count":2,"products":["a","b"],"editorial":{"intro":"Hola"}}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &cats))
	c := cats["pm"]
	require.NotNil(t, c)
	assert.Equal(t, 2, c.ProductCount)
	assert.True(t, c.Contains("b"))
	assert.False(t, c.Contains("c"))
	assert.JSONEq(t, `{"intro":"Hola"}`, string(c.Editorial))
}

func TestBadgeSet(t *testing.T) {
	var s entity.BadgeSet
	s = s.With(entity.BadgeSmallTeams).With(entity.BadgePopular)
	assert.True(t, s.Has(entity.BadgePopular))
	assert.False(t, s.Has(entity.BadgeValue))
	assert.Equal(t, []string{"popular", "small_teams"}, s.Codes())
	assert.Equal(t, "Best Value", entity.BadgeValue.Label())
}
