package entity

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Rango válido de calificación; fuera de él la calificación queda ausente.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Product representa una herramienta del directorio, tal como llega en products.json.
// Es inmutable después de la carga; las insignias derivadas viven fuera del registro.
type Product struct {
	Slug             string // clave única en la colección
	Title            string
	URL              string
	Domain           string
	LogoURL          string
	Tagline          string
	ShortDescription string
	Headline         string
	Description      string
	Categories       []string // nombres, no slugs
	PropertyTypes    []string // campo heredado; ver EffectivePropertyTypes
	Deployment       []string
	PricingModel     string // campo heredado
	Pricing          *Pricing
	TargetAudience   *TargetAudience
	Rating           *float64 // 0..5; nil si no tiene calificación
	ReviewCount      int
	FeatureGroups    []FeatureGroup
	Pros             []string
	Cons             []string
	Integrations     []string
	Company          *Company
	IsFree           bool
	IsTopRated       bool
	IsFeatured       bool
	IsVerified       bool
	LastUpdated      string // fecha ISO, comparable lexicográficamente
}

// Pricing información comercial del producto.
type Pricing struct {
	Model          string
	StartingPrice  string // texto libre ("$25/mes", "Contact for pricing"); vacío = no publicado
	BillingOptions []string
	FreeTrial      bool
	FreeTier       bool
	Plans          []Plan
}

// Plan un plan de precios publicado.
type Plan struct {
	Name        string
	Price       string
	Description string
}

// TargetAudience público objetivo declarado por el proveedor.
// PropertyTypes es nil cuando el documento no trae la clave.
type TargetAudience struct {
	Roles         []string
	CompanySizes  []string
	PropertyTypes []string
}

// FeatureGroup agrupa funcionalidades para presentación y búsqueda.
type FeatureGroup struct {
	Name     string
	Features []Feature
}

// Feature una funcionalidad individual.
type Feature struct {
	Name        string
	Description string
}

// Company datos del fabricante.
type Company struct {
	Name         string
	Founded      int
	Headquarters string
	Employees    string
	Funding      string
}

// Summary devuelve el primer texto corto no vacío: short_description, tagline o headline.
func (p *Product) Summary() string {
	for _, s := range []string{p.ShortDescription, p.Tagline, p.Headline} {
		if s != "" {
			return s
		}
	}
	return ""
}

// EffectivePropertyTypes prioriza target_audience.property_types sobre el campo heredado.
func (p *Product) EffectivePropertyTypes() []string {
	if p.TargetAudience != nil && p.TargetAudience.PropertyTypes != nil {
		return p.TargetAudience.PropertyTypes
	}
	return p.PropertyTypes
}

// CompanySizes devuelve los tamaños de empresa declarados (vacío si no hay público objetivo).
func (p *Product) CompanySizes() []string {
	if p.TargetAudience == nil {
		return nil
	}
	return p.TargetAudience.CompanySizes
}

// RatingOrZero devuelve la calificación o 0 si no existe.
func (p *Product) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// HasFreeTrial indica pricing.free_trial.
func (p *Product) HasFreeTrial() bool { return p.Pricing != nil && p.Pricing.FreeTrial }

// HasFreeTier indica pricing.free_tier.
func (p *Product) HasFreeTier() bool { return p.Pricing != nil && p.Pricing.FreeTier }

// HasPricing indica que pricing.starting_price está presente y no vacío.
func (p *Product) HasPricing() bool {
	return p.Pricing != nil && strings.TrimSpace(p.Pricing.StartingPrice) != ""
}

// FeatureText concatena nombres y descripciones de todas las funcionalidades, separados por espacio.
func (p *Product) FeatureText() string {
	var b strings.Builder
	for _, g := range p.FeatureGroups {
		for _, f := range g.Features {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(f.Name)
			b.WriteByte(' ')
			b.WriteString(f.Description)
		}
	}
	return b.String()
}

var amountPattern = regexp.MustCompile(`[0-9][0-9,]*(\.[0-9]+)?`)

// StartingAmount extrae el primer monto numérico de starting_price ("$1,200/mo" -> 1200).
func (p *Product) StartingAmount() (decimal.Decimal, bool) {
	if !p.HasPricing() {
		return decimal.Zero, false
	}
	m := amountPattern.FindString(p.Pricing.StartingPrice)
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// UnmarshalJSON decodifica campo por campo; los campos opcionales mal formados quedan en cero.
func (p *Product) UnmarshalJSON(data []byte) error {
	obj, ok := parseObject(data)
	if !ok {
		// Registro sin forma de objeto: queda vacío y el catálogo lo descarta por no tener slug.
		*p = Product{}
		return nil
	}
	*p = Product{
		Slug:             obj.str("slug"),
		Title:            obj.str("title"),
		URL:              obj.str("url"),
		Domain:           obj.str("domain"),
		LogoURL:          obj.str("logo_url"),
		Tagline:          obj.str("tagline"),
		ShortDescription: obj.str("short_description"),
		Headline:         obj.str("headline"),
		Description:      obj.str("description"),
		Categories:       obj.strs("categories"),
		PropertyTypes:    obj.strs("property_types"),
		Deployment:       obj.strs("deployment"),
		PricingModel:     obj.str("pricing_model"),
		Pros:             obj.strs("pros"),
		Cons:             obj.strs("cons"),
		Integrations:     obj.strs("integrations"),
		IsFree:           obj.boolean("is_free"),
		IsTopRated:       obj.boolean("is_top_rated"),
		IsFeatured:       obj.boolean("is_featured"),
		IsVerified:       obj.boolean("is_verified"),
		LastUpdated:      obj.str("last_updated"),
	}
	if r, ok := obj.number("rating"); ok && r >= MinRating && r <= MaxRating {
		p.Rating = &r
	}
	if n, ok := obj.count("review_count"); ok {
		p.ReviewCount = n
	}
	if pr, ok := obj.object("pricing"); ok {
		p.Pricing = decodePricing(pr)
	}
	if ta, ok := obj.object("target_audience"); ok {
		p.TargetAudience = &TargetAudience{
			Roles:         ta.strs("roles"),
			CompanySizes:  ta.strs("company_sizes"),
			PropertyTypes: ta.strs("property_types"),
		}
	}
	for _, g := range obj.objects("feature_groups") {
		group := FeatureGroup{Name: g.str("name")}
		for _, f := range g.objects("features") {
			group.Features = append(group.Features, Feature{Name: f.str("name"), Description: f.str("description")})
		}
		p.FeatureGroups = append(p.FeatureGroups, group)
	}
	if c, ok := obj.object("company"); ok {
		founded, _ := c.count("founded")
		p.Company = &Company{
			Name:         c.str("name"),
			Founded:      founded,
			Headquarters: c.str("headquarters"),
			Employees:    c.str("employees"),
			Funding:      c.str("funding"),
		}
	}
	return nil
}

func decodePricing(obj rawObject) *Pricing {
	pr := &Pricing{
		Model:          obj.str("model"),
		StartingPrice:  obj.str("starting_price"),
		BillingOptions: obj.strs("billing_options"),
		FreeTrial:      obj.boolean("free_trial"),
		FreeTier:       obj.boolean("free_tier"),
	}
	for _, pl := range obj.objects("plans") {
		pr.Plans = append(pr.Plans, Plan{Name: pl.str("name"), Price: pl.str("price"), Description: pl.str("description")})
	}
	return pr
}
