package dto

// ProductQueryRequest parámetros de búsqueda, filtro y orden (GET /api/products, vistas HTML).
type ProductQueryRequest struct {
	Q            string `query:"q" validate:"max=200"`
	FreeTrial    bool   `query:"free_trial"`
	FreeTier     bool   `query:"free_tier"`
	HasPricing   bool   `query:"has_pricing"`
	PropertyType string `query:"property_type" validate:"max=100"`
	Sort         string `query:"sort" validate:"omitempty,oneof=name rating updated price"`
	PageRequest
}

// ProductSummaryDTO tarjeta de producto para listados.
type ProductSummaryDTO struct {
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	LogoURL       string   `json:"logo_url,omitempty"`
	LogoColor     string   `json:"logo_color"`
	Initial       string   `json:"initial"`
	Categories    []string `json:"categories"`
	Rating        *float64 `json:"rating,omitempty"`
	ReviewCount   int      `json:"review_count,omitempty"`
	PricingModel  string   `json:"pricing_model,omitempty"`
	StartingPrice string   `json:"starting_price,omitempty"`
	FreeTrial     bool     `json:"free_trial"`
	FreeTier      bool     `json:"free_tier"`
	IsFree        bool     `json:"is_free"`
	IsFeatured    bool     `json:"is_featured"`
	IsVerified    bool     `json:"is_verified"`
	LastUpdated   string   `json:"last_updated,omitempty"`
	Badges        []string `json:"badges"`
}

// CategoryLinkDTO categoría del producto; Slug vacío cuando no está indexada.
type CategoryLinkDTO struct {
	Name   string `json:"name"`
	Slug   string `json:"slug,omitempty"`
	Linked bool   `json:"linked"`
}

// PlanDTO plan de precios.
type PlanDTO struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
}

// PricingDTO precios publicados.
type PricingDTO struct {
	Model          string    `json:"model,omitempty"`
	StartingPrice  string    `json:"starting_price,omitempty"`
	BillingOptions []string  `json:"billing_options,omitempty"`
	FreeTrial      bool      `json:"free_trial"`
	FreeTier       bool      `json:"free_tier"`
	Plans          []PlanDTO `json:"plans,omitempty"`
}

// AudienceDTO público objetivo.
type AudienceDTO struct {
	Roles         []string `json:"roles,omitempty"`
	CompanySizes  []string `json:"company_sizes,omitempty"`
	PropertyTypes []string `json:"property_types"`
}

// FeatureDTO funcionalidad.
type FeatureDTO struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// FeatureGroupDTO grupo de funcionalidades.
type FeatureGroupDTO struct {
	Name     string       `json:"name"`
	Features []FeatureDTO `json:"features"`
}

// CompanyDTO datos del fabricante.
type CompanyDTO struct {
	Name         string `json:"name,omitempty"`
	Founded      int    `json:"founded,omitempty"`
	Headquarters string `json:"headquarters,omitempty"`
	Employees    string `json:"employees,omitempty"`
	Funding      string `json:"funding,omitempty"`
}

// RelatedGroupDTO relacionados bajo una categoría.
type RelatedGroupDTO struct {
	Category CategoryLinkDTO     `json:"category"`
	Items    []ProductSummaryDTO `json:"items"`
}

// ProductDetailResponse ficha completa de un producto.
type ProductDetailResponse struct {
	ProductSummaryDTO
	URL           string            `json:"url,omitempty"`
	Domain        string            `json:"domain,omitempty"`
	Description   string            `json:"description"`
	CategoryLinks []CategoryLinkDTO `json:"category_links"`
	Deployment    []string          `json:"deployment,omitempty"`
	Pricing       *PricingDTO       `json:"pricing,omitempty"`
	Audience      AudienceDTO       `json:"target_audience"`
	FeatureGroups []FeatureGroupDTO `json:"feature_groups,omitempty"`
	Pros          []string          `json:"pros,omitempty"`
	Cons          []string          `json:"cons,omitempty"`
	Integrations  []string          `json:"integrations,omitempty"`
	Company       *CompanyDTO       `json:"company,omitempty"`
	Related       []RelatedGroupDTO `json:"related,omitempty"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductSummaryDTO `json:"items"`
	Page  PageResponse        `json:"page"`
}

// CompareResponse productos seleccionados para comparar, en el orden pedido.
type CompareResponse struct {
	Items []ProductDetailResponse `json:"items"`
}

// ProductOptionDTO entrada del selector de productos en la vista de comparación.
type ProductOptionDTO struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}
