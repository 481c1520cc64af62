package dto

import (
	"encoding/json"
	"time"
)

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	Slug         string          `json:"slug"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	ProductCount int             `json:"product_count"`
	Editorial    json.RawMessage `json:"editorial,omitempty" swaggertype:"object"`
}

// CategoryListResponse todas las categorías (product_count desc).
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}

// CategoryDetailResponse categoría con sus productos filtrados.
type CategoryDetailResponse struct {
	Category CategoryResponse    `json:"category"`
	Items    []ProductSummaryDTO `json:"items"`
	Page     PageResponse        `json:"page"`
}

// FacetCountDTO valor de faceta.
type FacetCountDTO struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FacetsResponse datos para los controles de filtro.
type FacetsResponse struct {
	PropertyTypes []FacetCountDTO `json:"property_types"`
	Categories    []FacetCountDTO `json:"categories"`
	FreeTrial     int             `json:"free_trial"`
	FreeTier      int             `json:"free_tier"`
	WithPricing   int             `json:"with_pricing"`
	Total         int             `json:"total"`
}

// BadgeGroupDTO productos con una insignia.
type BadgeGroupDTO struct {
	Code  string              `json:"code"`
	Label string              `json:"label"`
	Items []ProductSummaryDTO `json:"items"`
}

// HomeResponse datos de la portada.
type HomeResponse struct {
	Categories []CategoryResponse   `json:"categories"`
	Featured   []ProductSummaryDTO  `json:"featured"`
	Badges     []BadgeGroupDTO      `json:"badges"`
	Stats      CatalogStatsResponse `json:"stats"`
}

// CatalogStatsResponse estado de la instantánea cargada.
type CatalogStatsResponse struct {
	SnapshotID string    `json:"snapshot_id"`
	Source     string    `json:"source"`
	LoadedAt   time.Time `json:"loaded_at"`
	Products   int       `json:"products"`
	Categories int       `json:"categories"`
}

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status  string               `json:"status"`
	Service string               `json:"service"`
	Catalog CatalogStatsResponse `json:"catalog"`
}
