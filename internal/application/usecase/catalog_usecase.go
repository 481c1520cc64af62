package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jhoicas/cre-directory/internal/application/dto"
	"github.com/jhoicas/cre-directory/internal/application/ports"
	"github.com/jhoicas/cre-directory/internal/domain"
	"github.com/jhoicas/cre-directory/internal/domain/catalog"
	"github.com/jhoicas/cre-directory/internal/domain/entity"
	"github.com/jhoicas/cre-directory/internal/domain/repository"
	"github.com/jhoicas/cre-directory/pkg/logger"
)

// CatalogOptions ajustes opcionales del caso de uso.
type CatalogOptions struct {
	RelatedLimit int // tope por categoría en relacionados (default 10)
	MaxCompare   int // máximo de productos por comparación (default 4)
	Metrics      ports.CatalogMetrics
	PDF          ports.ComparisonPDFGenerator
	Log          *logger.Logger
}

// CatalogUseCase casos de uso de lectura del directorio sobre la instantánea vigente.
// La instantánea se reemplaza completa en cada recarga; las consultas nunca ven un estado a medias.
type CatalogUseCase struct {
	source       repository.CatalogSource
	current      atomic.Pointer[catalog.Catalog]
	reloadMu     sync.Mutex
	relatedLimit int
	maxCompare   int
	metrics      ports.CatalogMetrics
	pdf          ports.ComparisonPDFGenerator
	log          *logger.Logger
}

// NewCatalogUseCase construye el caso de uso con un catálogo vacío; llamar Reload para cargar datos.
func NewCatalogUseCase(source repository.CatalogSource, opts CatalogOptions) *CatalogUseCase {
	if opts.RelatedLimit <= 0 {
		opts.RelatedLimit = catalog.DefaultRelatedLimit
	}
	if opts.MaxCompare <= 0 {
		opts.MaxCompare = 4
	}
	if opts.Metrics == nil {
		opts.Metrics = noopMetrics{}
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	uc := &CatalogUseCase{
		source:       source,
		relatedLimit: opts.RelatedLimit,
		maxCompare:   opts.MaxCompare,
		metrics:      opts.Metrics,
		pdf:          opts.PDF,
		log:          opts.Log.Component("catalog"),
	}
	uc.current.Store(catalog.Empty())
	return uc
}

// Reload carga ambos conjuntos desde la fuente y publica una nueva instantánea.
// Si la carga falla se conserva la instantánea anterior (vacía en el arranque) y se devuelve el error.
func (uc *CatalogUseCase) Reload(ctx context.Context) error {
	uc.reloadMu.Lock()
	defer uc.reloadMu.Unlock()

	products, categories, err := uc.source.Load(ctx)
	if err != nil {
		uc.metrics.ObserveReload("error", uc.Snapshot().Len())
		uc.log.Error().Err(err).Str("source", uc.source.Describe()).Msg("carga del catálogo fallida, se mantiene la instantánea previa")
		return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	issues := catalog.Validate(products, categories)
	for i, issue := range issues {
		if i == 10 {
			uc.log.Warn().Int("restantes", len(issues)-i).Msg("más inconsistencias omitidas")
			break
		}
		uc.log.Warn().Str("kind", string(issue.Kind)).Str("subject", issue.Subject).Msg(issue.Detail)
	}

	snap := catalog.New(products, categories)
	uc.current.Store(snap)
	uc.metrics.ObserveReload("ok", snap.Len())
	uc.log.Info().
		Str("snapshot", snap.ID()).
		Str("source", uc.source.Describe()).
		Int("products", snap.Len()).
		Int("categories", snap.CategoryCount()).
		Int("issues", len(issues)).
		Msg("catálogo cargado")
	return nil
}

// Snapshot devuelve la instantánea vigente.
func (uc *CatalogUseCase) Snapshot() *catalog.Catalog {
	return uc.current.Load()
}

// Stats estado de la instantánea vigente.
func (uc *CatalogUseCase) Stats() dto.CatalogStatsResponse {
	snap := uc.Snapshot()
	return dto.CatalogStatsResponse{
		SnapshotID: snap.ID(),
		Source:     uc.source.Describe(),
		LoadedAt:   snap.LoadedAt(),
		Products:   snap.Len(),
		Categories: snap.CategoryCount(),
	}
}

// Search busca, filtra, ordena y pagina sobre toda la colección.
func (uc *CatalogUseCase) Search(in dto.ProductQueryRequest) (*dto.ProductListResponse, error) {
	q, err := toQuery(in)
	if err != nil {
		return nil, err
	}
	snap := uc.Snapshot()
	res := snap.Query(q)
	uc.metrics.ObserveQuery("search", string(q.Sort), res.Total)
	return &dto.ProductListResponse{
		Items: toSummaries(snap, res.Products),
		Page:  dto.NewPageResponse(q.Limit, q.Offset, res.Total),
	}, nil
}

// GetProduct ficha de un producto con categorías enlazadas y relacionados. nil si no existe.
func (uc *CatalogUseCase) GetProduct(slug string) (*dto.ProductDetailResponse, error) {
	snap := uc.Snapshot()
	p, ok := snap.Product(slug)
	if !ok {
		return nil, nil
	}
	out := toDetail(snap, p)
	for _, g := range snap.Related(p, uc.relatedLimit) {
		link := dto.CategoryLinkDTO{Name: g.Category}
		if cat, ok := snap.CategoryByName(g.Category); ok {
			link.Slug, link.Linked = cat.Slug, true
		}
		out.Related = append(out.Related, dto.RelatedGroupDTO{Category: link, Items: toSummaries(snap, g.Products)})
	}
	uc.metrics.ObserveQuery("product", "", 1)
	return out, nil
}

// ListCategories todas las categorías por cantidad de productos.
func (uc *CatalogUseCase) ListCategories() *dto.CategoryListResponse {
	cats := uc.Snapshot().Categories()
	items := make([]dto.CategoryResponse, 0, len(cats))
	for _, c := range cats {
		items = append(items, toCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}
}

// GetCategory categoría con sus productos, aplicando la misma consulta que Search. nil si no existe.
func (uc *CatalogUseCase) GetCategory(slug string, in dto.ProductQueryRequest) (*dto.CategoryDetailResponse, error) {
	q, err := toQuery(in)
	if err != nil {
		return nil, err
	}
	snap := uc.Snapshot()
	cat, ok := snap.Category(slug)
	if !ok {
		return nil, nil
	}
	q.Category = slug
	res := snap.Query(q)
	uc.metrics.ObserveQuery("category", string(q.Sort), res.Total)
	return &dto.CategoryDetailResponse{
		Category: toCategoryResponse(cat),
		Items:    toSummaries(snap, res.Products),
		Page:     dto.NewPageResponse(q.Limit, q.Offset, res.Total),
	}, nil
}

// Compare resuelve los slugs descartando vacíos o desconocidos y se queda con los
// primeros MaxCompare resueltos.
func (uc *CatalogUseCase) Compare(slugs []string) *dto.CompareResponse {
	snap := uc.Snapshot()
	products := snap.Compare(slugs)
	if len(products) > uc.maxCompare {
		products = products[:uc.maxCompare]
	}
	items := make([]dto.ProductDetailResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toDetail(snap, p))
	}
	uc.metrics.ObserveQuery("compare", "", len(items))
	return &dto.CompareResponse{Items: items}
}

// ProductOptions todos los productos por nombre, para los selectores de comparación.
func (uc *CatalogUseCase) ProductOptions() []dto.ProductOptionDTO {
	sorted := catalog.Sort(uc.Snapshot().Products(), catalog.SortName)
	out := make([]dto.ProductOptionDTO, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, dto.ProductOptionDTO{Slug: p.Slug, Title: p.Title})
	}
	return out
}

// MaxCompare máximo de productos por comparación.
func (uc *CatalogUseCase) MaxCompare() int { return uc.maxCompare }

// ComparePDF genera la hoja comparativa. ErrNotFound si ningún slug existe.
func (uc *CatalogUseCase) ComparePDF(ctx context.Context, slugs []string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, errors.New("generador PDF no configurado")
	}
	cmp := uc.Compare(slugs)
	if len(cmp.Items) == 0 {
		return nil, domain.ErrNotFound
	}
	titles := make([]string, 0, len(cmp.Items))
	for _, it := range cmp.Items {
		titles = append(titles, it.Title)
	}
	return uc.pdf.GenerateComparisonPDF(ctx, strings.Join(titles, " vs "), cmp.Items)
}

// Facets conteos para los controles de filtro sobre toda la colección.
func (uc *CatalogUseCase) Facets() *dto.FacetsResponse {
	f := catalog.Facets(uc.Snapshot().Products())
	return &dto.FacetsResponse{
		PropertyTypes: toFacetCounts(f.PropertyTypes),
		Categories:    toFacetCounts(f.Categories),
		FreeTrial:     f.FreeTrial,
		FreeTier:      f.FreeTier,
		WithPricing:   f.WithPricing,
		Total:         f.Total,
	}
}

// Home datos de portada: categorías, destacados y grupos por insignia.
func (uc *CatalogUseCase) Home(featured int) *dto.HomeResponse {
	snap := uc.Snapshot()
	out := &dto.HomeResponse{
		Categories: uc.ListCategories().Items,
		Featured:   toSummaries(snap, snap.Featured(featured)),
		Stats:      uc.Stats(),
	}
	for _, b := range entity.AllBadges {
		holders := snap.BadgeHolders(b)
		if len(holders) == 0 {
			continue
		}
		out.Badges = append(out.Badges, dto.BadgeGroupDTO{Code: b.Code(), Label: b.Label(), Items: toSummaries(snap, holders)})
	}
	return out
}

func toQuery(in dto.ProductQueryRequest) (catalog.Query, error) {
	key, err := catalog.ParseSortKey(in.Sort)
	if err != nil {
		return catalog.Query{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	in.PageRequest.Normalize()
	return catalog.Query{
		Text: in.Q,
		Criteria: catalog.Criteria{
			FreeTrial:    in.FreeTrial,
			FreeTier:     in.FreeTier,
			HasPricing:   in.HasPricing,
			PropertyType: strings.TrimSpace(in.PropertyType),
		},
		Sort:   key,
		Offset: in.Offset,
		Limit:  in.Limit,
	}, nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveQuery(string, string, int) {}
func (noopMetrics) ObserveReload(string, int)        {}
