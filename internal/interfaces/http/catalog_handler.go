package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cre-directory/internal/application/dto"
	"github.com/jhoicas/cre-directory/internal/application/usecase"
	"github.com/jhoicas/cre-directory/internal/domain"
)

// CatalogHandler API JSON de solo lectura del directorio.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProducts godoc
// @Summary      Buscar, filtrar y ordenar productos
// @Tags         products
// @Produce      json
// @Param        q              query  string  false  "Texto a buscar"
// @Param        free_trial     query  bool    false  "Solo con prueba gratis"
// @Param        free_tier      query  bool    false  "Solo con plan gratuito"
// @Param        has_pricing    query  bool    false  "Solo con precio publicado"
// @Param        property_type  query  string  false  "Tipo de inmueble"
// @Param        sort           query  string  false  "Orden"  Enums(name, rating, updated, price)
// @Param        limit          query  int     false  "Límite"  default(20)
// @Param        offset         query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.ProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	var in dto.ProductQueryRequest
	if verr := parseProductQuery(c, &in); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	out, err := h.uc.Search(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetProduct godoc
// @Summary      Ficha de producto con relacionados
// @Tags         products
// @Produce      json
// @Param        slug  path  string  true  "Slug del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{slug} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	out, err := h.uc.GetProduct(c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListCategories())
}

// GetCategory godoc
// @Summary      Categoría con sus productos
// @Tags         categories
// @Produce      json
// @Param        slug           path   string  true   "Slug de la categoría"
// @Param        q              query  string  false  "Texto a buscar"
// @Param        free_trial     query  bool    false  "Solo con prueba gratis"
// @Param        free_tier      query  bool    false  "Solo con plan gratuito"
// @Param        has_pricing    query  bool    false  "Solo con precio publicado"
// @Param        property_type  query  string  false  "Tipo de inmueble"
// @Param        sort           query  string  false  "Orden"  Enums(name, rating, updated, price)
// @Param        limit          query  int     false  "Límite"  default(20)
// @Param        offset         query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.CategoryDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{slug} [get]
func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	var in dto.ProductQueryRequest
	if verr := parseProductQuery(c, &in); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	out, err := h.uc.GetCategory(c.Params("slug"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no encontrada"})
	}
	return c.JSON(out)
}

// Compare godoc
// @Summary      Comparar productos lado a lado
// @Tags         compare
// @Produce      json
// @Param        slugs  query  string  true  "Slugs separados por coma"
// @Success      200  {object}  dto.CompareResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/compare [get]
func (h *CatalogHandler) Compare(c *fiber.Ctx) error {
	slugs := splitSlugs(c.Query("slugs"))
	if len(slugs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "slugs es requerido"})
	}
	return c.JSON(h.uc.Compare(slugs))
}

// ComparePDF godoc
// @Summary      Hoja comparativa en PDF
// @Tags         compare
// @Produce      application/pdf
// @Param        slugs  query  string  true  "Slugs separados por coma"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compare/pdf [get]
func (h *CatalogHandler) ComparePDF(c *fiber.Ctx) error {
	slugs := splitSlugs(c.Query("slugs"))
	if len(slugs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "slugs es requerido"})
	}
	body, err := h.uc.ComparePDF(c.UserContext(), slugs)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="comparacion-%s.pdf"`, slugs[0]))
	return c.Send(body)
}

// Facets godoc
// @Summary      Conteos para los filtros
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.FacetsResponse
// @Router       /api/facets [get]
func (h *CatalogHandler) Facets(c *fiber.Ctx) error {
	return c.JSON(h.uc.Facets())
}

// Reload godoc
// @Summary      Recargar el catálogo desde la fuente
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.CatalogStatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /admin/reload [post]
func (h *CatalogHandler) Reload(c *fiber.Ctx) error {
	if err := h.uc.Reload(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.uc.Stats())
}

// Health godoc
// @Summary      Estado del servicio y de la instantánea
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *CatalogHandler) Health(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: service, Catalog: h.uc.Stats()})
	}
}

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidSortKey):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ningún producto encontrado"})
	case errors.Is(err, domain.ErrSourceUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SOURCE_UNAVAILABLE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
