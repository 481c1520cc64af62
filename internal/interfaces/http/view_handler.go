package http

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cre-directory/internal/application/dto"
	"github.com/jhoicas/cre-directory/internal/application/usecase"
	"github.com/jhoicas/cre-directory/pkg/config"
)

const layout = "layouts/main"

// ViewHandler páginas HTML del directorio. Las plantillas solo presentan DTOs.
type ViewHandler struct {
	uc   *usecase.CatalogUseCase
	site *config.SiteConfig
}

// NewViewHandler construye el handler.
func NewViewHandler(uc *usecase.CatalogUseCase, site *config.SiteConfig) *ViewHandler {
	if site == nil {
		site = config.DefaultSite()
	}
	return &ViewHandler{uc: uc, site: site}
}

// Home portada: categorías, destacados, insignias y listado filtrable.
func (h *ViewHandler) Home(c *fiber.Ctx) error {
	var in dto.ProductQueryRequest
	if verr := parseProductQuery(c, &in); verr != nil {
		return h.notFound(c, fiber.StatusBadRequest, "Invalid search", verr.Message)
	}
	results, err := h.uc.Search(in)
	if err != nil {
		return h.notFound(c, fiber.StatusBadRequest, "Invalid search", err.Error())
	}
	data := h.base("")
	data["Home"] = h.uc.Home(h.site.FeaturedCount)
	data["Results"] = results
	data["Searching"] = isFiltered(in)
	h.withFilters(c, data, "/", in, results.Page)
	return c.Render("index", data, layout)
}

// Product ficha de producto.
func (h *ViewHandler) Product(c *fiber.Ctx) error {
	out, err := h.uc.GetProduct(c.Params("slug"))
	if err != nil {
		return err
	}
	if out == nil {
		return h.notFound(c, fiber.StatusNotFound, "Product not found", "We could not find that tool.")
	}
	data := h.base(out.Title)
	data["MetaDescription"] = out.Title + ": " + out.Summary
	data["Product"] = out
	return c.Render("product", data, layout)
}

// Category productos de una categoría con búsqueda y filtros.
func (h *ViewHandler) Category(c *fiber.Ctx) error {
	var in dto.ProductQueryRequest
	if verr := parseProductQuery(c, &in); verr != nil {
		return h.notFound(c, fiber.StatusBadRequest, "Invalid search", verr.Message)
	}
	out, err := h.uc.GetCategory(c.Params("slug"), in)
	if err != nil {
		return h.notFound(c, fiber.StatusBadRequest, "Invalid search", err.Error())
	}
	if out == nil {
		return h.notFound(c, fiber.StatusNotFound, "Category not found", "We could not find that category.")
	}
	data := h.base(out.Category.Name + " Software")
	data["MetaDescription"] = out.Category.Description
	data["Category"] = out
	h.withFilters(c, data, "/categories/"+out.Category.Slug, in, out.Page)
	return c.Render("category", data, layout)
}

// Compare comparación lado a lado; acepta ?slug=a&slug=b o ?slugs=a,b.
func (h *ViewHandler) Compare(c *fiber.Ctx) error {
	var slugs []string
	for _, v := range c.Context().QueryArgs().PeekMulti("slug") {
		if s := strings.TrimSpace(string(v)); s != "" {
			slugs = append(slugs, s)
		}
	}
	slugs = append(slugs, splitSlugs(c.Query("slugs"))...)

	slots := h.site.CompareSlots
	if limit := h.uc.MaxCompare(); slots > limit {
		slots = limit
	}
	cmp := h.uc.Compare(slugs)
	selected := make([]string, slots)
	list := make([]string, 0, len(cmp.Items))
	for i, it := range cmp.Items {
		if i < slots {
			selected[i] = it.Slug
		}
		list = append(list, it.Slug)
	}

	data := h.base("Compare")
	data["Compare"] = cmp
	data["Options"] = h.uc.ProductOptions()
	data["Slots"] = make([]struct{}, slots)
	data["Selected"] = selected
	data["SlugList"] = strings.Join(list, ",")
	return c.Render("compare", data, layout)
}

// NotFound página 404 para rutas desconocidas.
func (h *ViewHandler) NotFound(c *fiber.Ctx) error {
	return h.notFound(c, fiber.StatusNotFound, "Page not found", "That page does not exist.")
}

func (h *ViewHandler) notFound(c *fiber.Ctx, status int, title, msg string) error {
	data := h.base(title)
	data["Message"] = msg
	return c.Status(status).Render("not_found", data, layout)
}

func (h *ViewHandler) base(title string) fiber.Map {
	return fiber.Map{
		"Site":            h.site,
		"PageTitle":       title,
		"MetaDescription": "",
	}
}

// withFilters agrega los datos del formulario de filtros y la paginación.
func (h *ViewHandler) withFilters(c *fiber.Ctx, data fiber.Map, action string, in dto.ProductQueryRequest, page dto.PageResponse) {
	data["Action"] = action
	data["Query"] = in
	data["Facets"] = h.uc.Facets()
	data["Page"] = page

	values, _ := url.ParseQuery(string(c.Request().URI().QueryString()))
	link := func(offset int) string {
		values.Set("offset", strconv.Itoa(offset))
		return action + "?" + values.Encode()
	}
	data["PrevURL"], data["NextURL"] = "", ""
	if page.Offset > 0 {
		prev := page.Offset - page.Limit
		if prev < 0 {
			prev = 0
		}
		data["PrevURL"] = link(prev)
	}
	if page.Offset+page.Limit < page.Total {
		data["NextURL"] = link(page.Offset + page.Limit)
	}
}

func isFiltered(in dto.ProductQueryRequest) bool {
	return in.Q != "" || in.FreeTrial || in.FreeTier || in.HasPricing || in.PropertyType != "" || in.Offset > 0
}
