// Package pdf genera la hoja comparativa imprimible del directorio.
//
// Layout de la página A4 apaisada (una columna por producto):
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  TÍTULO: A vs B vs C                          Fecha          │
//	│  ──────────────────────────────────────────────────────────  │
//	│            │ Producto A     │ Producto B     │ Producto C    │
//	│  Rating    │ 4.5 (120)      │ -              │ 3.9 (14)      │
//	│  Precio    │ ...            │ ...            │ ...           │
//	│  ...                                                         │
//	│  ──────────────────────────────────────────────────────────  │
//	│  QR al sitio de cada producto                                │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/cre-directory/internal/application/dto"
	"github.com/jhoicas/cre-directory/internal/application/ports"
)

var _ ports.ComparisonPDFGenerator = (*MarotoComparisonGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const (
	labelCols   = 2
	productCols = 3
	listLimit   = 3
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoComparisonGenerator implementa ports.ComparisonPDFGenerator usando Maroto v2.
type MarotoComparisonGenerator struct {
	siteTitle string
	now       func() time.Time
}

// NewMarotoComparisonGenerator construye el generador; siteTitle aparece como autor del documento.
func NewMarotoComparisonGenerator(siteTitle string) *MarotoComparisonGenerator {
	return &MarotoComparisonGenerator{siteTitle: siteTitle, now: time.Now}
}

// GenerateComparisonPDF genera el PDF y devuelve sus bytes.
func (g *MarotoComparisonGenerator) GenerateComparisonPDF(ctx context.Context, title string, items []dto.ProductDetailResponse) ([]byte, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("pdf: comparación sin productos")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(labelCols + productCols*len(items)).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.siteTitle, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(title, g.now(), len(items)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(namesRow(items))
	for _, attr := range attributes {
		m.AddRows(attributeRow(attr, items))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	if qr := qrRow(items); qr != nil {
		m.AddRows(qr)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time, n int) core.Row {
	total := labelCols + productCols*n
	left := total - productCols
	return row.New(14).Add(
		col.New(left).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2}),
		),
		col.New(productCols).Add(
			text.New("Fecha: "+at.Format("2006-01-02"), props.Text{Size: 8, Align: align.Right, Top: 4, Color: colorGray}),
		),
	)
}

func namesRow(items []dto.ProductDetailResponse) core.Row {
	r := row.New(10).Add(col.New(labelCols))
	for _, it := range items {
		r.Add(col.New(productCols).Add(text.New(it.Title, props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 2, Left: 1, Color: colorPrimary,
		})))
	}
	return r
}

type attribute struct {
	label string
	value func(dto.ProductDetailResponse) string
}

var attributes = []attribute{
	{"Rating", ratingText},
	{"Modelo", func(p dto.ProductDetailResponse) string { return p.PricingModel }},
	{"Desde", func(p dto.ProductDetailResponse) string { return p.StartingPrice }},
	{"Prueba gratis", func(p dto.ProductDetailResponse) string { return yesNo(p.FreeTrial) }},
	{"Plan gratuito", func(p dto.ProductDetailResponse) string { return yesNo(p.FreeTier) }},
	{"Categorías", func(p dto.ProductDetailResponse) string { return strings.Join(p.Categories, ", ") }},
	{"Tipos de inmueble", func(p dto.ProductDetailResponse) string { return strings.Join(p.Audience.PropertyTypes, ", ") }},
	{"Tamaño de empresa", func(p dto.ProductDetailResponse) string { return strings.Join(p.Audience.CompanySizes, ", ") }},
	{"Despliegue", func(p dto.ProductDetailResponse) string { return strings.Join(p.Deployment, ", ") }},
	{"Insignias", func(p dto.ProductDetailResponse) string { return strings.Join(p.Badges, ", ") }},
	{"Fabricante", companyText},
	{"A favor", func(p dto.ProductDetailResponse) string { return bullets(p.Pros) }},
	{"En contra", func(p dto.ProductDetailResponse) string { return bullets(p.Cons) }},
}

func attributeRow(attr attribute, items []dto.ProductDetailResponse) core.Row {
	height := 7.0
	for _, it := range items {
		if lines := strings.Count(attr.value(it), "\n") + 1; float64(lines)*4+3 > height {
			height = float64(lines)*4 + 3
		}
	}
	r := row.New(height).Add(col.New(labelCols).Add(
		text.New(attr.label, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1.5, Color: colorGray}),
	))
	for _, it := range items {
		r.Add(col.New(productCols).Add(text.New(nonEmpty(attr.value(it), "-"), props.Text{
			Size: 8, Top: 1.5, Left: 1, Right: 2,
		})))
	}
	return r
}

// qrRow enlace al sitio de cada producto; nil si ninguno tiene URL.
func qrRow(items []dto.ProductDetailResponse) core.Row {
	hasURL := false
	r := row.New(30).Add(col.New(labelCols).Add(
		text.New("Sitio web", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1.5, Color: colorGray}),
	))
	for _, it := range items {
		c := col.New(productCols)
		if it.URL != "" {
			hasURL = true
			c.Add(code.NewQr(it.URL, props.Rect{Percent: 90, Center: true}))
		}
		r.Add(c)
	}
	if !hasURL {
		return nil
	}
	return r
}

// ── helpers ───────────────────────────────────────────────────────────────────

func ratingText(p dto.ProductDetailResponse) string {
	if p.Rating == nil {
		return ""
	}
	s := strconv.FormatFloat(*p.Rating, 'f', 1, 64)
	if p.ReviewCount > 0 {
		s += fmt.Sprintf(" (%d reseñas)", p.ReviewCount)
	}
	return s
}

func companyText(p dto.ProductDetailResponse) string {
	if p.Company == nil {
		return ""
	}
	parts := []string{p.Company.Name}
	if p.Company.Founded > 0 {
		parts = append(parts, strconv.Itoa(p.Company.Founded))
	}
	if p.Company.Headquarters != "" {
		parts = append(parts, p.Company.Headquarters)
	}
	return strings.Join(parts, ", ")
}

func bullets(list []string) string {
	if len(list) > listLimit {
		list = list[:listLimit]
	}
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, "- "+s)
	}
	return strings.Join(out, "\n")
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
