package ports

import (
	"context"

	"github.com/jhoicas/cre-directory/internal/application/dto"
)

// CatalogMetrics define el puerto de salida para observar consultas y recargas.
// El adaptador (Prometheus, no-op en tests) no debe bloquear al llamador.
type CatalogMetrics interface {
	// ObserveQuery registra una consulta resuelta: tipo de vista, criterio de orden y tamaño del resultado.
	ObserveQuery(kind, sort string, results int)
	// ObserveReload registra una carga del catálogo y su resultado ("ok" o "error").
	ObserveReload(outcome string, products int)
}

// ComparisonPDFGenerator genera la hoja comparativa imprimible de varios productos.
type ComparisonPDFGenerator interface {
	GenerateComparisonPDF(ctx context.Context, title string, items []dto.ProductDetailResponse) ([]byte, error)
}
