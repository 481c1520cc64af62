package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/cre-directory/internal/application/ports"
)

var _ ports.CatalogMetrics = (*Recorder)(nil)

// Recorder métricas Prometheus del directorio sobre un registro propio.
type Recorder struct {
	registry *prometheus.Registry
	queries  *prometheus.CounterVec
	results  *prometheus.HistogramVec
	reloads  *prometheus.CounterVec
	products prometheus.Gauge
}

// NewRecorder crea el recorder y registra sus colectores (más los de proceso y runtime).
func NewRecorder(namespace string) *Recorder {
	namespace = strings.ReplaceAll(namespace, "-", "_")
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_queries_total",
			Help:      "Consultas resueltas por tipo de vista y criterio de orden",
		}, []string{"kind", "sort"}),
		results: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_query_results",
			Help:      "Cantidad de productos que coinciden por consulta",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}, []string{"kind"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_reloads_total",
			Help:      "Cargas del catálogo por resultado",
		}, []string{"outcome"}),
		products: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_products",
			Help:      "Productos en la instantánea vigente",
		}),
	}
	r.registry.MustRegister(
		r.queries, r.results, r.reloads, r.products,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveQuery implementa ports.CatalogMetrics.
func (r *Recorder) ObserveQuery(kind, sort string, results int) {
	if sort == "" {
		sort = "default"
	}
	r.queries.WithLabelValues(kind, sort).Inc()
	r.results.WithLabelValues(kind).Observe(float64(results))
}

// ObserveReload implementa ports.CatalogMetrics. products es el tamaño de la instantánea vigente tras la carga.
func (r *Recorder) ObserveReload(outcome string, products int) {
	r.reloads.WithLabelValues(outcome).Inc()
	r.products.Set(float64(products))
}

// Registry registro subyacente (tests).
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler expone el registro en formato de texto Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
