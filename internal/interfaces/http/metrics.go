package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contadores Prometheus de la API.
type Metrics struct {
	registry     *prometheus.Registry
	HTTPRequests *prometheus.CounterVec
	SalesCreated prometheus.Counter
}

// NewMetrics crea y registra los colectores.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "supermercado_http_requests_total",
			Help: "Total de peticiones HTTP por método, ruta y estado.",
		}, []string{"method", "path", "status"}),
		SalesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "supermercado_sales_created_total",
			Help: "Total de ventas confirmadas.",
		}),
	}
	registry.MustRegister(m.HTTPRequests, m.SalesCreated)
	return m
}

// Handler expone el endpoint /metrics en formato Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
