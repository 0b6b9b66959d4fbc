// Package metrics expone contadores Prometheus del servicio.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	appinventory "github.com/jhoicas/terrafoods-ems/internal/application/inventory"
	"github.com/jhoicas/terrafoods-ems/internal/domain/entity"
)

var _ appinventory.Metrics = (*Metrics)(nil)

const namespace = "terrafoods"

// Metrics agrupa los colectores; se registran en el Registry recibido, no en el global.
type Metrics struct {
	registry *prometheus.Registry

	movementsRecorded *prometheus.CounterVec
	movementsDeleted  *prometheus.CounterVec
	stockQueries      *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// New crea y registra los colectores, más los de proceso y runtime de Go.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		movementsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "movements_recorded_total",
			Help:      "Movimientos registrados en el libro por tipo.",
		}, []string{"type"}),
		movementsDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "movements_deleted_total",
			Help:      "Movimientos eliminados del libro por tipo.",
		}, []string{"type"}),
		stockQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "stock_queries_total",
			Help:      "Cálculos de stock por alcance (product, summary, export, card).",
		}, []string{"scope"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones HTTP por método, ruta y código.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latencia de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.movementsRecorded,
		m.movementsDeleted,
		m.stockQueries,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Registry devuelve el registro para montar /metrics.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) MovementRecorded(t entity.MovementType) {
	m.movementsRecorded.WithLabelValues(string(t)).Inc()
}

func (m *Metrics) MovementDeleted(t entity.MovementType) {
	m.movementsDeleted.WithLabelValues(string(t)).Inc()
}

func (m *Metrics) StockQueried(scope string) {
	m.stockQueries.WithLabelValues(scope).Inc()
}

// ObserveHTTP registra una petición terminada. route es el patrón de Fiber (/products/:id),
// no la URL, para no disparar la cardinalidad.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, statusClass(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	}
	return "2xx"
}
