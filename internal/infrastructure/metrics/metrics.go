// Package metrics exposes Prometheus collectors for the HTTP layer and
// the ticket lifecycle.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
)

const namespace = "appsindico"

type Metrics struct {
	registry         *prometheus.Registry
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	ticketsCreated   *prometheus.CounterVec
	ticketEvents     *prometheus.CounterVec
	shareResolutions *prometheus.CounterVec
}

// New registers every collector on a private registry, plus the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests labeled by method, route and status code",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency labeled by method and route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		ticketsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tickets_created_total",
			Help:      "Tickets created, labeled by kind",
		}, []string{"kind"}),
		ticketEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticket_events_total",
			Help:      "Timeline events appended, labeled by ticket kind and event kind",
		}, []string{"kind", "event"}),
		shareResolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "share_link_resolutions_total",
			Help:      "Public share link resolutions labeled by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest records one request. path must be the route
// template, never the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if path == "" {
		path = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (m *Metrics) TicketCreated(kind vo.Kind) {
	if m == nil {
		return
	}
	m.ticketsCreated.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) TimelineEventAppended(kind vo.Kind, event vo.EventKind) {
	if m == nil {
		return
	}
	m.ticketEvents.WithLabelValues(kind.String(), event.String()).Inc()
}

func (m *Metrics) ShareLinkResolved(result string) {
	if m == nil {
		return
	}
	m.shareResolutions.WithLabelValues(result).Inc()
}
