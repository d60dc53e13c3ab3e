package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
)

func TestMetrics_BusinessCounters(t *testing.T) {
	m := New()

	m.TicketCreated(vo.KindMaintenance)
	m.TicketCreated(vo.KindMaintenance)
	m.TicketCreated(vo.KindIncident)
	m.TimelineEventAppended(vo.KindMaintenance, vo.EventStatusChanged)
	m.ShareLinkResolved("hit")
	m.ShareLinkResolved("hit")
	m.ShareLinkResolved("expired")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ticketsCreated.WithLabelValues("maintenance")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ticketsCreated.WithLabelValues("incident")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ticketEvents.WithLabelValues("maintenance", "status_changed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.shareResolutions.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.shareResolutions.WithLabelValues("expired")))
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := New()

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/tickets/:id", 200, 15*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/tickets/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.httpDuration))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.TicketCreated(vo.KindIncident)
		m.TimelineEventAppended(vo.KindIncident, vo.EventOpening)
		m.ShareLinkResolved("miss")
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ShareLinkResolved("gone")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `appsindico_share_link_resolutions_total{result="gone"} 1`))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
