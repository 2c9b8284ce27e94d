// Package metrics owns the Prometheus registry served on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Token refresh outcomes.
const (
	RefreshFresh     = "fresh"     // stored token was still valid
	RefreshRefreshed = "refreshed" // exchange succeeded and was stored
	RefreshConflict  = "conflict"  // another refresh stored first
	RefreshFailed    = "failed"
)

// Metrics is safe to use as a nil pointer; every recorder is then a no-op.
type Metrics struct {
	Registry *prometheus.Registry

	tokenRefreshes *prometheus.CounterVec
	emailsSent     *prometheus.CounterVec
	calendarReads  *prometheus.CounterVec
}

// New builds a private registry with process and Go runtime collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		Registry: reg,
		tokenRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "liaison",
			Name:      "token_checks_total",
			Help:      "Access token freshness checks by outcome.",
		}, []string{"result"}),
		emailsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "liaison",
			Name:      "emails_sent_total",
			Help:      "Per-recipient email send outcomes.",
		}, []string{"status"}),
		calendarReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "liaison",
			Name:      "calendar_reads_total",
			Help:      "Calendar event list calls by outcome.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.tokenRefreshes, m.emailsSent, m.calendarReads)
	return m
}

func (m *Metrics) TokenCheck(result string) {
	if m == nil {
		return
	}
	m.tokenRefreshes.WithLabelValues(result).Inc()
}

func (m *Metrics) EmailSent(status string) {
	if m == nil {
		return
	}
	m.emailsSent.WithLabelValues(status).Inc()
}

func (m *Metrics) CalendarRead(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.calendarReads.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
