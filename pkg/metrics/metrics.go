// Package metrics exposes the Prometheus counters recorded by the services.
// All methods are safe to call on a nil *Metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pocketpilot"

type Metrics struct {
	registry       *prometheus.Registry
	transactions   *prometheus.CounterVec
	duplicates     prometheus.Counter
	clarifications *prometheus.CounterVec
	dialogueTurns  *prometheus.CounterVec
	dailyStatus    *prometheus.CounterVec
}

// New registers the counters on a private registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_recorded_total",
			Help:      "Ledger entries recorded, by type and source.",
		}, []string{"type", "source"}),
		duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sms_duplicates_rejected_total",
			Help:      "SMS transactions rejected as duplicates.",
		}),
		clarifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_clarifications_total",
			Help:      "Free-text inputs that needed clarification, by parser.",
		}, []string{"parser"}),
		dialogueTurns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voice_dialogue_turns_total",
			Help:      "Voice dialogue steps, by resulting stage.",
		}, []string{"stage"}),
		dailyStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "daily_performance_evaluations_total",
			Help:      "Daily performance evaluations, by status.",
		}, []string{"status"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.transactions,
		m.duplicates,
		m.clarifications,
		m.dialogueTurns,
		m.dailyStatus,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) TransactionRecorded(typ, source string) {
	if m == nil {
		return
	}
	m.transactions.WithLabelValues(typ, source).Inc()
}

func (m *Metrics) DuplicateRejected() {
	if m == nil {
		return
	}
	m.duplicates.Inc()
}

func (m *Metrics) ClarificationNeeded(parser string) {
	if m == nil {
		return
	}
	m.clarifications.WithLabelValues(parser).Inc()
}

func (m *Metrics) DialogueTurn(stage string) {
	if m == nil {
		return
	}
	m.dialogueTurns.WithLabelValues(stage).Inc()
}

func (m *Metrics) DailyStatus(status string) {
	if m == nil {
		return
	}
	m.dailyStatus.WithLabelValues(status).Inc()
}
