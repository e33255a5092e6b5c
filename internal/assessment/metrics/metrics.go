package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the assessment domain.
type Metrics struct {
	Assessments        prometheus.Counter
	ValidationFailures prometheus.Counter
	AIReports          prometheus.Counter
	FallbackReports    *prometheus.CounterVec
	RulesMatched       prometheus.Histogram
	CorpusRules        prometheus.Gauge
	Reloads            *prometheus.CounterVec
	AssessLatency      prometheus.Histogram
}

// New creates and registers all assessment metrics.
func New() *Metrics {
	return &Metrics{
		Assessments: promauto.NewCounter(prometheus.CounterOpts{
			Name: "permitly_assessments_total",
			Help: "Total number of completed assessments",
		}),
		ValidationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "permitly_validation_failures_total",
			Help: "Total number of rejected assessment requests",
		}),
		AIReports: promauto.NewCounter(prometheus.CounterOpts{
			Name: "permitly_ai_reports_total",
			Help: "Total number of reports produced by the AI path",
		}),
		FallbackReports: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "permitly_fallback_reports_total",
			Help: "Total number of deterministic fallback reports by reason",
		}, []string{"reason"}),
		RulesMatched: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "permitly_rules_matched",
			Help:    "Number of rules matched per assessment",
			Buckets: []float64{0, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		CorpusRules: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "permitly_corpus_rules",
			Help: "Number of rules in the current corpus snapshot",
		}),
		Reloads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "permitly_rule_reloads_total",
			Help: "Total number of corpus reloads by result",
		}, []string{"result"}),
		AssessLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "permitly_assess_latency_seconds",
			Help:    "End-to-end assessment latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
