package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/triadic/balance"
	"github.com/katalvlaran/triadic/measure"
	"github.com/katalvlaran/triadic/wedge"
)

// Metrics collects null-model trial metrics and the headline report values
// on a private registry. It satisfies nullmodel.Observer and is safe for
// concurrent use.
type Metrics struct {
	registry *prometheus.Registry

	trials        *prometheus.CounterVec
	trialDuration prometheus.Histogram
	report        *prometheus.GaugeVec
}

// NewMetrics registers the triadic collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		trials: f.NewCounterVec(prometheus.CounterOpts{
			Name: "triadic_nullmodel_trials_total",
			Help: "Null-model trials by outcome (defined, undefined)",
		}, []string{"outcome"}),
		trialDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "triadic_nullmodel_trial_duration_seconds",
			Help:    "Duration of a single shuffle-and-measure trial",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		report: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "triadic_report_value",
			Help: "Headline report measures; absent when undefined",
		}, []string{"measure"}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveTrial records one null-model trial.
func (m *Metrics) ObserveTrial(_ int, res wedge.Result, elapsed time.Duration) {
	outcome := "defined"
	if !res.Rate.Defined() {
		outcome = "undefined"
	}
	m.trials.WithLabelValues(outcome).Inc()
	m.trialDuration.Observe(elapsed.Seconds())
}

// RecordReport sets one gauge per defined headline measure.
func (m *Metrics) RecordReport(r *balance.Report) {
	set := func(name string, v measure.Value) {
		if x, ok := v.Get(); ok {
			m.report.WithLabelValues(name).Set(x)
		}
	}
	set("balance_ratio", r.BalanceRatio)
	set("closure_rate", r.ClosureRate)
	set("baseline_mean", r.BaselineMean)
	set("baseline_std", r.BaselineStd)
	set("lift", r.Lift)
	set("z_score", r.ZScore)
	m.report.WithLabelValues("triangles").Set(float64(r.Triangles))
	m.report.WithLabelValues("wedges").Set(float64(r.Wedges))
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("WriteTextfile: %w", err)
	}
	return nil
}
