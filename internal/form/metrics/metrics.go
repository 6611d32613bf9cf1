// ============================================================================
// sellerdesk - Department and seller records
// ============================================================================
//
// Package:     metrics
// Description: Prometheus metrics for form submits and loads
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submit outcome label values
const (
	OutcomeSaved   = "saved"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// Metrics provides observability for form sessions.
// Tracks submit outcomes and the duration of save and reference data loads.
type Metrics struct {
	SubmitOutcomes        *prometheus.CounterVec
	SaveDuration          *prometheus.HistogramVec
	ReferenceLoadDuration prometheus.Histogram
}

// New creates a Metrics instance registered with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates a Metrics instance registered with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SubmitOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sellerdesk_form_submits_total",
			Help: "Total number of form submits by form and outcome",
		}, []string{"form", "outcome"}),
		SaveDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sellerdesk_save_duration_seconds",
			Help:    "Duration of SaveOrUpdate calls",
			Buckets: durationBuckets,
		}, []string{"form"}),
		ReferenceLoadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sellerdesk_reference_load_duration_seconds",
			Help:    "Duration of department reference data loads",
			Buckets: durationBuckets,
		}),
	}
}

// IncrementSubmit records one submit outcome for form.
func (m *Metrics) IncrementSubmit(form, outcome string) {
	if m == nil {
		return
	}
	m.SubmitOutcomes.WithLabelValues(form, outcome).Inc()
}

// ObserveSave records the duration of a save.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSave(form string, start time.Time) {
	if m == nil {
		return
	}
	m.SaveDuration.WithLabelValues(form).Observe(time.Since(start).Seconds())
}

// ObserveReferenceLoad records the duration of a reference data load.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveReferenceLoad(start time.Time) {
	if m == nil {
		return
	}
	m.ReferenceLoadDuration.Observe(time.Since(start).Seconds())
}
