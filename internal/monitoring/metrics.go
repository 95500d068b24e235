package monitoring

import (
	"time"

	"github.com/GriffinCanCode/sceneryloader/internal/shared/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Toggle metrics
	Toggles *prometheus.CounterVec

	// Activation metrics
	Activations   *prometheus.CounterVec
	Deactivations *prometheus.CounterVec
	Refusals      *prometheus.CounterVec
	ActiveEntries *prometheus.GaugeVec

	// Catalog metrics
	CatalogGroups prometheus.Gauge

	// Surface metrics
	ScanDuration prometheus.Histogram
	ScanCells    prometheus.Counter
}

// NewMetrics creates a metrics collector registered on reg
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Toggles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "toggles_total",
				Help:      "Total number of group toggles by resulting action",
			},
			[]string{"action"},
		),

		Activations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "activations_total",
				Help:      "Total number of entries activated",
			},
			[]string{"kind"},
		),
		Deactivations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deactivations_total",
				Help:      "Total number of entries deactivated",
			},
			[]string{"kind"},
		),
		Refusals: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "activation_refusals_total",
				Help:      "Total number of activations refused by the host",
			},
			[]string{"kind"},
		),
		ActiveEntries: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "active_entries",
				Help:      "Number of currently active entries",
			},
			[]string{"kind"},
		),

		CatalogGroups: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "catalog_groups",
				Help:      "Number of indexed scenery groups",
			},
		),

		ScanDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "surface_scan_duration_seconds",
				Help:      "Usage surface scan duration in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
		),
		ScanCells: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "surface_cells_scanned_total",
				Help:      "Total number of surface cells visited",
			},
		),
	}
}

// RecordToggle records a toggle outcome
func (m *Metrics) RecordToggle(action string) {
	if m == nil {
		return
	}
	m.Toggles.WithLabelValues(action).Inc()
}

// RecordActivation records one activated entry
func (m *Metrics) RecordActivation(kind types.Kind) {
	if m == nil {
		return
	}
	m.Activations.WithLabelValues(kind.String()).Inc()
}

// RecordDeactivation records one deactivated entry
func (m *Metrics) RecordDeactivation(kind types.Kind) {
	if m == nil {
		return
	}
	m.Deactivations.WithLabelValues(kind.String()).Inc()
}

// RecordRefusal records a refused activation
func (m *Metrics) RecordRefusal(kind types.Kind) {
	if m == nil {
		return
	}
	m.Refusals.WithLabelValues(kind.String()).Inc()
}

// SetActive sets the active entry count of one kind
func (m *Metrics) SetActive(kind types.Kind, count int) {
	if m == nil {
		return
	}
	m.ActiveEntries.WithLabelValues(kind.String()).Set(float64(count))
}

// SetCatalogGroups sets the number of indexed groups
func (m *Metrics) SetCatalogGroups(count int) {
	if m == nil {
		return
	}
	m.CatalogGroups.Set(float64(count))
}

// RecordScan records one full surface scan
func (m *Metrics) RecordScan(cells int, duration time.Duration) {
	if m == nil {
		return
	}
	m.ScanCells.Add(float64(cells))
	m.ScanDuration.Observe(duration.Seconds())
}
