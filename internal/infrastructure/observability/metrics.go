package observability

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

//go:generate mockgen -source=metrics.go -destination=../../mocks/metrics_mocks.go -package=mocks

const namespace = "location_tracker"

// Metrics receives runtime events from the tracking core. Calls happen on the
// event loop so implementations must be cheap.
type Metrics interface {
	SampleRecorded()
	PositionFailed(reason string)
	HistoryLength(n int)
	HistoryReset()
	ProviderStatus(provider, status string)
	Failover(from, to string)
}

type noopMetrics struct{}

func NoopMetrics() Metrics {
	return noopMetrics{}
}

func (noopMetrics) SampleRecorded()               {}
func (noopMetrics) PositionFailed(string)         {}
func (noopMetrics) HistoryLength(int)             {}
func (noopMetrics) HistoryReset()                 {}
func (noopMetrics) ProviderStatus(string, string) {}
func (noopMetrics) Failover(string, string)       {}

var providerStatuses = []string{"checking", "loading", "available", "error"}

type PrometheusMetrics struct {
	samples        prometheus.Counter
	failures       *prometheus.CounterVec
	historyLength  prometheus.Gauge
	historyResets  prometheus.Counter
	providerStatus *prometheus.GaugeVec
	failovers      *prometheus.CounterVec
}

// NewPrometheusMetrics registers the tracker metrics with reg. Registering
// twice against the same registerer reuses the existing collectors.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &PrometheusMetrics{}
	var err error

	if m.samples, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "samples_recorded_total",
		Help:      "Position samples appended to the history.",
	})); err != nil {
		return nil, err
	}
	if m.failures, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "position_failures_total",
		Help:      "Failed position requests by reason.",
	}, []string{"reason"})); err != nil {
		return nil, err
	}
	if m.historyLength, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "history_length",
		Help:      "Samples currently held in the day history.",
	})); err != nil {
		return nil, err
	}
	if m.historyResets, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "history_resets_total",
		Help:      "Day rollovers that cleared the history.",
	})); err != nil {
		return nil, err
	}
	if m.providerStatus, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "map_provider_status",
		Help:      "1 for the current status of each map provider, 0 otherwise.",
	}, []string{"provider", "status"})); err != nil {
		return nil, err
	}
	if m.failovers, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "map_provider_failovers_total",
		Help:      "Automatic map provider switches.",
	}, []string{"from", "to"})); err != nil {
		return nil, err
	}

	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *PrometheusMetrics) SampleRecorded() {
	m.samples.Inc()
}

func (m *PrometheusMetrics) PositionFailed(reason string) {
	m.failures.WithLabelValues(reason).Inc()
}

func (m *PrometheusMetrics) HistoryLength(n int) {
	m.historyLength.Set(float64(n))
}

func (m *PrometheusMetrics) HistoryReset() {
	m.historyResets.Inc()
}

func (m *PrometheusMetrics) ProviderStatus(provider, status string) {
	for _, s := range providerStatuses {
		v := 0.0
		if s == status {
			v = 1
		}
		m.providerStatus.WithLabelValues(provider, s).Set(v)
	}
}

func (m *PrometheusMetrics) Failover(from, to string) {
	m.failovers.WithLabelValues(from, to).Inc()
}
