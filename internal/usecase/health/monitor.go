package health

import (
	"fmt"
	"maps"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/location-tracker/internal/domain"
	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/observability"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/scheduler"
)

const DefaultPollInterval = time.Second

// Signal exposes the availability of one provider SDK.
type Signal interface {
	// Present reports that the SDK is loaded and usable.
	Present() bool
	// Failed reports that loading the SDK failed.
	Failed() bool
}

type Reason string

const (
	ReasonPoll     Reason = "poll"
	ReasonManual   Reason = "manual"
	ReasonFailover Reason = "failover"
)

type Event struct {
	Statuses map[entity.Provider]entity.ProviderStatus
	Selected entity.Provider
	Previous entity.Provider
	Reason   Reason
}

// Monitor polls provider availability and derives which provider should be
// active. All methods must be called on the scheduler.
type Monitor struct {
	sched    scheduler.Scheduler
	signals  map[entity.Provider]Signal
	metrics  observability.Metrics
	logger   *zap.Logger
	interval time.Duration

	statuses    map[entity.Provider]entity.ProviderStatus
	selected    entity.Provider
	failed      map[entity.Provider]bool
	lastPresent map[entity.Provider]bool

	listeners map[int]func(Event)
	nextID    int
	dispose   scheduler.Disposer
}

func NewMonitor(
	sched scheduler.Scheduler,
	signals map[entity.Provider]Signal,
	initial entity.Provider,
	metrics observability.Metrics,
	logger *zap.Logger,
	interval time.Duration,
) *Monitor {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	statuses := make(map[entity.Provider]entity.ProviderStatus, len(entity.Providers))
	for _, p := range entity.Providers {
		statuses[p] = entity.StatusChecking
	}

	return &Monitor{
		sched:       sched,
		signals:     signals,
		metrics:     metrics,
		logger:      logger.Named("health"),
		interval:    interval,
		statuses:    statuses,
		selected:    initial,
		failed:      make(map[entity.Provider]bool),
		lastPresent: make(map[entity.Provider]bool),
		listeners:   make(map[int]func(Event)),
	}
}

// Start polls once immediately and then every interval.
func (m *Monitor) Start() {
	if m.dispose != nil {
		return
	}
	m.poll()
	m.dispose = m.sched.Every(m.interval, m.poll)
}

func (m *Monitor) Stop() {
	if m.dispose != nil {
		m.dispose()
		m.dispose = nil
	}
}

func (m *Monitor) poll() {
	changed := false
	for _, p := range entity.Providers {
		if m.refresh(p) {
			changed = true
		}
	}
	if changed {
		m.evaluate(ReasonPoll)
	}
}

// refresh re-derives the status of p and reports whether it changed.
func (m *Monitor) refresh(p entity.Provider) bool {
	sig, ok := m.signals[p]

	present := ok && sig.Present()
	if present && !m.lastPresent[p] && m.failed[p] {
		m.logger.Info("provider reloaded, clearing failure", zap.String("provider", p.String()))
		m.failed[p] = false
	}
	m.lastPresent[p] = present

	var status entity.ProviderStatus
	switch {
	case m.failed[p]:
		status = entity.StatusError
	case present:
		status = entity.StatusAvailable
	case !ok || sig.Failed():
		status = entity.StatusError
	default:
		status = entity.StatusLoading
	}

	if m.statuses[p] == status {
		return false
	}

	m.logger.Debug("provider status changed",
		zap.String("provider", p.String()),
		zap.String("from", m.statuses[p].String()),
		zap.String("to", status.String()),
	)
	m.statuses[p] = status
	m.metrics.ProviderStatus(p.String(), status.String())
	return true
}

func (m *Monitor) evaluate(reason Reason) {
	previous := m.selected
	next := Decide(m.statuses, m.selected)

	if next != previous {
		m.selected = next
		if reason != ReasonManual {
			reason = ReasonFailover
		}
		m.metrics.Failover(previous.String(), next.String())
		m.logger.Info("switching map provider",
			zap.String("from", previous.String()),
			zap.String("to", next.String()),
			zap.String("reason", string(reason)),
		)
	}

	m.emit(Event{
		Statuses: m.Statuses(),
		Selected: m.selected,
		Previous: previous,
		Reason:   reason,
	})
}

// Decide applies the failover rules to a status snapshot. The preferred
// provider wins whenever it is available; otherwise the selection only moves
// away from a provider in error towards one that is available.
func Decide(statuses map[entity.Provider]entity.ProviderStatus, selected entity.Provider) entity.Provider {
	a, b := entity.ProviderKakao, entity.ProviderGoogle

	switch {
	case statuses[b] == entity.StatusAvailable && selected == a:
		return b
	case selected == a && statuses[a] == entity.StatusError && statuses[b] == entity.StatusAvailable:
		return b
	case selected == b && statuses[b] == entity.StatusError && statuses[a] == entity.StatusAvailable:
		return a
	default:
		return selected
	}
}

// Select makes p the baseline selection. The failover rules are applied
// right away, so picking kakao while google is available snaps back.
func (m *Monitor) Select(p entity.Provider) error {
	if _, err := entity.ParseProvider(string(p)); err != nil {
		return fmt.Errorf("selecting provider: %w", err)
	}

	previous := m.selected
	m.selected = p
	m.logger.Info("provider selected manually", zap.String("provider", p.String()))

	next := Decide(m.statuses, m.selected)
	if next != p {
		m.selected = next
		m.metrics.Failover(p.String(), next.String())
		m.logger.Info("manual selection overridden",
			zap.String("requested", p.String()),
			zap.String("selected", next.String()),
		)
	}

	m.emit(Event{
		Statuses: m.Statuses(),
		Selected: m.selected,
		Previous: previous,
		Reason:   ReasonManual,
	})
	return nil
}

// ReportFailure marks p as failed after an initialization error. The mark
// holds until the provider's SDK is observed loading again.
func (m *Monitor) ReportFailure(p entity.Provider, err error) {
	m.logger.Warn("map provider failed", zap.String("provider", p.String()), zap.Error(err))

	m.failed[p] = true
	if m.refresh(p) {
		m.evaluate(ReasonPoll)
	}
}

func (m *Monitor) Statuses() map[entity.Provider]entity.ProviderStatus {
	return maps.Clone(m.statuses)
}

func (m *Monitor) Status(p entity.Provider) entity.ProviderStatus {
	return m.statuses[p]
}

func (m *Monitor) Selected() entity.Provider {
	return m.selected
}

// Healthy reports whether any provider is available.
func (m *Monitor) Healthy() bool {
	for _, s := range m.statuses {
		if s == entity.StatusAvailable {
			return true
		}
	}
	return false
}

// ActiveHealthy returns the selected provider if it is available.
func (m *Monitor) ActiveHealthy() (entity.Provider, error) {
	if m.statuses[m.selected] != entity.StatusAvailable {
		return m.selected, domain.ErrNoHealthyProvider
	}
	return m.selected, nil
}

func (m *Monitor) Subscribe(fn func(Event)) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() {
		delete(m.listeners, id)
	}
}

func (m *Monitor) emit(e Event) {
	for _, fn := range m.listeners {
		fn(e)
	}
}
