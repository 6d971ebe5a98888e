package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/geocoding"
	"github.com/marcos-nsantos/location-tracker/internal/adapter/mapprovider"
	"github.com/marcos-nsantos/location-tracker/internal/adapter/publisher"
	"github.com/marcos-nsantos/location-tracker/internal/domain"
	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/mapsdk"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/observability"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/scheduler"
	"github.com/marcos-nsantos/location-tracker/internal/pkg/pagination"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/analytics"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/health"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/history"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/testdata"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/tracking"
)

const (
	DefaultRolloverInterval = time.Minute
	DefaultGeocodeTimeout   = 5 * time.Second
)

// Executor is a scheduler that can also run a callback synchronously on
// behalf of another goroutine.
type Executor interface {
	scheduler.Scheduler
	Do(ctx context.Context, fn func()) error
}

// Snapshotter exposes the drawing state of a provider's map.
type Snapshotter interface {
	Snapshot() mapsdk.Snapshot
}

type MapState string

const (
	MapIdle         MapState = "idle"
	MapInitializing MapState = "initializing"
	MapReady        MapState = "ready"
	MapUnavailable  MapState = "unavailable"
)

type Config struct {
	Location         *time.Location
	RolloverInterval time.Duration
	GeocodeTimeout   time.Duration
}

type Deps struct {
	Executor  Executor
	Store     *history.Store
	Tracker   *tracking.Tracker
	Monitor   *health.Monitor
	Adapters  map[entity.Provider]mapprovider.Adapter
	Scenes    map[entity.Provider]Snapshotter
	Geocoder  geocoding.ReverseGeocoder
	Generator *testdata.Generator
	Publisher publisher.Publisher
	Metrics   observability.Metrics
	Logger    *zap.Logger
}

// Service runs the tracker, history, health monitor and map adapters on
// one event loop and is the entry point for the HTTP handlers.
type Service struct {
	exec      Executor
	store     *history.Store
	tracker   *tracking.Tracker
	monitor   *health.Monitor
	adapters  map[entity.Provider]mapprovider.Adapter
	scenes    map[entity.Provider]Snapshotter
	geocoder  geocoding.ReverseGeocoder
	generator *testdata.Generator
	publisher publisher.Publisher
	metrics   observability.Metrics
	logger    *zap.Logger
	cfg       Config

	ctx       context.Context
	started   bool
	disposers []func()

	provider  entity.Provider
	handle    *mapprovider.Handle
	mapState  MapState
	lastError string
	initGen   int
	showPath  bool
	geocoded  *valueobject.Coordinate
}

func NewService(deps Deps, cfg Config) *Service {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.RolloverInterval <= 0 {
		cfg.RolloverInterval = DefaultRolloverInterval
	}
	if cfg.GeocodeTimeout <= 0 {
		cfg.GeocodeTimeout = DefaultGeocodeTimeout
	}
	if deps.Metrics == nil {
		deps.Metrics = observability.NoopMetrics()
	}

	return &Service{
		exec:      deps.Executor,
		store:     deps.Store,
		tracker:   deps.Tracker,
		monitor:   deps.Monitor,
		adapters:  deps.Adapters,
		scenes:    deps.Scenes,
		geocoder:  deps.Geocoder,
		generator: deps.Generator,
		publisher: deps.Publisher,
		metrics:   deps.Metrics,
		logger:    deps.Logger.Named("session"),
		cfg:       cfg,
		ctx:       context.Background(),
		mapState:  MapIdle,
		showPath:  true,
	}
}

// Start wires change notifications, starts the periodic tasks and begins
// tracking. Work started later is bound to ctx.
func (s *Service) Start(ctx context.Context) error {
	return s.exec.Do(ctx, func() {
		if s.started {
			return
		}
		s.started = true
		s.ctx = ctx

		s.disposers = append(s.disposers,
			s.store.Subscribe(s.onHistoryChange),
			s.monitor.Subscribe(s.onProviderEvent),
		)

		s.rollover()
		dispose := s.exec.Every(s.cfg.RolloverInterval, s.rollover)
		s.disposers = append(s.disposers, dispose)

		s.monitor.Start()
		s.tracker.Start(ctx)
		s.ensureProvider(s.monitor.Selected())

		s.logger.Info("session started",
			zap.String("provider", s.monitor.Selected().String()),
			zap.String("time_zone", s.cfg.Location.String()),
		)
	})
}

// Stop halts every periodic task and tears down the active map.
func (s *Service) Stop(ctx context.Context) error {
	return s.exec.Do(ctx, func() {
		if !s.started {
			return
		}
		s.started = false

		s.tracker.Stop()
		s.monitor.Stop()
		for _, dispose := range s.disposers {
			dispose()
		}
		s.disposers = nil

		s.initGen++
		s.teardown()
		s.mapState = MapIdle
		s.logger.Info("session stopped")
	})
}

func (s *Service) rollover() {
	if s.store.ResetIfNewDay(s.exec.Now()) {
		s.logger.Info("new day, history cleared")
	}
}

func (s *Service) onHistoryChange(c history.Change) {
	s.metrics.HistoryLength(c.Len)
	if c.Kind == history.ChangeReset {
		s.metrics.HistoryReset()
	}

	cur := s.store.Current()
	switch c.Kind {
	case history.ChangeAddress:
		s.publish(publisher.TopicLocation, "address", map[string]any{
			"lat":     cur.Lat,
			"lng":     cur.Lng,
			"address": cur.Address,
		})
		return
	case history.ChangeAppended, history.ChangeReplaced:
		s.publish(publisher.TopicLocation, "moved", map[string]any{
			"lat":       cur.Lat,
			"lng":       cur.Lng,
			"timestamp": cur.Timestamp,
		})
	}
	s.publish(publisher.TopicHistory, string(c.Kind), map[string]any{"len": c.Len})

	s.render()
}

func (s *Service) onProviderEvent(e health.Event) {
	statuses := make(map[string]any, len(e.Statuses))
	for p, st := range e.Statuses {
		statuses[p.String()] = st.String()
	}
	s.publish(publisher.TopicProvider, string(e.Reason), map[string]any{
		"selected": e.Selected.String(),
		"previous": e.Previous.String(),
		"statuses": statuses,
	})

	s.ensureProvider(e.Selected)
}

// ensureProvider makes p the active map, initializing it when nothing is
// live for p yet. A provider that failed is retried once it reports
// available again.
func (s *Service) ensureProvider(p entity.Provider) {
	if !s.started {
		return
	}
	if p == s.provider {
		switch s.mapState {
		case MapReady, MapInitializing:
			return
		case MapUnavailable:
			if s.monitor.Status(p) != entity.StatusAvailable {
				return
			}
		}
	}

	adapter, ok := s.adapters[p]
	if !ok {
		s.logger.Error("no adapter for provider", zap.String("provider", p.String()))
		s.mapState = MapUnavailable
		return
	}

	s.teardown()
	s.provider = p
	s.mapState = MapInitializing
	s.lastError = ""
	s.initGen++
	gen := s.initGen
	center := s.store.Current().Coordinate()
	ctx := s.ctx

	s.logger.Info("initializing map", zap.String("provider", p.String()))

	s.exec.Go(func() func() {
		h, err := adapter.Initialize(ctx, center)
		return func() {
			s.onInitialized(gen, adapter, h, err)
		}
	})
}

func (s *Service) onInitialized(gen int, adapter mapprovider.Adapter, h *mapprovider.Handle, err error) {
	if gen != s.initGen {
		if h != nil {
			adapter.Teardown(h)
		}
		s.logger.Debug("discarding superseded map", zap.String("provider", adapter.Provider().String()))
		return
	}

	if err != nil {
		s.mapState = MapUnavailable
		s.lastError = err.Error()
		if errors.Is(err, context.Canceled) {
			return
		}
		s.monitor.ReportFailure(adapter.Provider(), err)
		return
	}

	s.handle = h
	s.mapState = MapReady
	s.geocoded = nil
	s.render()
}

func (s *Service) teardown() {
	if s.handle == nil {
		return
	}
	s.adapters[s.provider].Teardown(s.handle)
	s.handle = nil
}

func (s *Service) render() {
	if s.handle == nil {
		return
	}
	adapter := s.adapters[s.provider]

	cur := s.store.Current().Coordinate()
	if err := adapter.UpdateCurrentPosition(s.handle, cur); err != nil {
		s.logger.Warn("updating current position", zap.Error(err))
	}
	if err := adapter.RenderPath(s.handle, s.store.History(), s.showPath); err != nil {
		s.lastError = err.Error()
		s.logger.Warn("rendering path", zap.Error(err))
	}

	if s.provider == entity.ProviderKakao {
		s.lookupAddress(cur)
	}
}

func (s *Service) lookupAddress(coord valueobject.Coordinate) {
	if s.geocoder == nil {
		return
	}
	if s.geocoded != nil && s.geocoded.Equal(coord) {
		return
	}
	s.geocoded = &coord

	ctx, geocoder, timeout := s.ctx, s.geocoder, s.cfg.GeocodeTimeout
	s.exec.Go(func() func() {
		lookupCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		address, err := describe(lookupCtx, geocoder, coord)
		return func() {
			if err != nil {
				s.logger.Warn("reverse geocoding failed", zap.String("coord", coord.String()), zap.Error(err))
			}
			s.store.SetAddress(coord, address)
		}
	})
}

func (s *Service) publish(topic publisher.Topic, kind string, payload map[string]any) {
	if s.publisher == nil {
		return
	}
	event := publisher.Event{
		Topic:     topic,
		Kind:      kind,
		Payload:   payload,
		Timestamp: s.exec.Now(),
	}
	ctx, pub := s.ctx, s.publisher

	s.exec.Go(func() func() {
		if err := pub.Publish(ctx, event); err != nil {
			return func() {
				s.logger.Warn("publishing event", zap.String("topic", string(topic)), zap.Error(err))
			}
		}
		return nil
	})
}

func (s *Service) Current(ctx context.Context) (entity.CurrentLocation, error) {
	var cur entity.CurrentLocation
	err := s.exec.Do(ctx, func() {
		cur = s.store.Current()
	})
	return cur, err
}

// History returns one page of the day history, oldest first.
func (s *Service) History(ctx context.Context, page, perPage int) ([]entity.LocationSample, *pagination.Info, error) {
	var samples []entity.LocationSample
	if err := s.exec.Do(ctx, func() {
		samples = s.store.History()
	}); err != nil {
		return nil, nil, fmt.Errorf("reading history: %w", err)
	}

	items, info := pagination.Paginate(samples, pagination.NewParams(page, perPage))
	return items, info, nil
}

func (s *Service) Summary(ctx context.Context) (analytics.Summary, error) {
	var summary analytics.Summary
	err := s.exec.Do(ctx, func() {
		summary = analytics.Summarize(s.store.History(), s.store.Current(), s.cfg.Location)
	})
	return summary, err
}

type TrackingState struct {
	Tracking    bool
	SampleCount int
	LastSample  *entity.LocationSample
}

func (s *Service) trackingState() TrackingState {
	state := TrackingState{
		Tracking:    s.tracker.Tracking(),
		SampleCount: s.tracker.SampleCount(),
	}
	if last, ok := s.tracker.LastSample(); ok {
		state.LastSample = &last
	}
	return state
}

func (s *Service) Tracking(ctx context.Context) (TrackingState, error) {
	var state TrackingState
	err := s.exec.Do(ctx, func() {
		state = s.trackingState()
	})
	return state, err
}

func (s *Service) SetTracking(ctx context.Context, on bool) (TrackingState, error) {
	var state TrackingState
	err := s.exec.Do(ctx, func() {
		s.tracker.SetTracking(s.ctx, on)
		state = s.trackingState()
	})
	return state, err
}

type ProvidersState struct {
	Statuses map[entity.Provider]entity.ProviderStatus
	Selected entity.Provider
	Active   entity.Provider
	MapState MapState
	Healthy  bool
	Error    string
}

func (s *Service) providersState() ProvidersState {
	state := ProvidersState{
		Statuses: s.monitor.Statuses(),
		Selected: s.monitor.Selected(),
		Active:   s.provider,
		MapState: s.mapState,
		Healthy:  s.monitor.Healthy(),
		Error:    s.lastError,
	}
	if !state.Healthy && state.MapState != MapReady {
		state.MapState = MapUnavailable
	}
	return state
}

func (s *Service) Providers(ctx context.Context) (ProvidersState, error) {
	var state ProvidersState
	err := s.exec.Do(ctx, func() {
		state = s.providersState()
	})
	return state, err
}

func (s *Service) SelectProvider(ctx context.Context, p entity.Provider) (ProvidersState, error) {
	var (
		state     ProvidersState
		selectErr error
	)
	if err := s.exec.Do(ctx, func() {
		selectErr = s.monitor.Select(p)
		state = s.providersState()
	}); err != nil {
		return state, err
	}
	return state, selectErr
}

// SetPathVisible shows or hides the history path on the active map.
func (s *Service) SetPathVisible(ctx context.Context, visible bool) error {
	return s.exec.Do(ctx, func() {
		s.showPath = visible
		if s.handle == nil {
			return
		}

		adapter := s.adapters[s.provider]
		if s.handle.PathDrawables() > 0 {
			adapter.SetPathVisibility(s.handle, visible)
			return
		}
		if visible {
			if err := adapter.RenderPath(s.handle, s.store.History(), true); err != nil {
				s.logger.Warn("rendering path", zap.Error(err))
			}
		}
	})
}

type MapView struct {
	Provider entity.Provider
	State    MapState
	ShowPath bool
	Error    string
	Scene    *mapsdk.Snapshot
}

func (s *Service) Map(ctx context.Context) (MapView, error) {
	var view MapView
	err := s.exec.Do(ctx, func() {
		view = MapView{
			Provider: s.provider,
			State:    s.providersState().MapState,
			ShowPath: s.showPath,
			Error:    s.lastError,
		}
		if _, err := s.monitor.ActiveHealthy(); err != nil && view.Error == "" {
			view.Error = err.Error()
		}
		if s.handle == nil {
			return
		}
		if scene, ok := s.scenes[s.provider]; ok {
			snap := scene.Snapshot()
			view.Scene = &snap
		}
	})
	return view, err
}

// GenerateTestData replaces the history with a synthetic day of samples.
func (s *Service) GenerateTestData(ctx context.Context) ([]entity.LocationSample, error) {
	if s.generator == nil {
		return nil, fmt.Errorf("generating test data: %w", domain.ErrInvalidLocation)
	}

	var samples []entity.LocationSample
	err := s.exec.Do(ctx, func() {
		samples = s.generator.Generate(s.exec.Now())
		s.store.ReplaceAll(samples)
		s.logger.Info("test data generated", zap.Int("samples", len(samples)))
	})
	return samples, err
}
