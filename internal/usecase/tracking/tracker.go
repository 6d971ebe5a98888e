package tracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/positioning"
	"github.com/marcos-nsantos/location-tracker/internal/domain"
	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/observability"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/scheduler"
)

const (
	DefaultInterval   = 30 * time.Second
	DefaultTimeout    = 10 * time.Second
	DefaultMaximumAge = 30 * time.Second
)

const (
	ReasonPermissionDenied = "permission_denied"
	ReasonTimeout          = "timeout"
	ReasonUnavailable      = "position_unavailable"
)

// Recorder receives accepted samples.
type Recorder interface {
	Append(sample entity.LocationSample)
}

type Config struct {
	Interval   time.Duration
	Timeout    time.Duration
	MaximumAge time.Duration
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = DefaultInterval
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaximumAge <= 0 {
		c.MaximumAge = DefaultMaximumAge
	}
	return c
}

// Tracker samples the position source on a fixed cadence while tracking is
// on. All methods must be called on the scheduler.
type Tracker struct {
	sched    scheduler.Scheduler
	source   positioning.Source
	recorder Recorder
	metrics  observability.Metrics
	logger   *zap.Logger
	cfg      Config

	tracking    bool
	sampleCount int
	lastSample  *entity.LocationSample

	// session identifies one tracking run; results carrying an older
	// session are dropped.
	session int
	dispose scheduler.Disposer
	cancel  context.CancelFunc
}

func NewTracker(
	sched scheduler.Scheduler,
	source positioning.Source,
	recorder Recorder,
	metrics observability.Metrics,
	logger *zap.Logger,
	cfg Config,
) *Tracker {
	return &Tracker{
		sched:    sched,
		source:   source,
		recorder: recorder,
		metrics:  metrics,
		logger:   logger.Named("tracker"),
		cfg:      cfg.withDefaults(),
	}
}

// Start turns tracking on and requests a sample immediately. Requests are
// bound to ctx as well as to the tracking run.
func (t *Tracker) Start(ctx context.Context) {
	if t.tracking {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	t.tracking = true
	t.session++
	t.cancel = cancel

	t.logger.Info("tracking started", zap.Duration("interval", t.cfg.Interval))

	t.requestSample(runCtx)
	t.dispose = t.sched.Every(t.cfg.Interval, func() {
		t.requestSample(runCtx)
	})
}

// Stop turns tracking off. In-flight requests are cancelled and their results
// discarded.
func (t *Tracker) Stop() {
	if !t.tracking {
		return
	}

	t.tracking = false
	if t.dispose != nil {
		t.dispose()
		t.dispose = nil
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}

	t.logger.Info("tracking stopped", zap.Int("samples", t.sampleCount))
}

func (t *Tracker) SetTracking(ctx context.Context, on bool) {
	if on {
		t.Start(ctx)
		return
	}
	t.Stop()
}

func (t *Tracker) Tracking() bool {
	return t.tracking
}

func (t *Tracker) SampleCount() int {
	return t.sampleCount
}

func (t *Tracker) LastSample() (entity.LocationSample, bool) {
	if t.lastSample == nil {
		return entity.LocationSample{}, false
	}
	return *t.lastSample, true
}

func (t *Tracker) options() positioning.Options {
	return positioning.Options{
		HighAccuracy: true,
		Timeout:      t.cfg.Timeout,
		MaximumAge:   t.cfg.MaximumAge,
	}
}

func (t *Tracker) requestSample(ctx context.Context) {
	session := t.session
	opts := t.options()

	t.sched.Go(func() func() {
		reqCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
		defer cancel()

		fix, err := t.source.Locate(reqCtx, opts)
		if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", domain.ErrPositionTimeout, err)
		}

		return func() {
			t.handleResult(session, fix, err)
		}
	})
}

func (t *Tracker) handleResult(session int, fix positioning.Fix, err error) {
	if !t.tracking || session != t.session {
		t.logger.Debug("dropping result of cancelled request", zap.Error(err))
		return
	}

	if err != nil {
		reason := FailureReason(err)
		t.metrics.PositionFailed(reason)
		t.logger.Warn("position request failed",
			zap.String("reason", reason),
			zap.Error(err),
		)
		return
	}

	sample := entity.NewLocationSample(fix.Lat, fix.Lng, fix.Accuracy, t.sched.Now())
	if !sample.Coordinate().IsValid() {
		t.metrics.PositionFailed(ReasonUnavailable)
		t.logger.Warn("position source returned invalid coordinate",
			zap.Float64("lat", fix.Lat),
			zap.Float64("lng", fix.Lng),
		)
		return
	}

	t.sampleCount++
	t.lastSample = &sample
	t.recorder.Append(sample)
	t.metrics.SampleRecorded()

	t.logger.Debug("sample recorded",
		zap.Float64("lat", sample.Lat),
		zap.Float64("lng", sample.Lng),
		zap.Float64("accuracy", sample.Accuracy),
		zap.Int("count", t.sampleCount),
	)
}

// FailureReason classifies a positioning error for logs and metrics.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		return ReasonPermissionDenied
	case errors.Is(err, domain.ErrPositionTimeout), errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	default:
		return ReasonUnavailable
	}
}
