package mapprovider

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/location-tracker/internal/domain"
	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
)

const (
	DefaultReadyPoll    = 100 * time.Millisecond
	DefaultReadyTimeout = 10 * time.Second
)

const (
	PathColor   = "#FF6B6B"
	PathOpacity = 0.8
	PathWeight  = 5
)

// Handle is an initialized map owned by one adapter.
type Handle struct {
	provider entity.Provider
	canvas   Canvas
	current  MarkerOverlay
	position valueobject.Coordinate
	path     []Overlay
	visible  bool
}

func (h *Handle) Provider() entity.Provider {
	return h.provider
}

func (h *Handle) Position() valueobject.Coordinate {
	return h.position
}

// PathDrawables reports how many overlays belong to the rendered path.
func (h *Handle) PathDrawables() int {
	return len(h.path)
}

type Options struct {
	ReadyPoll    time.Duration
	ReadyTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.ReadyPoll <= 0 {
		o.ReadyPoll = DefaultReadyPoll
	}
	if o.ReadyTimeout <= 0 {
		o.ReadyTimeout = DefaultReadyTimeout
	}
	return o
}

// decorate adds provider specific overlays for a validated path.
type decorator func(canvas Canvas, history []entity.LocationSample) ([]Overlay, error)

// base holds the behaviour shared by both providers.
type base struct {
	provider entity.Provider
	sdk      SDK
	zoom     int
	polyline PolylineOptions
	marker   MarkerOptions
	decorate decorator
	opts     Options
	logger   *zap.Logger
}

func (b *base) Provider() entity.Provider {
	return b.provider
}

func (b *base) Initialize(ctx context.Context, center valueobject.Coordinate) (*Handle, error) {
	if err := b.waitReady(ctx); err != nil {
		return nil, err
	}

	canvas, err := b.sdk.CreateMap(center, b.zoom)
	if err != nil {
		return nil, fmt.Errorf("creating %s map: %w: %w", b.provider, domain.ErrProviderUnavailable, err)
	}

	opts := b.marker
	opts.Kind = MarkerCurrent
	opts.Position = center
	marker, err := canvas.AddMarker(opts)
	if err != nil {
		canvas.Destroy()
		return nil, fmt.Errorf("adding %s current marker: %w: %w", b.provider, domain.ErrProviderUnavailable, err)
	}

	b.logger.Info("map initialized",
		zap.String("provider", b.provider.String()),
		zap.Int("zoom", b.zoom),
	)

	return &Handle{
		provider: b.provider,
		canvas:   canvas,
		current:  marker,
		position: center,
		visible:  true,
	}, nil
}

// waitReady polls the presence signal until the SDK is usable, it reports a
// load failure, or the timeout elapses.
func (b *base) waitReady(ctx context.Context) error {
	if b.sdk.Present() {
		return nil
	}

	deadline := time.NewTimer(b.opts.ReadyTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(b.opts.ReadyPoll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %s sdk: %w", b.provider, ctx.Err())
		case <-deadline.C:
			return fmt.Errorf("waiting for %s sdk: %w", b.provider, domain.ErrProviderLoadTimeout)
		case <-ticker.C:
			if b.sdk.Present() {
				return nil
			}
			if b.sdk.Failed() {
				return fmt.Errorf("loading %s sdk: %w", b.provider, domain.ErrProviderUnavailable)
			}
		}
	}
}

func (b *base) UpdateCurrentPosition(h *Handle, pos valueobject.Coordinate) error {
	if h == nil || h.canvas == nil {
		return domain.ErrMapNotInitialized
	}
	if pos.Equal(h.position) {
		return nil
	}
	if !pos.IsValid() {
		return fmt.Errorf("moving marker to %s: %w", pos, domain.ErrInvalidCoordinate)
	}

	h.current.SetPosition(pos)
	h.position = pos
	if err := h.canvas.PanTo(pos); err != nil {
		return fmt.Errorf("panning %s map: %w", b.provider, err)
	}
	return nil
}

func (b *base) RenderPath(h *Handle, history []entity.LocationSample, visible bool) error {
	if h == nil || h.canvas == nil {
		return domain.ErrMapNotInitialized
	}

	clearPath(h)
	h.visible = visible
	if !visible || len(history) < 2 {
		return nil
	}

	coords := make([]valueobject.Coordinate, len(history))
	bounds := valueobject.BoundingBox{}
	for i, s := range history {
		c := s.Coordinate()
		if !c.IsValid() {
			return fmt.Errorf("rendering %s path at sample %d: %w", b.provider, i, domain.ErrInvalidCoordinate)
		}
		coords[i] = c
		bounds.Extend(c)
	}

	opts := b.polyline
	opts.Path = coords
	line, err := h.canvas.AddPolyline(opts)
	if err != nil {
		return b.abort(h, "drawing polyline", err)
	}
	h.path = append(h.path, line)

	if b.decorate != nil {
		extra, err := b.decorate(h.canvas, history)
		h.path = append(h.path, extra...)
		if err != nil {
			return b.abort(h, "decorating path", err)
		}
	}

	if err := h.canvas.FitBounds(bounds); err != nil {
		return b.abort(h, "fitting bounds", err)
	}
	return nil
}

func (b *base) abort(h *Handle, step string, err error) error {
	clearPath(h)
	b.logger.Warn("path render aborted",
		zap.String("provider", b.provider.String()),
		zap.String("step", step),
		zap.Error(err),
	)
	return fmt.Errorf("%s on %s map: %w: %w", step, b.provider, domain.ErrInvalidCoordinate, err)
}

func clearPath(h *Handle) {
	for _, o := range h.path {
		o.Remove()
	}
	h.path = nil
}

func (b *base) SetPathVisibility(h *Handle, visible bool) {
	if h == nil {
		return
	}
	h.visible = visible
	for _, o := range h.path {
		o.SetVisible(visible)
	}
}

func (b *base) Teardown(h *Handle) {
	if h == nil || h.canvas == nil {
		return
	}
	clearPath(h)
	if h.current != nil {
		h.current.Remove()
		h.current = nil
	}
	h.canvas.Destroy()
	h.canvas = nil

	b.logger.Info("map torn down", zap.String("provider", b.provider.String()))
}
