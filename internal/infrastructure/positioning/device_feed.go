package positioning

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/positioning"
	"github.com/marcos-nsantos/location-tracker/internal/domain"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
)

// DeviceFeed is a position source fed by the tracked device itself. The
// device pushes fixes and failures; Locate hands out the latest one.
type DeviceFeed struct {
	clock func() time.Time

	mu      sync.Mutex
	latest  *positioning.Fix
	lastErr error
	updated chan struct{}
}

func NewDeviceFeed(clock func() time.Time) *DeviceFeed {
	if clock == nil {
		clock = time.Now
	}
	return &DeviceFeed{
		clock:   clock,
		updated: make(chan struct{}),
	}
}

// Push records a fix reported by the device and wakes pending requests.
func (f *DeviceFeed) Push(fix positioning.Fix) error {
	if !valueobject.NewCoordinate(fix.Lat, fix.Lng).IsValid() {
		return fmt.Errorf("pushing fix: %w", domain.ErrInvalidLocation)
	}
	if fix.Accuracy < 0 {
		return fmt.Errorf("pushing fix: negative accuracy: %w", domain.ErrInvalidLocation)
	}
	if fix.Timestamp.IsZero() {
		fix.Timestamp = f.clock()
	}

	f.mu.Lock()
	f.latest = &fix
	f.lastErr = nil
	f.broadcast()
	f.mu.Unlock()
	return nil
}

// Fail records a failure reported by the device, such as a revoked
// permission, and wakes pending requests with it.
func (f *DeviceFeed) Fail(err error) {
	if err == nil {
		err = domain.ErrPositionUnavailable
	}
	f.mu.Lock()
	f.lastErr = err
	f.broadcast()
	f.mu.Unlock()
}

func (f *DeviceFeed) broadcast() {
	close(f.updated)
	f.updated = make(chan struct{})
}

func (f *DeviceFeed) Latest() (positioning.Fix, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.latest == nil {
		return positioning.Fix{}, false
	}
	return *f.latest, true
}

func (f *DeviceFeed) Locate(ctx context.Context, opts positioning.Options) (positioning.Fix, error) {
	f.mu.Lock()
	if errors.Is(f.lastErr, domain.ErrPermissionDenied) {
		err := f.lastErr
		f.mu.Unlock()
		return positioning.Fix{}, err
	}
	if f.latest != nil && f.clock().Sub(f.latest.Timestamp) <= opts.MaximumAge {
		fix := *f.latest
		f.mu.Unlock()
		return fix, nil
	}
	wait := f.updated
	f.mu.Unlock()

	var timeout <-chan time.Time
	if opts.Timeout > 0 {
		timer := time.NewTimer(opts.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-wait:
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.lastErr != nil {
			return positioning.Fix{}, f.lastErr
		}
		return *f.latest, nil
	case <-timeout:
		return positioning.Fix{}, domain.ErrPositionTimeout
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return positioning.Fix{}, fmt.Errorf("%w: %w", domain.ErrPositionTimeout, ctx.Err())
		}
		return positioning.Fix{}, ctx.Err()
	}
}
