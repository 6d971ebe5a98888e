package positioning

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/positioning_mocks.go -package=mocks

type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

// Fix is one position reading. Timestamp is when the device took it, which
// may be older than the request when MaximumAge allows a cached fix.
type Fix struct {
	Lat       float64
	Lng       float64
	Accuracy  float64
	Timestamp time.Time
}

// Source produces a single position fix on demand. Failures are reported as
// domain.ErrPermissionDenied, domain.ErrPositionTimeout or
// domain.ErrPositionUnavailable.
type Source interface {
	Locate(ctx context.Context, opts Options) (Fix, error)
}
