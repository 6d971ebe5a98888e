package positioning

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"googlemaps.github.io/maps"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/positioning"
	"github.com/marcos-nsantos/location-tracker/internal/domain"
)

// Geolocator is the part of *maps.Client used here.
type Geolocator interface {
	Geolocate(ctx context.Context, r *maps.GeolocationRequest) (*maps.GeolocationResult, error)
}

// GoogleGeolocation locates the host through the Google Geolocation API.
// Fixes younger than MaximumAge are served from the last answer.
type GoogleGeolocation struct {
	client     Geolocator
	considerIP bool
	clock      func() time.Time

	mu   sync.Mutex
	last *positioning.Fix
}

func NewGoogleGeolocation(client Geolocator, considerIP bool, clock func() time.Time) *GoogleGeolocation {
	if clock == nil {
		clock = time.Now
	}
	return &GoogleGeolocation{client: client, considerIP: considerIP, clock: clock}
}

// NewGoogleClient builds a googlemaps client for an API key.
func NewGoogleClient(apiKey string) (*maps.Client, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating google maps client: %w", err)
	}
	return client, nil
}

func (g *GoogleGeolocation) Locate(ctx context.Context, opts positioning.Options) (positioning.Fix, error) {
	now := g.clock()

	g.mu.Lock()
	if g.last != nil && now.Sub(g.last.Timestamp) <= opts.MaximumAge {
		fix := *g.last
		g.mu.Unlock()
		return fix, nil
	}
	g.mu.Unlock()

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	resp, err := g.client.Geolocate(ctx, &maps.GeolocationRequest{ConsiderIP: g.considerIP})
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return positioning.Fix{}, fmt.Errorf("%w: %w", domain.ErrPositionTimeout, err)
		case errors.Is(err, context.Canceled):
			return positioning.Fix{}, err
		default:
			return positioning.Fix{}, fmt.Errorf("%w: google geolocate: %w", domain.ErrPositionUnavailable, err)
		}
	}
	if resp == nil {
		return positioning.Fix{}, fmt.Errorf("google geolocate: empty response: %w", domain.ErrPositionUnavailable)
	}

	fix := positioning.Fix{
		Lat:       resp.Location.Lat,
		Lng:       resp.Location.Lng,
		Accuracy:  resp.Accuracy,
		Timestamp: now,
	}

	g.mu.Lock()
	g.last = &fix
	g.mu.Unlock()

	return fix, nil
}
