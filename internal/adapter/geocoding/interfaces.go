package geocoding

import (
	"context"

	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/geocoding_mocks.go -package=mocks

// ReverseGeocoder resolves a coordinate to a human readable address. It
// returns domain.ErrGeocodeNotFound when the service has no match.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, coord valueobject.Coordinate) (string, error)
}
