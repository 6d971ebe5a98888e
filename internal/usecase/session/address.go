package session

import (
	"context"
	"errors"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/geocoding"
	"github.com/marcos-nsantos/location-tracker/internal/domain"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
)

const (
	AddressNotFound     = "address not found"
	AddressLookupFailed = "address lookup failed"
)

// describe never fails: lookup errors become placeholder text. The error is
// still returned for logging.
func describe(ctx context.Context, g geocoding.ReverseGeocoder, coord valueobject.Coordinate) (string, error) {
	address, err := g.ReverseGeocode(ctx, coord)
	switch {
	case err == nil:
		return address, nil
	case errors.Is(err, domain.ErrGeocodeNotFound):
		return AddressNotFound, nil
	default:
		return AddressLookupFailed, err
	}
}
