package geocoding

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"

	"github.com/marcos-nsantos/location-tracker/internal/domain"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
)

// ReverseGeocodeClient is the part of *maps.Client used here.
type ReverseGeocodeClient interface {
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// Google resolves addresses with the Google Geocoding API.
type Google struct {
	client   ReverseGeocodeClient
	language string
}

func NewGoogle(client ReverseGeocodeClient, language string) *Google {
	return &Google{client: client, language: language}
}

func (g *Google) ReverseGeocode(ctx context.Context, coord valueobject.Coordinate) (string, error) {
	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: coord.Lat, Lng: coord.Lng},
		Language: g.language,
	})
	if err != nil {
		if strings.Contains(err.Error(), "ZERO_RESULTS") {
			return "", domain.ErrGeocodeNotFound
		}
		return "", fmt.Errorf("google reverse geocode: %w", err)
	}

	for _, r := range results {
		if r.FormattedAddress != "" {
			return r.FormattedAddress, nil
		}
	}
	return "", domain.ErrGeocodeNotFound
}
