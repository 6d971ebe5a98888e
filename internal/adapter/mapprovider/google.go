package mapprovider

import (
	"go.uber.org/zap"

	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
)

const GoogleZoom = 16

// Google renders on the Google Maps JavaScript API with a geodesic path and
// no per-sample markers.
type Google struct {
	base
}

func NewGoogle(sdk SDK, opts Options, logger *zap.Logger) *Google {
	return &Google{
		base: base{
			provider: entity.ProviderGoogle,
			sdk:      sdk,
			zoom:     GoogleZoom,
			polyline: PolylineOptions{
				StrokeColor:   PathColor,
				StrokeOpacity: PathOpacity,
				StrokeWeight:  PathWeight,
				Geodesic:      true,
			},
			marker: MarkerOptions{Title: "Current location"},
			opts:   opts.withDefaults(),
			logger: logger.Named("google"),
		},
	}
}
