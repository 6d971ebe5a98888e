package entity

import (
	"slices"
	"time"

	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
)

// LocationSample is one timestamped position observation. Treat it as immutable.
type LocationSample struct {
	Lat       float64
	Lng       float64
	Accuracy  float64
	Timestamp time.Time
}

func NewLocationSample(lat, lng, accuracy float64, ts time.Time) LocationSample {
	if accuracy < 0 {
		accuracy = 0
	}
	return LocationSample{
		Lat:       lat,
		Lng:       lng,
		Accuracy:  accuracy,
		Timestamp: ts,
	}
}

func (s LocationSample) Coordinate() valueobject.Coordinate {
	return valueobject.NewCoordinate(s.Lat, s.Lng)
}

// SortByTimestamp orders samples ascending by timestamp, keeping the relative
// order of equal timestamps.
func SortByTimestamp(samples []LocationSample) {
	slices.SortStableFunc(samples, func(a, b LocationSample) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
}
