package entity

import (
	"time"

	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
)

// CurrentLocation is the live cursor. It moves with every appended sample but
// is otherwise independent from the history audit trail.
type CurrentLocation struct {
	Lat       float64
	Lng       float64
	Address   string
	Timestamp time.Time
}

func NewCurrentLocation(lat, lng float64, ts time.Time) CurrentLocation {
	return CurrentLocation{
		Lat:       lat,
		Lng:       lng,
		Timestamp: ts,
	}
}

// MoveTo updates the position and keeps the previous address until a reverse
// geocode result replaces it.
func (c *CurrentLocation) MoveTo(s LocationSample) {
	c.Lat = s.Lat
	c.Lng = s.Lng
	c.Timestamp = s.Timestamp
}

func (c CurrentLocation) Coordinate() valueobject.Coordinate {
	return valueobject.NewCoordinate(c.Lat, c.Lng)
}
