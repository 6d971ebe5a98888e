package analytics

import (
	"math"
	"time"

	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
)

const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two coordinates.
func HaversineKm(a, b valueobject.Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func TotalDistanceKm(history []entity.LocationSample) float64 {
	if len(history) < 2 {
		return 0
	}

	var total float64
	for i := 1; i < len(history); i++ {
		total += HaversineKm(history[i-1].Coordinate(), history[i].Coordinate())
	}
	return total
}

func AverageSpeedKmh(history []entity.LocationSample) float64 {
	if len(history) < 2 {
		return 0
	}

	elapsed := history[len(history)-1].Timestamp.Sub(history[0].Timestamp)
	if elapsed <= 0 {
		return 0
	}

	return TotalDistanceKm(history) / elapsed.Hours()
}

// MostActiveHour returns the local hour holding the most samples. Ties go to
// the lowest hour. ok is false for an empty history.
func MostActiveHour(history []entity.LocationSample, loc *time.Location) (hour int, ok bool) {
	if len(history) == 0 {
		return 0, false
	}

	var buckets [24]int
	for _, s := range history {
		buckets[s.Timestamp.In(loc).Hour()]++
	}

	best := 0
	for h := 1; h < len(buckets); h++ {
		if buckets[h] > buckets[best] {
			best = h
		}
	}
	return best, true
}

type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

func TimeOfDayLabel(t time.Time, loc *time.Location) TimeOfDay {
	h := t.In(loc).Hour()
	switch {
	case h >= 5 && h < 12:
		return Morning
	case h >= 12 && h < 17:
		return Afternoon
	case h >= 17 && h < 20:
		return Evening
	default:
		return Night
	}
}
