package analytics

import (
	"fmt"
	"time"

	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
)

const HourUnavailable = "N/A"

type Summary struct {
	SampleCount     int
	TotalDistanceKm float64
	AverageSpeedKmh float64
	MostActiveHour  string

	Lat       float64
	Lng       float64
	Address   string
	Date      string
	Time      string
	TimeOfDay TimeOfDay
	Zone      string
}

func FormatHour(hour int, ok bool) string {
	if !ok {
		return HourUnavailable
	}
	return fmt.Sprintf("%02d:00", hour)
}

// Summarize builds the movement panel for the given history and cursor.
func Summarize(history []entity.LocationSample, current entity.CurrentLocation, loc *time.Location) Summary {
	hour, ok := MostActiveHour(history, loc)
	local := current.Timestamp.In(loc)
	zone, _ := local.Zone()

	return Summary{
		SampleCount:     len(history),
		TotalDistanceKm: TotalDistanceKm(history),
		AverageSpeedKmh: AverageSpeedKmh(history),
		MostActiveHour:  FormatHour(hour, ok),
		Lat:             current.Lat,
		Lng:             current.Lng,
		Address:         current.Address,
		Date:            local.Format("2006-01-02"),
		Time:            local.Format("15:04:05"),
		TimeOfDay:       TimeOfDayLabel(current.Timestamp, loc),
		Zone:            zone,
	}
}
