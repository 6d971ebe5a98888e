package response

import (
	"time"

	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/pkg/pagination"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/analytics"
)

type CurrentLocationResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type SampleResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type HistoryResponse struct {
	Samples    []SampleResponse   `json:"samples"`
	Pagination PaginationResponse `json:"pagination"`
}

type TestDataResponse struct {
	Generated int              `json:"generated"`
	Samples   []SampleResponse `json:"samples"`
}

type SummaryResponse struct {
	SampleCount     int     `json:"sample_count"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	AverageSpeedKmh float64 `json:"average_speed_kmh"`
	MostActiveHour  string  `json:"most_active_hour"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Address         string  `json:"address,omitempty"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	TimeOfDay       string  `json:"time_of_day"`
	TimeZone        string  `json:"time_zone"`
}

func CurrentLocationFromEntity(l entity.CurrentLocation) CurrentLocationResponse {
	return CurrentLocationResponse{
		Latitude:  l.Lat,
		Longitude: l.Lng,
		Address:   l.Address,
		Timestamp: l.Timestamp,
	}
}

func SampleFromEntity(s entity.LocationSample) SampleResponse {
	return SampleResponse{
		Latitude:  s.Lat,
		Longitude: s.Lng,
		Accuracy:  s.Accuracy,
		Timestamp: s.Timestamp,
	}
}

func SamplesFromEntities(samples []entity.LocationSample) []SampleResponse {
	resp := make([]SampleResponse, 0, len(samples))
	for _, s := range samples {
		resp = append(resp, SampleFromEntity(s))
	}
	return resp
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}

func SummaryFromAnalytics(s analytics.Summary) SummaryResponse {
	return SummaryResponse{
		SampleCount:     s.SampleCount,
		TotalDistanceKm: s.TotalDistanceKm,
		AverageSpeedKmh: s.AverageSpeedKmh,
		MostActiveHour:  s.MostActiveHour,
		Latitude:        s.Lat,
		Longitude:       s.Lng,
		Address:         s.Address,
		Date:            s.Date,
		Time:            s.Time,
		TimeOfDay:       string(s.TimeOfDay),
		TimeZone:        s.Zone,
	}
}
