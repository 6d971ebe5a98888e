package handler

import (
	"context"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/positioning"
	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/pkg/pagination"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/analytics"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/auth"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/session"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type AuthService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.Token, error)
}

type LocationService interface {
	Current(ctx context.Context) (entity.CurrentLocation, error)
	History(ctx context.Context, page, perPage int) ([]entity.LocationSample, *pagination.Info, error)
	Summary(ctx context.Context) (analytics.Summary, error)
	GenerateTestData(ctx context.Context) ([]entity.LocationSample, error)
}

type TrackingService interface {
	Tracking(ctx context.Context) (session.TrackingState, error)
	SetTracking(ctx context.Context, on bool) (session.TrackingState, error)
}

type MapService interface {
	Providers(ctx context.Context) (session.ProvidersState, error)
	SelectProvider(ctx context.Context, p entity.Provider) (session.ProvidersState, error)
	SetPathVisible(ctx context.Context, visible bool) error
	Map(ctx context.Context) (session.MapView, error)
}

// PositionFeed accepts fixes reported by the user's device.
type PositionFeed interface {
	Push(fix positioning.Fix) error
	Fail(err error)
}
