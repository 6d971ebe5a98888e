package mapprovider

import (
	"context"

	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/mapprovider_mocks.go -package=mocks

// SDK is the capability exposed by one mapping provider.
type SDK interface {
	Present() bool
	Failed() bool
	CreateMap(center valueobject.Coordinate, zoom int) (Canvas, error)
}

// Canvas is a live map surface.
type Canvas interface {
	PanTo(center valueobject.Coordinate) error
	FitBounds(bounds valueobject.BoundingBox) error
	AddMarker(opts MarkerOptions) (MarkerOverlay, error)
	AddPolyline(opts PolylineOptions) (Overlay, error)
	Destroy()
}

type Overlay interface {
	SetVisible(visible bool)
	Remove()
}

type MarkerOverlay interface {
	Overlay
	SetPosition(pos valueobject.Coordinate)
}

type MarkerKind string

const (
	MarkerCurrent  MarkerKind = "current"
	MarkerStart    MarkerKind = "start"
	MarkerEnd      MarkerKind = "end"
	MarkerWaypoint MarkerKind = "waypoint"
)

type MarkerOptions struct {
	Kind     MarkerKind
	Position valueobject.Coordinate
	Title    string
	Info     string
}

type PolylineOptions struct {
	Path          []valueobject.Coordinate
	StrokeColor   string
	StrokeOpacity float64
	StrokeWeight  int
	StrokeStyle   string
	Geodesic      bool
}

// Adapter renders tracker state on one provider's map.
type Adapter interface {
	Provider() entity.Provider
	Initialize(ctx context.Context, center valueobject.Coordinate) (*Handle, error)
	UpdateCurrentPosition(h *Handle, pos valueobject.Coordinate) error
	RenderPath(h *Handle, history []entity.LocationSample, visible bool) error
	SetPathVisibility(h *Handle, visible bool)
	Teardown(h *Handle)
}
