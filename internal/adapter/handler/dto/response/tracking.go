package response

import (
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
	"github.com/marcos-nsantos/location-tracker/internal/infrastructure/mapsdk"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/session"
)

type TrackingResponse struct {
	Tracking    bool            `json:"tracking"`
	SampleCount int             `json:"sample_count"`
	LastSample  *SampleResponse `json:"last_sample,omitempty"`
}

type ProvidersResponse struct {
	Statuses map[string]string `json:"statuses"`
	Selected string            `json:"selected"`
	Active   string            `json:"active,omitempty"`
	MapState string            `json:"map_state"`
	Healthy  bool              `json:"healthy"`
	Error    string            `json:"error,omitempty"`
}

type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type BoundsResponse struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

type MarkerResponse struct {
	ID       int                `json:"id"`
	Kind     string             `json:"kind"`
	Position CoordinateResponse `json:"position"`
	Title    string             `json:"title,omitempty"`
	Info     string             `json:"info,omitempty"`
	Visible  bool               `json:"visible"`
}

type PolylineResponse struct {
	ID            int                  `json:"id"`
	Path          []CoordinateResponse `json:"path"`
	StrokeColor   string               `json:"stroke_color"`
	StrokeOpacity float64              `json:"stroke_opacity"`
	StrokeWeight  int                  `json:"stroke_weight"`
	StrokeStyle   string               `json:"stroke_style,omitempty"`
	Geodesic      bool                 `json:"geodesic"`
	Visible       bool                 `json:"visible"`
}

type SceneResponse struct {
	Version   uint64             `json:"version"`
	Center    CoordinateResponse `json:"center"`
	Zoom      int                `json:"zoom"`
	Bounds    *BoundsResponse    `json:"bounds,omitempty"`
	Markers   []MarkerResponse   `json:"markers"`
	Polylines []PolylineResponse `json:"polylines"`
}

type MapResponse struct {
	Provider string         `json:"provider,omitempty"`
	State    string         `json:"state"`
	ShowPath bool           `json:"show_path"`
	Error    string         `json:"error,omitempty"`
	Scene    *SceneResponse `json:"scene,omitempty"`
}

func TrackingFromState(s session.TrackingState) TrackingResponse {
	resp := TrackingResponse{
		Tracking:    s.Tracking,
		SampleCount: s.SampleCount,
	}
	if s.LastSample != nil {
		last := SampleFromEntity(*s.LastSample)
		resp.LastSample = &last
	}
	return resp
}

func ProvidersFromState(s session.ProvidersState) ProvidersResponse {
	statuses := make(map[string]string, len(s.Statuses))
	for p, st := range s.Statuses {
		statuses[p.String()] = st.String()
	}
	return ProvidersResponse{
		Statuses: statuses,
		Selected: s.Selected.String(),
		Active:   s.Active.String(),
		MapState: string(s.MapState),
		Healthy:  s.Healthy,
		Error:    s.Error,
	}
}

func coordinate(c valueobject.Coordinate) CoordinateResponse {
	return CoordinateResponse{Latitude: c.Lat, Longitude: c.Lng}
}

func sceneFromSnapshot(snap mapsdk.Snapshot) *SceneResponse {
	scene := &SceneResponse{
		Version:   snap.Version,
		Center:    coordinate(snap.Center),
		Zoom:      snap.Zoom,
		Markers:   make([]MarkerResponse, 0, len(snap.Markers)),
		Polylines: make([]PolylineResponse, 0, len(snap.Polylines)),
	}
	if snap.Bounds != nil {
		scene.Bounds = &BoundsResponse{
			MinLat: snap.Bounds.MinLat,
			MaxLat: snap.Bounds.MaxLat,
			MinLng: snap.Bounds.MinLng,
			MaxLng: snap.Bounds.MaxLng,
		}
	}

	for _, m := range snap.Markers {
		scene.Markers = append(scene.Markers, MarkerResponse{
			ID:       m.ID,
			Kind:     string(m.Kind),
			Position: coordinate(m.Position),
			Title:    m.Title,
			Info:     m.Info,
			Visible:  m.Visible,
		})
	}
	for _, p := range snap.Polylines {
		path := make([]CoordinateResponse, 0, len(p.Path))
		for _, c := range p.Path {
			path = append(path, coordinate(c))
		}
		scene.Polylines = append(scene.Polylines, PolylineResponse{
			ID:            p.ID,
			Path:          path,
			StrokeColor:   p.StrokeColor,
			StrokeOpacity: p.StrokeOpacity,
			StrokeWeight:  p.StrokeWeight,
			StrokeStyle:   p.StrokeStyle,
			Geodesic:      p.Geodesic,
			Visible:       p.Visible,
		})
	}
	return scene
}

func MapFromView(v session.MapView) MapResponse {
	resp := MapResponse{
		Provider: v.Provider.String(),
		State:    string(v.State),
		ShowPath: v.ShowPath,
		Error:    v.Error,
	}
	if v.Scene != nil {
		resp.Scene = sceneFromSnapshot(*v.Scene)
	}
	return resp
}
