package mapsdk

import (
	"slices"
	"sync"

	"github.com/marcos-nsantos/location-tracker/internal/adapter/mapprovider"
	"github.com/marcos-nsantos/location-tracker/internal/domain"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
)

// Scene is the retained drawing state of one provider's map. The front-end
// mirrors it; adapters mutate it through the canvas returned by CreateMap.
type Scene struct {
	provider string

	mu      sync.RWMutex
	surface *surface
	version uint64
	nextID  int
}

type surface struct {
	center    valueobject.Coordinate
	zoom      int
	bounds    *valueobject.BoundingBox
	markers   map[int]*markerState
	polylines map[int]*polylineState
}

type markerState struct {
	opts    mapprovider.MarkerOptions
	visible bool
}

type polylineState struct {
	opts    mapprovider.PolylineOptions
	visible bool
}

func NewScene(provider string) *Scene {
	return &Scene{provider: provider}
}

// CreateMap replaces any existing surface with a fresh one.
func (s *Scene) CreateMap(center valueobject.Coordinate, zoom int) (mapprovider.Canvas, error) {
	if !center.IsValid() {
		return nil, domain.ErrInvalidCoordinate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sf := &surface{
		center:    center,
		zoom:      zoom,
		markers:   make(map[int]*markerState),
		polylines: make(map[int]*polylineState),
	}
	s.surface = sf
	s.version++

	return &canvas{scene: s, surface: sf}, nil
}

// mutate runs fn against sf if it is still the live surface.
func (s *Scene) mutate(sf *surface, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.surface != sf {
		return domain.ErrMapNotInitialized
	}
	fn()
	s.version++
	return nil
}

func (s *Scene) id() int {
	s.nextID++
	return s.nextID
}

type MarkerView struct {
	ID       int
	Kind     mapprovider.MarkerKind
	Position valueobject.Coordinate
	Title    string
	Info     string
	Visible  bool
}

type PolylineView struct {
	ID            int
	Path          []valueobject.Coordinate
	StrokeColor   string
	StrokeOpacity float64
	StrokeWeight  int
	StrokeStyle   string
	Geodesic      bool
	Visible       bool
}

type Snapshot struct {
	Provider  string
	Ready     bool
	Version   uint64
	Center    valueobject.Coordinate
	Zoom      int
	Bounds    *valueobject.BoundingBox
	Markers   []MarkerView
	Polylines []PolylineView
}

// Snapshot copies the current scene, ordered by creation.
func (s *Scene) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Provider: s.provider, Version: s.version}
	sf := s.surface
	if sf == nil {
		return snap
	}

	snap.Ready = true
	snap.Center = sf.center
	snap.Zoom = sf.zoom
	if sf.bounds != nil {
		b := *sf.bounds
		snap.Bounds = &b
	}

	for id, m := range sf.markers {
		snap.Markers = append(snap.Markers, MarkerView{
			ID:       id,
			Kind:     m.opts.Kind,
			Position: m.opts.Position,
			Title:    m.opts.Title,
			Info:     m.opts.Info,
			Visible:  m.visible,
		})
	}
	for id, p := range sf.polylines {
		snap.Polylines = append(snap.Polylines, PolylineView{
			ID:            id,
			Path:          slices.Clone(p.opts.Path),
			StrokeColor:   p.opts.StrokeColor,
			StrokeOpacity: p.opts.StrokeOpacity,
			StrokeWeight:  p.opts.StrokeWeight,
			StrokeStyle:   p.opts.StrokeStyle,
			Geodesic:      p.opts.Geodesic,
			Visible:       p.visible,
		})
	}

	slices.SortFunc(snap.Markers, func(a, b MarkerView) int { return a.ID - b.ID })
	slices.SortFunc(snap.Polylines, func(a, b PolylineView) int { return a.ID - b.ID })
	return snap
}

type canvas struct {
	scene   *Scene
	surface *surface
}

func (c *canvas) PanTo(center valueobject.Coordinate) error {
	return c.scene.mutate(c.surface, func() {
		c.surface.center = center
	})
}

func (c *canvas) FitBounds(bounds valueobject.BoundingBox) error {
	if !bounds.IsValid() {
		return domain.ErrInvalidCoordinate
	}
	return c.scene.mutate(c.surface, func() {
		c.surface.bounds = &bounds
		c.surface.center = bounds.Center()
	})
}

func (c *canvas) AddMarker(opts mapprovider.MarkerOptions) (mapprovider.MarkerOverlay, error) {
	if !opts.Position.IsValid() {
		return nil, domain.ErrInvalidCoordinate
	}

	var id int
	err := c.scene.mutate(c.surface, func() {
		id = c.scene.id()
		c.surface.markers[id] = &markerState{opts: opts, visible: true}
	})
	if err != nil {
		return nil, err
	}
	return &marker{overlay{canvas: c, id: id}}, nil
}

func (c *canvas) AddPolyline(opts mapprovider.PolylineOptions) (mapprovider.Overlay, error) {
	for _, p := range opts.Path {
		if !p.IsValid() {
			return nil, domain.ErrInvalidCoordinate
		}
	}
	opts.Path = slices.Clone(opts.Path)

	var id int
	err := c.scene.mutate(c.surface, func() {
		id = c.scene.id()
		c.surface.polylines[id] = &polylineState{opts: opts, visible: true}
	})
	if err != nil {
		return nil, err
	}
	return &overlay{canvas: c, id: id}, nil
}

func (c *canvas) Destroy() {
	c.scene.mu.Lock()
	defer c.scene.mu.Unlock()
	if c.scene.surface == c.surface {
		c.scene.surface = nil
		c.scene.version++
	}
}

type overlay struct {
	canvas *canvas
	id     int
}

func (o *overlay) SetVisible(visible bool) {
	_ = o.canvas.scene.mutate(o.canvas.surface, func() {
		if m, ok := o.canvas.surface.markers[o.id]; ok {
			m.visible = visible
		}
		if p, ok := o.canvas.surface.polylines[o.id]; ok {
			p.visible = visible
		}
	})
}

func (o *overlay) Remove() {
	_ = o.canvas.scene.mutate(o.canvas.surface, func() {
		delete(o.canvas.surface.markers, o.id)
		delete(o.canvas.surface.polylines, o.id)
	})
}

type marker struct {
	overlay
}

func (m *marker) SetPosition(pos valueobject.Coordinate) {
	if !pos.IsValid() {
		return
	}
	_ = m.canvas.scene.mutate(m.canvas.surface, func() {
		if st, ok := m.canvas.surface.markers[m.id]; ok {
			st.opts.Position = pos
		}
	})
}
