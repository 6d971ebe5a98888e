package valueobject

// BoundingBox is the smallest lat/lng rectangle covering a set of coordinates.
// The zero value is empty; Extend grows it.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
	set    bool
}

func NewBoundingBox(minLat, maxLat, minLng, maxLng float64) *BoundingBox {
	return &BoundingBox{
		MinLat: minLat,
		MaxLat: maxLat,
		MinLng: minLng,
		MaxLng: maxLng,
		set:    true,
	}
}

// BoundsOf returns the bounding box of coords. ok is false when coords is empty.
func BoundsOf(coords []Coordinate) (bb BoundingBox, ok bool) {
	for _, c := range coords {
		bb.Extend(c)
	}
	return bb, bb.set
}

func (bb *BoundingBox) Extend(c Coordinate) {
	if !bb.set {
		bb.MinLat, bb.MaxLat = c.Lat, c.Lat
		bb.MinLng, bb.MaxLng = c.Lng, c.Lng
		bb.set = true
		return
	}
	bb.MinLat = min(bb.MinLat, c.Lat)
	bb.MaxLat = max(bb.MaxLat, c.Lat)
	bb.MinLng = min(bb.MinLng, c.Lng)
	bb.MaxLng = max(bb.MaxLng, c.Lng)
}

func (bb *BoundingBox) IsValid() bool {
	return bb.MinLat <= bb.MaxLat &&
		bb.MinLng <= bb.MaxLng &&
		bb.MinLat >= -90 && bb.MaxLat <= 90 &&
		bb.MinLng >= -180 && bb.MaxLng <= 180
}

func (bb *BoundingBox) Contains(c Coordinate) bool {
	return c.Lat >= bb.MinLat && c.Lat <= bb.MaxLat &&
		c.Lng >= bb.MinLng && c.Lng <= bb.MaxLng
}

func (bb *BoundingBox) Center() Coordinate {
	return Coordinate{
		Lat: (bb.MinLat + bb.MaxLat) / 2,
		Lng: (bb.MinLng + bb.MaxLng) / 2,
	}
}
