package mapprovider

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
)

const KakaoZoomLevel = 3

// Kakao renders on the Kakao Maps SDK. Its path carries start, end and
// waypoint markers labelled with the sample time and accuracy.
type Kakao struct {
	base
	loc *time.Location
}

func NewKakao(sdk SDK, loc *time.Location, opts Options, logger *zap.Logger) *Kakao {
	if loc == nil {
		loc = time.Local
	}
	k := &Kakao{loc: loc}
	k.base = base{
		provider: entity.ProviderKakao,
		sdk:      sdk,
		zoom:     KakaoZoomLevel,
		polyline: PolylineOptions{
			StrokeColor:   PathColor,
			StrokeOpacity: PathOpacity,
			StrokeWeight:  PathWeight,
			StrokeStyle:   "solid",
		},
		marker:   MarkerOptions{Title: "Current location"},
		decorate: k.decorate,
		opts:     opts.withDefaults(),
		logger:   logger.Named("kakao"),
	}
	return k
}

func (k *Kakao) decorate(canvas Canvas, history []entity.LocationSample) ([]Overlay, error) {
	last := len(history) - 1
	overlays := make([]Overlay, 0, len(history))

	add := func(kind MarkerKind, title string, s entity.LocationSample) error {
		m, err := canvas.AddMarker(MarkerOptions{
			Kind:     kind,
			Position: s.Coordinate(),
			Title:    title,
			Info:     k.info(s),
		})
		if err != nil {
			return fmt.Errorf("adding %s marker: %w", kind, err)
		}
		overlays = append(overlays, m)
		return nil
	}

	if err := add(MarkerStart, "Start", history[0]); err != nil {
		return overlays, err
	}
	if err := add(MarkerEnd, "End", history[last]); err != nil {
		return overlays, err
	}
	for i := 1; i < last; i++ {
		if err := add(MarkerWaypoint, fmt.Sprintf("Waypoint %d", i), history[i]); err != nil {
			return overlays, err
		}
	}

	return overlays, nil
}

func (k *Kakao) info(s entity.LocationSample) string {
	return fmt.Sprintf("Time: %s, Accuracy: %dm",
		s.Timestamp.In(k.loc).Format("15:04:05"),
		int(math.Round(s.Accuracy)),
	)
}
