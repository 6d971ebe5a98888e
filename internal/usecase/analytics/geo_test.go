package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/analytics"
)

func sampleAt(lat, lng float64, ts time.Time) entity.LocationSample {
	return entity.NewLocationSample(lat, lng, 10, ts)
}

func TestHaversineKm(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		c := valueobject.NewCoordinate(37.2038, 127.0909)
		assert.InDelta(t, 0, analytics.HaversineKm(c, c), 1e-9)
	})

	t.Run("one hundredth of a degree of latitude", func(t *testing.T) {
		a := valueobject.NewCoordinate(37.0, 127.0)
		b := valueobject.NewCoordinate(37.01, 127.0)
		assert.InDelta(t, 1.11, analytics.HaversineKm(a, b), 0.01)
	})

	t.Run("is symmetric", func(t *testing.T) {
		a := valueobject.NewCoordinate(37.5665, 126.9780)
		b := valueobject.NewCoordinate(35.1796, 129.0756)
		assert.InDelta(t, analytics.HaversineKm(a, b), analytics.HaversineKm(b, a), 1e-9)
	})
}

func TestTotalDistanceKm(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("zero for empty and single point", func(t *testing.T) {
		assert.Zero(t, analytics.TotalDistanceKm(nil))
		assert.Zero(t, analytics.TotalDistanceKm([]entity.LocationSample{sampleAt(37, 127, base)}))
	})

	t.Run("sums consecutive legs", func(t *testing.T) {
		history := []entity.LocationSample{
			sampleAt(37.00, 127, base),
			sampleAt(37.01, 127, base.Add(time.Minute)),
			sampleAt(37.02, 127, base.Add(2*time.Minute)),
		}
		assert.InDelta(t, 2.22, analytics.TotalDistanceKm(history), 0.02)
	})

	t.Run("distance at least the straight line between endpoints", func(t *testing.T) {
		history := []entity.LocationSample{
			sampleAt(37.00, 127.00, base),
			sampleAt(37.05, 127.02, base.Add(time.Minute)),
			sampleAt(37.01, 127.04, base.Add(2*time.Minute)),
		}
		direct := analytics.HaversineKm(history[0].Coordinate(), history[2].Coordinate())
		assert.GreaterOrEqual(t, analytics.TotalDistanceKm(history), direct)
	})
}

func TestAverageSpeedKmh(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("divides by elapsed hours", func(t *testing.T) {
		history := []entity.LocationSample{
			sampleAt(37.00, 127, base),
			sampleAt(37.01, 127, base.Add(30*time.Minute)),
		}
		assert.InDelta(t, 2.22, analytics.AverageSpeedKmh(history), 0.02)
	})

	t.Run("zero when no time elapsed", func(t *testing.T) {
		history := []entity.LocationSample{
			sampleAt(37.00, 127, base),
			sampleAt(37.01, 127, base),
		}
		assert.Zero(t, analytics.AverageSpeedKmh(history))
	})

	t.Run("zero for single point", func(t *testing.T) {
		assert.Zero(t, analytics.AverageSpeedKmh([]entity.LocationSample{sampleAt(37, 127, base)}))
	})
}

func TestMostActiveHour(t *testing.T) {
	day := func(h int) time.Time { return time.Date(2026, 3, 1, h, 15, 0, 0, time.UTC) }

	t.Run("picks the fullest bucket", func(t *testing.T) {
		history := []entity.LocationSample{
			sampleAt(37, 127, day(3)),
			sampleAt(37, 127, day(3)),
			sampleAt(37, 127, day(5)),
		}
		hour, ok := analytics.MostActiveHour(history, time.UTC)
		assert.True(t, ok)
		assert.Equal(t, 3, hour)
	})

	t.Run("ties go to the lowest hour", func(t *testing.T) {
		history := []entity.LocationSample{
			sampleAt(37, 127, day(14)),
			sampleAt(37, 127, day(8)),
		}
		hour, ok := analytics.MostActiveHour(history, time.UTC)
		assert.True(t, ok)
		assert.Equal(t, 8, hour)
	})

	t.Run("buckets in the given zone", func(t *testing.T) {
		seoul := time.FixedZone("KST", 9*60*60)
		history := []entity.LocationSample{sampleAt(37, 127, day(1))}
		hour, ok := analytics.MostActiveHour(history, seoul)
		assert.True(t, ok)
		assert.Equal(t, 10, hour)
	})

	t.Run("unavailable for empty history", func(t *testing.T) {
		_, ok := analytics.MostActiveHour(nil, time.UTC)
		assert.False(t, ok)
	})
}

func TestTimeOfDayLabel(t *testing.T) {
	tests := []struct {
		hour int
		want analytics.TimeOfDay
	}{
		{0, analytics.Night},
		{4, analytics.Night},
		{5, analytics.Morning},
		{11, analytics.Morning},
		{12, analytics.Afternoon},
		{16, analytics.Afternoon},
		{17, analytics.Evening},
		{19, analytics.Evening},
		{20, analytics.Night},
		{23, analytics.Night},
	}

	for _, tt := range tests {
		ts := time.Date(2026, 3, 1, tt.hour, 30, 0, 0, time.UTC)
		assert.Equal(t, tt.want, analytics.TimeOfDayLabel(ts, time.UTC), "hour %d", tt.hour)
	}
}
