package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
	"github.com/marcos-nsantos/location-tracker/internal/usecase/history"
)

var home = valueobject.NewCoordinate(37.2038, 127.0909)

func newStore(start time.Time) *history.Store {
	return history.NewStore(home, start, time.UTC)
}

func TestStore_New(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newStore(start)

	cur := store.Current()
	assert.Equal(t, home.Lat, cur.Lat)
	assert.Equal(t, home.Lng, cur.Lng)
	assert.Equal(t, start, cur.Timestamp)
	assert.Empty(t, cur.Address)
	assert.Zero(t, store.Len())
}

func TestStore_Append(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("appends and moves current location", func(t *testing.T) {
		store := newStore(base)
		s := entity.NewLocationSample(37.3, 127.1, 8, base.Add(time.Minute))

		store.Append(s)

		require.Equal(t, 1, store.Len())
		assert.Equal(t, s, store.History()[0])
		cur := store.Current()
		assert.Equal(t, 37.3, cur.Lat)
		assert.Equal(t, 127.1, cur.Lng)
		assert.Equal(t, s.Timestamp, cur.Timestamp)
	})

	t.Run("keeps address when moving", func(t *testing.T) {
		store := newStore(base)
		require.True(t, store.SetAddress(home, "Suwon"))

		store.Append(entity.NewLocationSample(37.3, 127.1, 8, base))

		assert.Equal(t, "Suwon", store.Current().Address)
	})

	t.Run("retains the most recent samples in order", func(t *testing.T) {
		store := newStore(base)
		total := history.MaxSamples + 150

		for i := 0; i < total; i++ {
			store.Append(entity.NewLocationSample(float64(i)/10000, 127, 5, base.Add(time.Duration(i)*time.Second)))
		}

		got := store.History()
		require.Len(t, got, history.MaxSamples)
		for i, s := range got {
			assert.Equal(t, float64(i+150)/10000, s.Lat)
		}
	})

	t.Run("history copy is detached", func(t *testing.T) {
		store := newStore(base)
		store.Append(entity.NewLocationSample(37.3, 127.1, 8, base))

		snapshot := store.History()
		snapshot[0].Lat = 0

		assert.Equal(t, 37.3, store.History()[0].Lat)
	})
}

func TestStore_ResetIfNewDay(t *testing.T) {
	day := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)

	t.Run("false when empty", func(t *testing.T) {
		store := newStore(day)
		assert.False(t, store.ResetIfNewDay(day.Add(48*time.Hour)))
	})

	t.Run("false on the same day", func(t *testing.T) {
		store := newStore(day)
		store.Append(entity.NewLocationSample(37.3, 127.1, 8, day.Add(-23*time.Hour)))

		assert.False(t, store.ResetIfNewDay(day))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("clears on a new day", func(t *testing.T) {
		store := newStore(day)
		store.Append(entity.NewLocationSample(37.3, 127.1, 8, day))

		assert.True(t, store.ResetIfNewDay(day.Add(2*time.Minute)))
		assert.Zero(t, store.Len())
		assert.Equal(t, 37.3, store.Current().Lat, "current location survives a reset")
	})

	t.Run("compares dates in the store zone", func(t *testing.T) {
		seoul := time.FixedZone("KST", 9*60*60)
		store := history.NewStore(home, day, seoul)
		// 2026-03-01 16:00 UTC is 2026-03-02 01:00 KST
		store.Append(entity.NewLocationSample(37.3, 127.1, 8, time.Date(2026, 3, 1, 16, 0, 0, 0, time.UTC)))

		assert.False(t, store.ResetIfNewDay(time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)))
		assert.True(t, store.ResetIfNewDay(time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC)))
	})
}

func TestStore_ReplaceAll(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("replaces history and moves current to the last sample", func(t *testing.T) {
		store := newStore(base)
		store.Append(entity.NewLocationSample(1, 1, 1, base))

		samples := []entity.LocationSample{
			entity.NewLocationSample(37.1, 127.1, 5, base.Add(time.Minute)),
			entity.NewLocationSample(37.2, 127.2, 6, base.Add(2*time.Minute)),
		}
		store.ReplaceAll(samples)

		assert.Equal(t, samples, store.History())
		assert.Equal(t, 37.2, store.Current().Lat)
		assert.Equal(t, samples[1].Timestamp, store.Current().Timestamp)
	})

	t.Run("keeps only the most recent samples", func(t *testing.T) {
		store := newStore(base)
		samples := make([]entity.LocationSample, history.MaxSamples+10)
		for i := range samples {
			samples[i] = entity.NewLocationSample(float64(i), 0, 5, base.Add(time.Duration(i)*time.Second))
		}

		store.ReplaceAll(samples)

		got := store.History()
		require.Len(t, got, history.MaxSamples)
		assert.Equal(t, float64(10), got[0].Lat)
		assert.Equal(t, float64(history.MaxSamples+9), got[len(got)-1].Lat)
	})

	t.Run("input slice is not aliased", func(t *testing.T) {
		store := newStore(base)
		samples := []entity.LocationSample{entity.NewLocationSample(37.1, 127.1, 5, base)}

		store.ReplaceAll(samples)
		samples[0].Lat = 0

		assert.Equal(t, 37.1, store.History()[0].Lat)
	})
}

func TestStore_SetAddress(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("sets address for the current coordinate", func(t *testing.T) {
		store := newStore(base)
		assert.True(t, store.SetAddress(home, "Yeongtong-gu, Suwon"))
		assert.Equal(t, "Yeongtong-gu, Suwon", store.Current().Address)
	})

	t.Run("discards a stale result", func(t *testing.T) {
		store := newStore(base)
		store.Append(entity.NewLocationSample(37.3, 127.1, 8, base))

		assert.False(t, store.SetAddress(home, "old place"))
		assert.Empty(t, store.Current().Address)
	})
}

func TestStore_Subscribe(t *testing.T) {
	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newStore(base)

	var changes []history.Change
	unsubscribe := store.Subscribe(func(c history.Change) {
		assert.Equal(t, c.Len, store.Len(), "observers see the completed mutation")
		changes = append(changes, c)
	})

	store.Append(entity.NewLocationSample(37.3, 127.1, 8, base))
	store.SetAddress(valueobject.NewCoordinate(37.3, 127.1), "somewhere")
	store.ResetIfNewDay(base.Add(24 * time.Hour))
	store.ReplaceAll([]entity.LocationSample{entity.NewLocationSample(37.4, 127.2, 8, base)})

	unsubscribe()
	store.Append(entity.NewLocationSample(37.5, 127.3, 8, base))

	assert.Equal(t, []history.Change{
		{Kind: history.ChangeAppended, Len: 1},
		{Kind: history.ChangeAddress, Len: 1},
		{Kind: history.ChangeReset, Len: 0},
		{Kind: history.ChangeReplaced, Len: 1},
	}, changes)
}
