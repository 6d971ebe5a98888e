package testdata

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
)

const (
	SampleCount = 20
	Spacing     = 30 * time.Minute
	MaxStep     = 0.001
	MinAccuracy = 5.0
	MaxAccuracy = 15.0
)

// Rand is the subset of math/rand/v2 the generator needs.
type Rand interface {
	Float64() float64
}

// Generator synthesizes a plausible day of samples around a start point.
type Generator struct {
	origin valueobject.Coordinate
	rng    Rand
}

func NewGenerator(origin valueobject.Coordinate, rng Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{origin: origin, rng: rng}
}

// Generate returns SampleCount samples ending at now, spaced 30 minutes
// apart, following a random walk from the origin. The result is sorted by
// timestamp.
func (g *Generator) Generate(now time.Time) []entity.LocationSample {
	samples := make([]entity.LocationSample, 0, SampleCount)
	lat, lng := g.origin.Lat, g.origin.Lng

	for i := 0; i < SampleCount; i++ {
		lat += g.step()
		lng += g.step()
		ts := now.Add(-time.Duration(SampleCount-1-i) * Spacing)
		accuracy := MinAccuracy + g.rng.Float64()*(MaxAccuracy-MinAccuracy)

		samples = append(samples, entity.NewLocationSample(round6(lat), round6(lng), accuracy, ts))
	}

	entity.SortByTimestamp(samples)
	return samples
}

func (g *Generator) step() float64 {
	return (g.rng.Float64()*2 - 1) * MaxStep
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
