package history

import (
	"time"

	"github.com/marcos-nsantos/location-tracker/internal/domain/entity"
	"github.com/marcos-nsantos/location-tracker/internal/domain/valueobject"
)

// MaxSamples bounds the history to one day of samples taken every 30 seconds.
const MaxSamples = 2880

type ChangeKind string

const (
	ChangeAppended ChangeKind = "appended"
	ChangeReset    ChangeKind = "reset"
	ChangeReplaced ChangeKind = "replaced"
	ChangeAddress  ChangeKind = "address"
)

type Change struct {
	Kind ChangeKind
	Len  int
}

// Store owns the day-scoped sample history and the current location.
// It is not safe for concurrent use; all calls are expected to come from the
// event loop.
type Store struct {
	samples   []entity.LocationSample
	current   entity.CurrentLocation
	loc       *time.Location
	listeners map[int]func(Change)
	nextID    int
}

func NewStore(home valueobject.Coordinate, start time.Time, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{
		samples:   make([]entity.LocationSample, 0, 64),
		current:   entity.NewCurrentLocation(home.Lat, home.Lng, start),
		loc:       loc,
		listeners: make(map[int]func(Change)),
	}
}

func (s *Store) Location() *time.Location {
	return s.loc
}

func (s *Store) Append(sample entity.LocationSample) {
	s.samples = append(s.samples, sample)
	if excess := len(s.samples) - MaxSamples; excess > 0 {
		s.samples = trim(s.samples, excess)
	}
	s.current.MoveTo(sample)

	s.notify(ChangeAppended)
}

// trim drops the oldest n samples and compacts the backing array so the
// buffer does not grow without bound.
func trim(samples []entity.LocationSample, n int) []entity.LocationSample {
	kept := copy(samples, samples[n:])
	clear(samples[kept:])
	return samples[:kept]
}

// ResetIfNewDay clears the history when its first sample belongs to a
// different calendar day than now.
func (s *Store) ResetIfNewDay(now time.Time) bool {
	if len(s.samples) == 0 {
		return false
	}
	if sameDay(s.samples[0].Timestamp, now, s.loc) {
		return false
	}

	clear(s.samples)
	s.samples = s.samples[:0]
	s.notify(ChangeReset)
	return true
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// ReplaceAll swaps the whole history. Samples must already be sorted by
// timestamp; only the most recent MaxSamples are kept.
func (s *Store) ReplaceAll(samples []entity.LocationSample) {
	if len(samples) > MaxSamples {
		samples = samples[len(samples)-MaxSamples:]
	}

	s.samples = make([]entity.LocationSample, len(samples), max(len(samples), 64))
	copy(s.samples, samples)

	if n := len(s.samples); n > 0 {
		s.current.MoveTo(s.samples[n-1])
	}

	s.notify(ChangeReplaced)
}

func (s *Store) History() []entity.LocationSample {
	out := make([]entity.LocationSample, len(s.samples))
	copy(out, s.samples)
	return out
}

func (s *Store) Current() entity.CurrentLocation {
	return s.current
}

func (s *Store) Len() int {
	return len(s.samples)
}

// SetAddress attaches an address to the current location if it still sits at
// coord. A result for a position that has since moved is discarded.
func (s *Store) SetAddress(coord valueobject.Coordinate, address string) bool {
	if !s.current.Coordinate().Equal(coord) {
		return false
	}
	if s.current.Address == address {
		return true
	}

	s.current.Address = address
	s.notify(ChangeAddress)
	return true
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(Change)) func() {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		delete(s.listeners, id)
	}
}

func (s *Store) notify(kind ChangeKind) {
	change := Change{Kind: kind, Len: len(s.samples)}
	for _, fn := range s.listeners {
		fn(change)
	}
}
