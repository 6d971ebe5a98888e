package publisher

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/publisher_mocks.go -package=mocks

type Topic string

const (
	TopicLocation Topic = "location"
	TopicHistory  Topic = "history"
	TopicProvider Topic = "provider"
)

// Event is a state change announced to external subscribers.
type Event struct {
	Topic     Topic          `json:"topic"`
	Kind      string         `json:"kind"`
	Payload   map[string]any `json:"payload,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close()
}
