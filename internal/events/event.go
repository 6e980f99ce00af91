// Package events publishes domain events (match and visit changes) to a
// message broker after the owning transaction has committed.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	MatchRequested = "match.requested"
	MatchAccepted  = "match.accepted"
	MatchDeclined  = "match.declined"
	VisitRecorded  = "visit.recorded"
)

// Event is the envelope written to every broker.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"event_type"`
	Key        string          `json:"key"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data"`
}

// New wraps payload in an envelope with a fresh id. Key groups related
// events, e.g. the canonical pair of a match.
func New(eventType, key string, payload any, at time.Time) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Key:        key,
		OccurredAt: at.UTC(),
		Data:       data,
	}, nil
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }
