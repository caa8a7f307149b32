package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Envelope wraps a domain event for transport.
type Envelope struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEnvelope wraps event data under a type tag.
func NewEnvelope(eventType string, data any) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		ID:        uuid.New().String(),
		EventType: eventType,
		Data:      raw,
		Timestamp: time.Now(),
	}, nil
}
