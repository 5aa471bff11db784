package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable record of a fact that already happened. The
// constructor owns the ID and timestamp; callers only supply the type,
// the payload and optionally a source label.
type Event struct {
	ID        string
	Type      string
	Source    string
	Timestamp time.Time
	Data      map[string]any
}

func New(eventType string, data map[string]any) Event {
	return NewWithSource(eventType, "", data)
}

func NewWithSource(eventType, source string, data map[string]any) Event {
	copied := make(map[string]any, len(data))
	for k, v := range data {
		copied[k] = v
	}

	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    source,
		Timestamp: time.Now().UTC(),
		Data:      copied,
	}
}

// ToMap renders the event for logging and diagnostics. The returned map
// and its nested data map are fresh copies; mutating them does not touch
// the event.
func (e Event) ToMap() map[string]any {
	data := make(map[string]any, len(e.Data))
	for k, v := range e.Data {
		data[k] = v
	}

	return map[string]any{
		"event_id":   e.ID,
		"event_type": e.Type,
		"source":     e.Source,
		"timestamp":  e.Timestamp.Format(time.RFC3339Nano),
		"data":       data,
	}
}
