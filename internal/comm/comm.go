package comm

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventGameCreated  = "game-created"
	EventGameDeleted  = "game-deleted"
	EventScoreCreated = "score-created"
)

// Event is the envelope published on the events subject.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"` // e.g. "game-created", "score-created"
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

type GameDeleted struct {
	URLSlug string `json:"urlSlug"`
}

func NewEvent(eventType string, data any) (*Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       raw,
	}, nil
}
