package comm

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	ev, err := NewEvent(EventGameDeleted, GameDeleted{URLSlug: "tetris"})
	require.NoError(t, err)

	_, err = uuid.Parse(ev.ID)
	assert.NoError(t, err)
	assert.Equal(t, EventGameDeleted, ev.Type)
	assert.False(t, ev.OccurredAt.IsZero())
	assert.JSONEq(t, `{"urlSlug":"tetris"}`, string(ev.Data))
}

func TestNewEventUnsupportedData(t *testing.T) {
	_, err := NewEvent(EventGameCreated, make(chan int))
	assert.Error(t, err)
}

func TestEventRoundTripKeepsData(t *testing.T) {
	ev, err := NewEvent(EventScoreCreated, map[string]int{"gameId": 3})
	require.NoError(t, err)

	payload, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, ev.ID, decoded.ID)
	assert.JSONEq(t, `{"gameId":3}`, string(decoded.Data))
}
