package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Score is a recorded highscore for one game. ID stays nil on create because
// the insert does not read back the generated key.
type Score struct {
	ID        *int64          `json:"id"`
	Player    string          `json:"player"`
	Highscore decimal.Decimal `json:"highscore"`
	PlayedAt  time.Time       `json:"playedAt"`
	GameID    int64           `json:"gameId"` // FK to game(id)
}

// NewScore is the create payload for a score. Fields are pointers so that an
// absent field reaches storage as NULL and trips the NOT NULL constraint.
type NewScore struct {
	Player    *LooseString     `json:"player"`
	PlayedAt  *time.Time       `json:"playedAt"`
	Highscore *decimal.Decimal `json:"highscore"`
	GameID    *LooseInt64      `json:"gameId"`
}
