package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GameHighscore is one row of a per-game highscore listing.
type GameHighscore struct {
	Title     string          `json:"title"`
	Highscore decimal.Decimal `json:"highscore"`
	Player    string          `json:"player"`
	PlayedAt  time.Time       `json:"playedAt"`
}

// Highscore is one row of the cross-game leaderboard feed.
type Highscore struct {
	Title     string          `json:"title"`
	Highscore decimal.Decimal `json:"highscore"`
}
