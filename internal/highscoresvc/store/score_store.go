package store

import (
	"context"

	"github.com/avvvet/highscore-services/internal/highscoresvc/models"
)

type ScoreStore struct {
	db DBTX
}

func NewScoreStore(db DBTX) *ScoreStore {
	return &ScoreStore{db: db}
}

// CreateScore inserts a score. The generated id is not read back; a missing
// game surfaces as a foreign key violation.
func (s *ScoreStore) CreateScore(ctx context.Context, score models.NewScore) error {
	query := `
		INSERT INTO score (player, highscore, played_at, game_id)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.Exec(ctx, query,
		(*string)(score.Player),
		score.Highscore,
		score.PlayedAt,
		(*int64)(score.GameID),
	)
	if err != nil {
		return wrapErr("could not create score", err)
	}

	return nil
}
