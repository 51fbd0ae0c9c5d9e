package store

import (
	"context"

	"github.com/avvvet/highscore-services/internal/highscoresvc/models"
)

type HighscoreStore struct {
	db DBTX
}

func NewHighscoreStore(db DBTX) *HighscoreStore {
	return &HighscoreStore{db: db}
}

// GetHighscoresBySlug lists every score recorded for the game with the given
// slug. An unknown slug yields an empty list.
func (s *HighscoreStore) GetHighscoresBySlug(ctx context.Context, slug string) ([]models.GameHighscore, error) {
	query := `
		SELECT game.title, score.highscore, score.player, score.played_at
		FROM game
		INNER JOIN score ON score.game_id = game.id
		WHERE game.url_slug = $1
	`

	rows, err := s.db.Query(ctx, query, slug)
	if err != nil {
		return nil, wrapErr("failed to get game highscores", err)
	}
	defer rows.Close()

	scores := make([]models.GameHighscore, 0)
	for rows.Next() {
		var h models.GameHighscore
		if err := rows.Scan(&h.Title, &h.Highscore, &h.Player, &h.PlayedAt); err != nil {
			return nil, wrapErr("failed to scan game highscore", err)
		}
		scores = append(scores, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to get game highscores", err)
	}

	return scores, nil
}

// ListHighscores returns every recorded score with its game title, unordered.
func (s *HighscoreStore) ListHighscores(ctx context.Context) ([]models.Highscore, error) {
	query := `
		SELECT game.title, score.highscore
		FROM score
		INNER JOIN game ON game.id = score.game_id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, wrapErr("failed to list highscores", err)
	}
	defer rows.Close()

	scores := make([]models.Highscore, 0)
	for rows.Next() {
		var h models.Highscore
		if err := rows.Scan(&h.Title, &h.Highscore); err != nil {
			return nil, wrapErr("failed to scan highscore", err)
		}
		scores = append(scores, h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to list highscores", err)
	}

	return scores, nil
}
