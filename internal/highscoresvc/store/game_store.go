package store

import (
	"context"
	"errors"

	"github.com/avvvet/highscore-services/internal/highscoresvc/models"
	"github.com/jackc/pgx/v5"
)

const gameColumns = `id, title, release, genre, description, url_slug, image_url`

type GameStore struct {
	db DBTX
}

func NewGameStore(db DBTX) *GameStore {
	return &GameStore{db: db}
}

// ListGames returns every game, or only the games whose title contains
// title case-insensitively when title is not empty.
func (s *GameStore) ListGames(ctx context.Context, title string) ([]models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM game`
	args := []any{}
	if title != "" {
		query += ` WHERE title ILIKE '%' || $1 || '%'`
		args = append(args, title)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("failed to list games", err)
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var g models.Game
		if err := scanGame(rows, &g); err != nil {
			return nil, wrapErr("failed to scan game", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to list games", err)
	}

	return games, nil
}

func (s *GameStore) GetGameBySlug(ctx context.Context, slug string) (*models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM game
		WHERE url_slug = $1
	`

	game := &models.Game{}
	err := scanGame(s.db.QueryRow(ctx, query, slug), game)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Game not found
		}
		return nil, wrapErr("failed to get game by slug", err)
	}

	return game, nil
}

// CreateGame inserts the game and returns the generated id.
func (s *GameStore) CreateGame(ctx context.Context, game models.Game) (int64, error) {
	var id int64

	query := `
		INSERT INTO game (title, release, genre, description, url_slug, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRow(ctx, query,
		game.Title,
		game.Release,
		game.Genre,
		game.Description,
		game.URLSlug,
		game.ImageURL,
	).Scan(&id)
	if err != nil {
		return 0, wrapErr("could not create game", err)
	}

	return id, nil
}

// DeleteGameBySlug removes the game if it exists. Deleting a missing slug is
// not an error.
func (s *GameStore) DeleteGameBySlug(ctx context.Context, slug string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM game WHERE url_slug = $1`, slug)
	if err != nil {
		return wrapErr("could not delete game", err)
	}
	return nil
}

func scanGame(row pgx.Row, g *models.Game) error {
	return row.Scan(
		&g.ID,
		&g.Title,
		&g.Release,
		&g.Genre,
		&g.Description,
		&g.URLSlug,
		&g.ImageURL,
	)
}
