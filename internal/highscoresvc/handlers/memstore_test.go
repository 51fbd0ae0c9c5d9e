package handlers

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/avvvet/highscore-services/internal/highscoresvc/models"
)

// memStore mimics the constraints of the game and score tables.
type memStore struct {
	mu      sync.Mutex
	nextID  int64
	games   []models.Game
	scores  []models.Score
	failAll error
	pingErr error
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) ListGames(ctx context.Context, title string) ([]models.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return nil, m.failAll
	}

	games := make([]models.Game, 0)
	for _, g := range m.games {
		if title == "" || strings.Contains(strings.ToLower(g.Title), strings.ToLower(title)) {
			games = append(games, g)
		}
	}
	return games, nil
}

func (m *memStore) GetGameBySlug(ctx context.Context, slug string) (*models.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return nil, m.failAll
	}

	for _, g := range m.games {
		if g.URLSlug == slug {
			game := g
			return &game, nil
		}
	}
	return nil, nil
}

func (m *memStore) CreateGame(ctx context.Context, game models.Game) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return 0, m.failAll
	}

	if game.Title == "" {
		return 0, errors.New(`new row for relation "game" violates check constraint "game_title_check"`)
	}
	for _, g := range m.games {
		if g.URLSlug == game.URLSlug {
			return 0, errors.New(`duplicate key value violates unique constraint "game_url_slug_key"`)
		}
	}

	m.nextID++
	game.ID = m.nextID
	m.games = append(m.games, game)
	return game.ID, nil
}

func (m *memStore) DeleteGameBySlug(ctx context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return m.failAll
	}

	for i, g := range m.games {
		if g.URLSlug == slug {
			m.games = append(m.games[:i], m.games[i+1:]...)
			kept := m.scores[:0]
			for _, s := range m.scores {
				if s.GameID != g.ID {
					kept = append(kept, s)
				}
			}
			m.scores = kept
			break
		}
	}
	return nil
}

func (m *memStore) CreateScore(ctx context.Context, in models.NewScore) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return m.failAll
	}

	if in.Player == nil || *in.Player == "" || in.Highscore == nil || in.PlayedAt == nil || in.GameID == nil {
		return errors.New(`null value in column violates not-null constraint`)
	}
	if m.gameByID(int64(*in.GameID)) == nil {
		return errors.New(`insert or update on table "score" violates foreign key constraint "score_game_id_fkey"`)
	}

	m.nextID++
	id := m.nextID
	m.scores = append(m.scores, models.Score{
		ID:        &id,
		Player:    string(*in.Player),
		Highscore: *in.Highscore,
		PlayedAt:  *in.PlayedAt,
		GameID:    int64(*in.GameID),
	})
	return nil
}

func (m *memStore) GetHighscoresBySlug(ctx context.Context, slug string) ([]models.GameHighscore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return nil, m.failAll
	}

	out := make([]models.GameHighscore, 0)
	for _, s := range m.scores {
		g := m.gameByID(s.GameID)
		if g == nil || g.URLSlug != slug {
			continue
		}
		out = append(out, models.GameHighscore{
			Title:     g.Title,
			Highscore: s.Highscore,
			Player:    s.Player,
			PlayedAt:  s.PlayedAt,
		})
	}
	return out, nil
}

func (m *memStore) ListHighscores(ctx context.Context) ([]models.Highscore, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return nil, m.failAll
	}

	out := make([]models.Highscore, 0)
	for _, s := range m.scores {
		if g := m.gameByID(s.GameID); g != nil {
			out = append(out, models.Highscore{Title: g.Title, Highscore: s.Highscore})
		}
	}
	return out, nil
}

func (m *memStore) Ping(ctx context.Context) error {
	return m.pingErr
}

func (m *memStore) gameByID(id int64) *models.Game {
	for i := range m.games {
		if m.games[i].ID == id {
			return &m.games[i]
		}
	}
	return nil
}
