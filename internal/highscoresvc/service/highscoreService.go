package service

import (
	"context"

	"github.com/avvvet/highscore-services/internal/highscoresvc/models"
)

type HighscoreStore interface {
	GetHighscoresBySlug(ctx context.Context, slug string) ([]models.GameHighscore, error)
	ListHighscores(ctx context.Context) ([]models.Highscore, error)
}

type HighscoreService struct {
	store HighscoreStore
}

func NewHighscoreService(store HighscoreStore) *HighscoreService {
	return &HighscoreService{store: store}
}

func (s *HighscoreService) GetGameHighscores(ctx context.Context, slug string) ([]models.GameHighscore, error) {
	return s.store.GetHighscoresBySlug(ctx, slug)
}

func (s *HighscoreService) ListHighscores(ctx context.Context) ([]models.Highscore, error) {
	return s.store.ListHighscores(ctx)
}
