package service

import (
	"context"

	"github.com/avvvet/highscore-services/internal/highscoresvc/models"
)

type ScoreStore interface {
	CreateScore(ctx context.Context, score models.NewScore) error
}

type ScoreService struct {
	store    ScoreStore
	notifier Notifier
}

func NewScoreService(store ScoreStore, notifier Notifier) *ScoreService {
	return &ScoreService{store: store, notifier: notifier}
}

// CreateScore persists the score and echoes the submitted fields back. The
// returned ID is always nil.
func (s *ScoreService) CreateScore(ctx context.Context, in models.NewScore) (*models.Score, error) {
	if err := s.store.CreateScore(ctx, in); err != nil {
		return nil, err
	}

	score := &models.Score{}
	if in.Player != nil {
		score.Player = string(*in.Player)
	}
	if in.Highscore != nil {
		score.Highscore = *in.Highscore
	}
	if in.PlayedAt != nil {
		score.PlayedAt = *in.PlayedAt
	}
	if in.GameID != nil {
		score.GameID = int64(*in.GameID)
	}

	if s.notifier != nil {
		s.notifier.ScoreCreated(score)
	}
	return score, nil
}
