package service

import (
	"context"

	"github.com/avvvet/highscore-services/internal/highscoresvc/models"
)

type GameStore interface {
	ListGames(ctx context.Context, title string) ([]models.Game, error)
	GetGameBySlug(ctx context.Context, slug string) (*models.Game, error)
	CreateGame(ctx context.Context, game models.Game) (int64, error)
	DeleteGameBySlug(ctx context.Context, slug string) error
}

// Notifier receives lifecycle events after a write succeeds.
type Notifier interface {
	GameCreated(game *models.Game)
	GameDeleted(slug string)
	ScoreCreated(score *models.Score)
}

type GameService struct {
	gameStore GameStore
	notifier  Notifier
}

// NewGameService wires the store; notifier may be nil.
func NewGameService(gameStore GameStore, notifier Notifier) *GameService {
	return &GameService{gameStore: gameStore, notifier: notifier}
}

// ListGames returns all games, or those whose title contains title when it is
// not empty.
func (s *GameService) ListGames(ctx context.Context, title string) ([]models.Game, error) {
	return s.gameStore.ListGames(ctx, title)
}

// GetGame returns nil, nil when no game has the slug.
func (s *GameService) GetGame(ctx context.Context, slug string) (*models.Game, error) {
	return s.gameStore.GetGameBySlug(ctx, slug)
}

func (s *GameService) CreateGame(ctx context.Context, in models.NewGame) (*models.Game, error) {
	game := models.Game{
		Title:       string(in.Title),
		Release:     (*string)(in.Release),
		Genre:       (*string)(in.Genre),
		Description: (*string)(in.Description),
		ImageURL:    (*string)(in.ImageURL),
		URLSlug:     GenerateSlug(string(in.Title)),
	}

	id, err := s.gameStore.CreateGame(ctx, game)
	if err != nil {
		return nil, err
	}
	game.ID = id

	if s.notifier != nil {
		s.notifier.GameCreated(&game)
	}
	return &game, nil
}

func (s *GameService) DeleteGame(ctx context.Context, slug string) error {
	if err := s.gameStore.DeleteGameBySlug(ctx, slug); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.GameDeleted(slug)
	}
	return nil
}
