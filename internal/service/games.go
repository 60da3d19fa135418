package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fortuna/boreas/internal/store"
	"github.com/fortuna/boreas/internal/store/repository"
)

// GameService handles game-related read logic for the API
type GameService struct {
	gameRepo  *repository.GameRepository
	eventRepo *repository.EventRepository
	teamRepo  *repository.TeamRepository
}

// NewGameService creates a new game service
func NewGameService(db *store.Database) *GameService {
	return &GameService{
		gameRepo:  repository.NewGameRepository(db),
		eventRepo: repository.NewEventRepository(db),
		teamRepo:  repository.NewTeamRepository(db),
	}
}

// GameSummary is a game with its team rows resolved
type GameSummary struct {
	Game     *store.Game `json:"game"`
	HomeTeam *store.Team `json:"home_team"`
	AwayTeam *store.Team `json:"away_team"`
}

// GetGame retrieves a game by id with team details
func (s *GameService) GetGame(ctx context.Context, gameID int) (*GameSummary, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching game: %w", err)
	}

	return s.summarize(ctx, game)
}

// GetGamesByDate retrieves all games on a specific date
func (s *GameService) GetGamesByDate(ctx context.Context, date time.Time) ([]*GameSummary, error) {
	games, err := s.gameRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetching games by date: %w", err)
	}

	summaries := make([]*GameSummary, 0, len(games))
	for _, game := range games {
		summary, err := s.summarize(ctx, game)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// GetGameEvents retrieves a game's events, optionally filtered by type
func (s *GameService) GetGameEvents(ctx context.Context, gameID int, eventType string) ([]*store.Event, error) {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		return nil, fmt.Errorf("fetching game: %w", err)
	}

	events, err := s.eventRepo.GetByGame(ctx, gameID, eventType)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}

	return events, nil
}

func (s *GameService) summarize(ctx context.Context, game *store.Game) (*GameSummary, error) {
	homeTeam, err := s.teamRepo.GetByID(ctx, game.HomeTeamID)
	if err != nil {
		return nil, fmt.Errorf("fetching home team: %w", err)
	}

	awayTeam, err := s.teamRepo.GetByID(ctx, game.AwayTeamID)
	if err != nil {
		return nil, fmt.Errorf("fetching away team: %w", err)
	}

	return &GameSummary{
		Game:     game,
		HomeTeam: homeTeam,
		AwayTeam: awayTeam,
	}, nil
}
