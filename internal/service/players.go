package service

import (
	"context"
	"fmt"

	"github.com/fortuna/boreas/internal/store"
	"github.com/fortuna/boreas/internal/store/repository"
)

// PlayerService handles player-related read logic for the API
type PlayerService struct {
	playerRepo *repository.PlayerRepository
	teamRepo   *repository.TeamRepository
}

// NewPlayerService creates a new player service
func NewPlayerService(db *store.Database) *PlayerService {
	return &PlayerService{
		playerRepo: repository.NewPlayerRepository(db),
		teamRepo:   repository.NewTeamRepository(db),
	}
}

// PlayerDetail is a player with the team row resolved when present
type PlayerDetail struct {
	Player *store.Player `json:"player"`
	Team   *store.Team   `json:"team,omitempty"`
}

// GetPlayer retrieves a player by id with team details
func (s *PlayerService) GetPlayer(ctx context.Context, playerID int) (*PlayerDetail, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching player: %w", err)
	}

	detail := &PlayerDetail{Player: player}

	if player.TeamID.Valid {
		team, err := s.teamRepo.GetByID(ctx, int(player.TeamID.Int64))
		if err == nil {
			detail.Team = team
		}
	}

	return detail, nil
}

// SearchPlayers returns players matching a name fragment
func (s *PlayerService) SearchPlayers(ctx context.Context, query string, limit int) ([]*store.Player, error) {
	players, err := s.playerRepo.SearchByName(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching players: %w", err)
	}

	return players, nil
}
