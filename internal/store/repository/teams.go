package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/boreas/internal/store"
)

// TeamRepository handles team data access
type TeamRepository struct {
	db *store.Database
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *store.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetAll returns all known teams
func (r *TeamRepository) GetAll(ctx context.Context) ([]*store.Team, error) {
	query := `
		SELECT team_id, name, nickname
		FROM teams
		ORDER BY name
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []*store.Team
	for rows.Next() {
		team := &store.Team{}
		if err := rows.Scan(&team.TeamID, &team.Name, &team.Nickname); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// GetByID finds a team by its feed-assigned id
func (r *TeamRepository) GetByID(ctx context.Context, teamID int) (*store.Team, error) {
	query := `
		SELECT team_id, name, nickname
		FROM teams
		WHERE team_id = $1
	`

	team := &store.Team{}
	err := r.db.DB().QueryRowContext(ctx, query, teamID).Scan(&team.TeamID, &team.Name, &team.Nickname)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team not found: %d", teamID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return team, nil
}

// GetIDByName resolves a team id by exact display-name match. Returns
// sql.ErrNoRows when the name is unknown; callers treat that as "no team"
// rather than an error.
func (r *TeamRepository) GetIDByName(ctx context.Context, name string) (int, error) {
	query := `SELECT team_id FROM teams WHERE name = $1`

	var teamID int
	err := r.db.DB().QueryRowContext(ctx, query, name).Scan(&teamID)
	if err != nil {
		return 0, err
	}

	return teamID, nil
}
