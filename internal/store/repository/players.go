package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/boreas/internal/store"
)

// PlayerRepository handles player data access
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Replace swaps in a freshly enriched player row. Same idempotent
// delete-then-insert contract as game replacement, scoped to one row.
func (r *PlayerRepository) Replace(ctx context.Context, player *store.Player) error {
	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM players WHERE player_id = $1`, player.PlayerID); err != nil {
		return fmt.Errorf("clearing player %d: %w", player.PlayerID, err)
	}

	query := `
		INSERT INTO players (player_id, team_id, name, height, height_inches, weight, dob)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := tx.ExecContext(ctx, query,
		player.PlayerID, player.TeamID, player.Name, player.Height,
		player.HeightInches, player.Weight, player.DOB); err != nil {
		return fmt.Errorf("inserting player %d: %w", player.PlayerID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing player %d: %w", player.PlayerID, err)
	}

	return nil
}

// GetByID finds a player by id
func (r *PlayerRepository) GetByID(ctx context.Context, playerID int) (*store.Player, error) {
	query := `
		SELECT player_id, team_id, name, height, height_inches, weight, dob
		FROM players
		WHERE player_id = $1
	`

	player := &store.Player{}
	err := r.db.DB().QueryRowContext(ctx, query, playerID).Scan(
		&player.PlayerID, &player.TeamID, &player.Name, &player.Height,
		&player.HeightInches, &player.Weight, &player.DOB,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("player not found: %d", playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	return player, nil
}

// SearchByName returns players whose name contains the query string
func (r *PlayerRepository) SearchByName(ctx context.Context, name string, limit int) ([]*store.Player, error) {
	query := `
		SELECT player_id, team_id, name, height, height_inches, weight, dob
		FROM players
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2
	`

	rows, err := r.db.DB().QueryContext(ctx, query, name, limit)
	if err != nil {
		return nil, fmt.Errorf("searching players: %w", err)
	}
	defer rows.Close()

	var players []*store.Player
	for rows.Next() {
		player := &store.Player{}
		err := rows.Scan(
			&player.PlayerID, &player.TeamID, &player.Name, &player.Height,
			&player.HeightInches, &player.Weight, &player.DOB,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, player)
	}

	return players, rows.Err()
}
