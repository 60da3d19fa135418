package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fortuna/boreas/internal/store"
)

// GameRepository handles game data access, including the transactional
// replacement of a game's full row graph during ingestion.
type GameRepository struct {
	db *store.Database
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *store.Database) *GameRepository {
	return &GameRepository{db: db}
}

// Replace writes a fully parsed game batch inside a single transaction.
// Reprocessing a game is idempotent: the previous row graph is deleted
// first (associations, then events, then the game row) and the new one
// inserted in dependency order (teams, game, events, associations). A
// failure anywhere rolls the whole game back, so a partial replacement
// never persists.
func (r *GameRepository) Replace(ctx context.Context, rec *store.GameRecord) error {
	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	gameID := rec.Game.GameID

	deletes := []string{
		`DELETE FROM events_players WHERE game_id = $1`,
		`DELETE FROM events_penaltybox WHERE game_id = $1`,
		`DELETE FROM events WHERE game_id = $1`,
		`DELETE FROM games WHERE game_id = $1`,
	}
	for _, query := range deletes {
		if _, err := tx.ExecContext(ctx, query, gameID); err != nil {
			return fmt.Errorf("clearing game %d: %w", gameID, err)
		}
	}

	if err := r.ensureTeam(ctx, tx, rec.AwayTeam); err != nil {
		return fmt.Errorf("ensuring away team: %w", err)
	}
	if err := r.ensureTeam(ctx, tx, rec.HomeTeam); err != nil {
		return fmt.Errorf("ensuring home team: %w", err)
	}

	insertGame := `
		INSERT INTO games (game_id, away_team_id, home_team_id, date)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := tx.ExecContext(ctx, insertGame,
		gameID, rec.Game.AwayTeamID, rec.Game.HomeTeamID, rec.Game.Date); err != nil {
		return fmt.Errorf("inserting game %d: %w", gameID, err)
	}

	for _, evt := range rec.Events {
		if err := r.insertEvent(ctx, tx, evt); err != nil {
			return fmt.Errorf("inserting event %d: %w", evt.Event.EventID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing game %d: %w", gameID, err)
	}

	return nil
}

// ensureTeam inserts the team row if the id is not yet known. Existing
// rows are left untouched.
func (r *GameRepository) ensureTeam(ctx context.Context, tx *sql.Tx, team *store.Team) error {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM teams WHERE team_id = $1)`, team.TeamID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking team %d: %w", team.TeamID, err)
	}
	if exists {
		return nil
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO teams (team_id, name, nickname) VALUES ($1, $2, $3)`,
		team.TeamID, team.Name, team.Nickname)
	if err != nil {
		return fmt.Errorf("inserting team %d: %w", team.TeamID, err)
	}

	return nil
}

func (r *GameRepository) insertEvent(ctx context.Context, tx *sql.Tx, rec *store.EventRecord) error {
	evt := rec.Event

	query := `
		INSERT INTO events (event_id, formal_event_id, game_id, period, type,
			description, player_id, team_id, xcoord, ycoord, video_url,
			altvideo_url, home_score, away_score, home_sog, away_sog, time,
			goalie_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18)
	`
	if _, err := tx.ExecContext(ctx, query,
		evt.EventID, evt.FormalEventID, evt.GameID, evt.Period, evt.Type,
		evt.Description, evt.PlayerID, evt.TeamID, evt.XCoord, evt.YCoord,
		evt.VideoURL, evt.AltVideoURL, evt.HomeScore, evt.AwayScore,
		evt.HomeSOG, evt.AwaySOG, evt.Time, evt.GoalieID); err != nil {
		return err
	}

	for _, onIce := range rec.OnIce {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO events_players (game_id, event_id, which, player_id) VALUES ($1, $2, $3, $4)`,
			onIce.GameID, onIce.EventID, onIce.Which, onIce.PlayerID)
		if err != nil {
			return fmt.Errorf("inserting on-ice player %d: %w", onIce.PlayerID, err)
		}
	}

	for _, pb := range rec.PenaltyBox {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO events_penaltybox (game_id, event_id, which, player_id) VALUES ($1, $2, $3, $4)`,
			pb.GameID, pb.EventID, pb.Which, pb.PlayerID)
		if err != nil {
			return fmt.Errorf("inserting penalty-box player %d: %w", pb.PlayerID, err)
		}
	}

	return nil
}

// GetByID finds a game by its feed-assigned id
func (r *GameRepository) GetByID(ctx context.Context, gameID int) (*store.Game, error) {
	query := `
		SELECT game_id, away_team_id, home_team_id, date
		FROM games
		WHERE game_id = $1
	`

	game := &store.Game{}
	err := r.db.DB().QueryRowContext(ctx, query, gameID).Scan(
		&game.GameID, &game.AwayTeamID, &game.HomeTeamID, &game.Date,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game not found: %d", gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying game: %w", err)
	}

	return game, nil
}

// GetByDate returns all games on a specific date
func (r *GameRepository) GetByDate(ctx context.Context, date time.Time) ([]*store.Game, error) {
	startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	query := `
		SELECT game_id, away_team_id, home_team_id, date
		FROM games
		WHERE date >= $1 AND date < $2
		ORDER BY game_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, startOfDay, endOfDay)
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	var games []*store.Game
	for rows.Next() {
		game := &store.Game{}
		if err := rows.Scan(&game.GameID, &game.AwayTeamID, &game.HomeTeamID, &game.Date); err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, game)
	}

	return games, rows.Err()
}
