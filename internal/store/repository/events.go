package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/boreas/internal/store"
)

// EventRepository handles read access to play-by-play events.
// Event writes go through GameRepository.Replace so that a game's row
// graph is always replaced as a unit.
type EventRepository struct {
	db *store.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *store.Database) *EventRepository {
	return &EventRepository{db: db}
}

// GetByGame returns a game's events in event-id order, optionally
// filtered by event type (e.g. "Goal", "Shot", "Penalty").
func (r *EventRepository) GetByGame(ctx context.Context, gameID int, eventType string) ([]*store.Event, error) {
	query := `
		SELECT event_id, formal_event_id, game_id, period, type, description,
			player_id, team_id, xcoord, ycoord, video_url, altvideo_url,
			home_score, away_score, home_sog, away_sog, time, goalie_id
		FROM events
		WHERE game_id = $1
	`
	args := []interface{}{gameID}

	if eventType != "" {
		query += ` AND type = $2`
		args = append(args, eventType)
	}
	query += ` ORDER BY event_id`

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []*store.Event
	for rows.Next() {
		evt := &store.Event{}
		err := rows.Scan(
			&evt.EventID, &evt.FormalEventID, &evt.GameID, &evt.Period,
			&evt.Type, &evt.Description, &evt.PlayerID, &evt.TeamID,
			&evt.XCoord, &evt.YCoord, &evt.VideoURL, &evt.AltVideoURL,
			&evt.HomeScore, &evt.AwayScore, &evt.HomeSOG, &evt.AwaySOG,
			&evt.Time, &evt.GoalieID,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, evt)
	}

	return events, rows.Err()
}

// GetOnIce returns the on-ice association rows for one event
func (r *EventRepository) GetOnIce(ctx context.Context, gameID, eventID int) ([]*store.EventPlayer, error) {
	query := `
		SELECT game_id, event_id, which, player_id
		FROM events_players
		WHERE game_id = $1 AND event_id = $2
		ORDER BY which, player_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, gameID, eventID)
	if err != nil {
		return nil, fmt.Errorf("querying on-ice players: %w", err)
	}
	defer rows.Close()

	var players []*store.EventPlayer
	for rows.Next() {
		ep := &store.EventPlayer{}
		if err := rows.Scan(&ep.GameID, &ep.EventID, &ep.Which, &ep.PlayerID); err != nil {
			return nil, fmt.Errorf("scanning on-ice player: %w", err)
		}
		players = append(players, ep)
	}

	return players, rows.Err()
}

// GetPenaltyBox returns the penalty-box association rows for one event
func (r *EventRepository) GetPenaltyBox(ctx context.Context, gameID, eventID int) ([]*store.PenaltyBoxEntry, error) {
	query := `
		SELECT game_id, event_id, which, player_id
		FROM events_penaltybox
		WHERE game_id = $1 AND event_id = $2
		ORDER BY which, player_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, gameID, eventID)
	if err != nil {
		return nil, fmt.Errorf("querying penalty-box players: %w", err)
	}
	defer rows.Close()

	var entries []*store.PenaltyBoxEntry
	for rows.Next() {
		pb := &store.PenaltyBoxEntry{}
		if err := rows.Scan(&pb.GameID, &pb.EventID, &pb.Which, &pb.PlayerID); err != nil {
			return nil, fmt.Errorf("scanning penalty-box player: %w", err)
		}
		entries = append(entries, pb)
	}

	return entries, rows.Err()
}
