package store

import (
	"database/sql"
	"time"
)

// Team represents an NHL franchise as carried by the GameCenter feed.
// Rows are created lazily the first time a game references the team and
// never updated afterwards.
type Team struct {
	TeamID   int    `json:"team_id" db:"team_id"`
	Name     string `json:"name" db:"name"`
	Nickname string `json:"nickname" db:"nickname"`
}

// Game represents one NHL game on a given date
type Game struct {
	GameID     int       `json:"game_id" db:"game_id"`
	AwayTeamID int       `json:"away_team_id" db:"away_team_id"`
	HomeTeamID int       `json:"home_team_id" db:"home_team_id"`
	Date       time.Time `json:"date" db:"date"`
}

// Event represents one play-by-play entry. Event ids are unique within a
// game, so the pair (game_id, event_id) is the natural key.
type Event struct {
	EventID       int            `json:"event_id" db:"event_id"`
	FormalEventID string         `json:"formal_event_id" db:"formal_event_id"`
	GameID        int            `json:"game_id" db:"game_id"`
	Period        int            `json:"period" db:"period"`
	Type          string         `json:"type" db:"type"`
	Description   string         `json:"description" db:"description"`
	PlayerID      sql.NullInt64  `json:"player_id,omitempty" db:"player_id"`
	TeamID        int            `json:"team_id" db:"team_id"`
	XCoord        int            `json:"xcoord" db:"xcoord"`
	YCoord        int            `json:"ycoord" db:"ycoord"`
	VideoURL      sql.NullString `json:"video_url,omitempty" db:"video_url"`
	AltVideoURL   sql.NullString `json:"altvideo_url,omitempty" db:"altvideo_url"`
	HomeScore     int            `json:"home_score" db:"home_score"`
	AwayScore     int            `json:"away_score" db:"away_score"`
	HomeSOG       sql.NullInt32  `json:"home_sog,omitempty" db:"home_sog"`
	AwaySOG       sql.NullInt32  `json:"away_sog,omitempty" db:"away_sog"`
	Time          string         `json:"time" db:"time"`
	GoalieID      sql.NullInt64  `json:"goalie_id,omitempty" db:"goalie_id"`
}

// EventPlayer records a player on the ice during an event.
// Which is "home" or "away".
type EventPlayer struct {
	GameID   int    `json:"game_id" db:"game_id"`
	EventID  int    `json:"event_id" db:"event_id"`
	Which    string `json:"which" db:"which"`
	PlayerID int    `json:"player_id" db:"player_id"`
}

// PenaltyBoxEntry records a player serving a penalty during an event
type PenaltyBoxEntry struct {
	GameID   int    `json:"game_id" db:"game_id"`
	EventID  int    `json:"event_id" db:"event_id"`
	Which    string `json:"which" db:"which"`
	PlayerID int    `json:"player_id" db:"player_id"`
}

// Player represents a player enriched from the nhl.com profile page.
// Height keeps the raw scraped token verbatim; HeightInches is the
// normalized value and is NULL whenever the token did not parse.
type Player struct {
	PlayerID     int            `json:"player_id" db:"player_id"`
	TeamID       sql.NullInt64  `json:"team_id,omitempty" db:"team_id"`
	Name         string         `json:"name" db:"name"`
	Height       sql.NullString `json:"height,omitempty" db:"height"`
	HeightInches sql.NullInt32  `json:"height_inches,omitempty" db:"height_inches"`
	Weight       sql.NullInt32  `json:"weight,omitempty" db:"weight"`
	DOB          sql.NullTime   `json:"dob,omitempty" db:"dob"`
}

// EventRecord bundles one mapped event with its association rows so the
// whole batch can be written inside a single transaction.
type EventRecord struct {
	Event      *Event
	OnIce      []EventPlayer
	PenaltyBox []PenaltyBoxEntry
}

// GameRecord is the fully parsed write batch for one game: the game row,
// the teams it references, and every event with its associations.
// GameRepository.Replace consumes it atomically.
type GameRecord struct {
	Game     *Game
	HomeTeam *Team
	AwayTeam *Team
	Events   []*EventRecord
}
