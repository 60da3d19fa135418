package nhl

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fortuna/boreas/internal/store"
)

// GameSummary is one scoreboard entry; the scoreboard carries more detail
// but the pipeline only needs the game id.
type GameSummary struct {
	ID int
}

// Shots-on-goal counters are only meaningful for these event types; for
// everything else they are stored as NULL even when the feed carries
// values.
const (
	eventTypeGoal = "Goal"
	eventTypeShot = "Shot"
)

// ParseScoreboard unwraps the JSONP scoreboard body and returns the
// day's game summaries.
func ParseScoreboard(body []byte) ([]GameSummary, error) {
	inner, err := unwrapScoreboard(body)
	if err != nil {
		return nil, err
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(inner, &payload); err != nil {
		return nil, fmt.Errorf("decoding scoreboard: %w", err)
	}

	var summaries []GameSummary
	for _, raw := range extractArray(payload, "games") {
		game, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		id := extractInt(game, "id")
		if id == 0 {
			continue
		}
		summaries = append(summaries, GameSummary{ID: id})
	}

	return summaries, nil
}

// BuildGameRecord decomposes one play-by-play game object into the write
// batch for that game: game row, team rows, and every mapped event with
// its association rows. Player ids referenced by events are recorded into
// the roster accumulator as a side effect.
func BuildGameRecord(game map[string]interface{}, gameID int, date time.Time, roster *Roster) (*store.GameRecord, error) {
	awayID := extractInt(game, "awayteamid")
	homeID := extractInt(game, "hometeamid")

	rec := &store.GameRecord{
		Game: &store.Game{
			GameID:     gameID,
			AwayTeamID: awayID,
			HomeTeamID: homeID,
			Date:       date,
		},
		AwayTeam: &store.Team{
			TeamID:   awayID,
			Name:     extractString(game, "awayteamname"),
			Nickname: extractString(game, "awayteamnick"),
		},
		HomeTeam: &store.Team{
			TeamID:   homeID,
			Name:     extractString(game, "hometeamname"),
			Nickname: extractString(game, "hometeamnick"),
		},
	}

	plays := extractArray(extractMap(game, "plays"), "play")
	for i, raw := range plays {
		ev, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("play %d of game %d is not an object", i, gameID)
		}

		mapped, err := mapEvent(gameID, ev, roster)
		if err != nil {
			return nil, fmt.Errorf("mapping play %d of game %d: %w", i, gameID, err)
		}

		rec.Events = append(rec.Events, mapped)
	}

	return rec, nil
}

// mapEvent maps one raw play object to an event row plus its on-ice and
// penalty-box association rows. The conditional rules mirror the feed's
// quirks exactly:
//   - pid, video and altVideo columns are NULL unless the keys exist
//   - hsog/asog are NULL unless the event type is Goal or Shot
//   - an empty g_goalieID means no goalie
//   - the mm:ss clock keeps its format but swaps ":" for "."
func mapEvent(gameID int, ev map[string]interface{}, roster *Roster) (*store.EventRecord, error) {
	if _, ok := ev["eventid"]; !ok {
		return nil, fmt.Errorf("play missing eventid")
	}
	eventID := extractInt(ev, "eventid")
	eventType := extractString(ev, "type")

	evt := &store.Event{
		EventID:       eventID,
		FormalEventID: extractString(ev, "formalEventId"),
		GameID:        gameID,
		Period:        extractInt(ev, "period"),
		Type:          eventType,
		Description:   extractString(ev, "desc"),
		TeamID:        extractInt(ev, "teamid"),
		XCoord:        extractInt(ev, "xcoord"),
		YCoord:        extractInt(ev, "ycoord"),
		HomeScore:     extractInt(ev, "hs"),
		AwayScore:     extractInt(ev, "as"),
		Time:          strings.Replace(extractString(ev, "time"), ":", ".", 1),
	}

	if _, ok := ev["pid"]; ok {
		pid := extractInt(ev, "pid")
		evt.PlayerID = sql.NullInt64{Int64: int64(pid), Valid: true}
		roster.Add(pid)
	}

	if eventType == eventTypeGoal || eventType == eventTypeShot {
		evt.HomeSOG = sql.NullInt32{Int32: int32(extractInt(ev, "hsog")), Valid: true}
		evt.AwaySOG = sql.NullInt32{Int32: int32(extractInt(ev, "asog")), Valid: true}
	}

	if _, ok := ev["video"]; ok {
		evt.VideoURL = sql.NullString{String: extractString(ev, "video"), Valid: true}
	}
	if _, ok := ev["altVideo"]; ok {
		evt.AltVideoURL = sql.NullString{String: extractString(ev, "altVideo"), Valid: true}
	}

	if goalie := extractString(ev, "g_goalieID"); goalie != "" {
		if id, err := strconv.Atoi(goalie); err == nil {
			evt.GoalieID = sql.NullInt64{Int64: int64(id), Valid: true}
		}
	}

	rec := &store.EventRecord{Event: evt}

	sides := []struct {
		key   string
		which string
	}{
		{"aoi", "away"},
		{"hoi", "home"},
	}
	for _, side := range sides {
		for _, raw := range extractArray(ev, side.key) {
			rec.OnIce = append(rec.OnIce, store.EventPlayer{
				GameID:   gameID,
				EventID:  eventID,
				Which:    side.which,
				PlayerID: parseInt(raw),
			})
		}
	}

	boxes := []struct {
		key   string
		which string
	}{
		{"apb", "away"},
		{"hpb", "home"},
	}
	for _, box := range boxes {
		for _, raw := range extractArray(ev, box.key) {
			rec.PenaltyBox = append(rec.PenaltyBox, store.PenaltyBoxEntry{
				GameID:   gameID,
				EventID:  eventID,
				Which:    box.which,
				PlayerID: parseInt(raw),
			})
		}
	}

	return rec, nil
}

func extractString(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func extractInt(m map[string]interface{}, key string) int {
	return parseInt(m[key])
}

func extractMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

func extractArray(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key].([]interface{}); ok {
		return v
	}
	return nil
}

func parseInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return 0
}
