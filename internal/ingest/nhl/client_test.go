package nhl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchScoreboard(t *testing.T) {
	fixture := loadFixture(t, "scoreboard.js")

	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("today")
		w.Write(fixture)
	}))
	defer server.Close()

	client := NewClientWithBaseURLs(server.URL, server.URL)

	date := time.Date(2012, 1, 2, 0, 0, 0, 0, time.UTC)
	games, err := client.FetchScoreboard(context.Background(), date)
	if err != nil {
		t.Fatalf("FetchScoreboard() error: %v", err)
	}

	if gotQuery != "01/02/2012" {
		t.Errorf("today query = %q, want %q", gotQuery, "01/02/2012")
	}
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}
	if games[0].ID != 2011020001 {
		t.Errorf("games[0].ID = %d, want 2011020001", games[0].ID)
	}
}

func TestFetchScoreboardServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWithBaseURLs(server.URL, server.URL)

	if _, err := client.FetchScoreboard(context.Background(), time.Now()); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestFetchScoreboardMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	client := NewClientWithBaseURLs(server.URL, server.URL)

	if _, err := client.FetchScoreboard(context.Background(), time.Now()); err == nil {
		t.Fatal("expected error for non-JSONP body")
	}
}

func TestFetchPlayByPlay(t *testing.T) {
	fixture := loadFixture(t, "playbyplay.json")

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write(fixture)
	}))
	defer server.Close()

	client := NewClientWithBaseURLs(server.URL, server.URL)

	game, err := client.FetchPlayByPlay(context.Background(), "20112012", 2011020001)
	if err != nil {
		t.Fatalf("FetchPlayByPlay() error: %v", err)
	}

	if gotPath != "/20112012/2011020001/PlayByPlay.json" {
		t.Errorf("request path = %q, want %q", gotPath, "/20112012/2011020001/PlayByPlay.json")
	}
	if got := extractInt(game, "awayteamid"); got != 10 {
		t.Errorf("awayteamid = %d, want 10", got)
	}

	plays := extractArray(extractMap(game, "plays"), "play")
	if len(plays) != 3 {
		t.Errorf("got %d plays, want 3", len(plays))
	}
}

func TestFetchPlayByPlayMissingGame(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURLs(server.URL, server.URL)

	if _, err := client.FetchPlayByPlay(context.Background(), "20112012", 1); err == nil {
		t.Fatal("expected error when data.game is absent")
	}
}

func TestFetchPlayByPlayEndToEnd(t *testing.T) {
	fixture := loadFixture(t, "playbyplay.json")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(fixture)
	}))
	defer server.Close()

	client := NewClientWithBaseURLs(server.URL, server.URL)

	game, err := client.FetchPlayByPlay(context.Background(), "20112012", 2011020001)
	if err != nil {
		t.Fatalf("FetchPlayByPlay() error: %v", err)
	}

	roster := NewRoster()
	date := time.Date(2012, 1, 15, 0, 0, 0, 0, time.UTC)
	rec, err := BuildGameRecord(game, 2011020001, date, roster)
	if err != nil {
		t.Fatalf("BuildGameRecord() error: %v", err)
	}

	if len(rec.Events) != 3 {
		t.Fatalf("got %d events, want 3", len(rec.Events))
	}

	// the fixture's second play is a penalty carrying sog values
	penalty := rec.Events[1]
	if penalty.Event.Type != "Penalty" {
		t.Fatalf("events[1].Type = %q, want Penalty", penalty.Event.Type)
	}
	if penalty.Event.HomeSOG.Valid || penalty.Event.AwaySOG.Valid {
		t.Error("penalty shot counters should be NULL")
	}
	if penalty.Event.GoalieID.Valid {
		t.Error("empty g_goalieID should map to NULL")
	}
	if penalty.Event.Time != "06.02" {
		t.Errorf("penalty Time = %q, want 06.02", penalty.Event.Time)
	}

	goal := rec.Events[2]
	if !goal.Event.AltVideoURL.Valid {
		t.Error("goal altVideo should be set")
	}
	if !goal.Event.GoalieID.Valid || goal.Event.GoalieID.Int64 != 404 {
		t.Errorf("goal GoalieID = %+v, want 404", goal.Event.GoalieID)
	}

	if got := roster.IDs(); len(got) != 2 || got[0] != 101 || got[1] != 102 {
		t.Errorf("roster = %v, want [101 102]", got)
	}
}
