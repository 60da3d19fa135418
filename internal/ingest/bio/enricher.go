package bio

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fortuna/boreas/internal/store"
	"github.com/fortuna/boreas/internal/store/repository"
)

// Enricher fills in player biography rows for the ids collected during
// event processing. Each player is an independent unit of work: a page
// that is missing or structurally unrecognizable is skipped and the pass
// moves on.
type Enricher struct {
	client     *Client
	teamRepo   *repository.TeamRepository
	playerRepo *repository.PlayerRepository
}

// NewEnricher creates an enricher against the production profile URL
func NewEnricher(db *store.Database) *Enricher {
	return NewEnricherWithClient(db, NewClient())
}

// NewEnricherWithClient creates an enricher with a caller-supplied
// profile client (useful for tests and the browser fallback).
func NewEnricherWithClient(db *store.Database, client *Client) *Enricher {
	return &Enricher{
		client:     client,
		teamRepo:   repository.NewTeamRepository(db),
		playerRepo: repository.NewPlayerRepository(db),
	}
}

// Close releases client resources
func (e *Enricher) Close() {
	e.client.Close()
}

// EnrichAll processes every roster id in order, logging and skipping
// failures. Returns the number of players written.
func (e *Enricher) EnrichAll(ctx context.Context, playerIDs []int) int {
	enriched := 0
	for _, playerID := range playerIDs {
		if err := e.EnrichPlayer(ctx, playerID); err != nil {
			log.Printf("[bio] skipping player %d: %v", playerID, err)
			continue
		}
		enriched++
	}

	log.Printf("[bio] ✓ Enriched %d/%d players", enriched, len(playerIDs))
	return enriched
}

// EnrichPlayer fetches, parses and replaces one player row. The team
// name is resolved against existing teams by exact name; no match means
// a NULL team reference, never a new team row.
func (e *Enricher) EnrichPlayer(ctx context.Context, playerID int) error {
	html, err := e.client.FetchProfile(ctx, playerID)
	if err != nil {
		return err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("parsing profile HTML: %w", err)
	}

	profile, err := ParseProfile(doc)
	if err != nil {
		return err
	}

	player := &store.Player{
		PlayerID: playerID,
		Name:     profile.Name,
	}

	teamID, err := e.teamRepo.GetIDByName(ctx, profile.TeamName)
	if err == nil {
		player.TeamID = sql.NullInt64{Int64: int64(teamID), Valid: true}
	} else if err != sql.ErrNoRows {
		return fmt.Errorf("resolving team %q: %w", profile.TeamName, err)
	}

	if profile.Height != "" {
		player.Height = sql.NullString{String: profile.Height, Valid: true}
	}
	if profile.HeightInches != nil {
		player.HeightInches = sql.NullInt32{Int32: int32(*profile.HeightInches), Valid: true}
	}
	if profile.Weight != nil {
		player.Weight = sql.NullInt32{Int32: int32(*profile.Weight), Valid: true}
	}
	if profile.DOB != nil {
		player.DOB = sql.NullTime{Time: *profile.DOB, Valid: true}
	}

	return e.playerRepo.Replace(ctx, player)
}
