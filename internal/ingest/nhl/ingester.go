package nhl

import (
	"context"
	"log"
	"time"

	"github.com/fortuna/boreas/internal/store"
	"github.com/fortuna/boreas/internal/store/repository"
)

// Ingester drives the per-date pipeline: scoreboard, play-by-play fetch,
// and the transactional replacement of each game's row graph. Failures
// are contained at the smallest sensible unit: a bad scoreboard costs one
// date, a bad feed or write costs one game, and the run always continues.
type Ingester struct {
	client   *Client
	db       *store.Database
	gameRepo *repository.GameRepository
	roster   *Roster
	season   string
}

// NewIngester creates an ingester against the production feed URLs
func NewIngester(db *store.Database, season string) *Ingester {
	return NewIngesterWithClient(db, season, NewClient())
}

// NewIngesterWithClient creates an ingester with a caller-supplied feed
// client (useful for tests and for attaching a feed cache).
func NewIngesterWithClient(db *store.Database, season string, client *Client) *Ingester {
	return &Ingester{
		client:   client,
		db:       db,
		gameRepo: repository.NewGameRepository(db),
		roster:   NewRoster(),
		season:   season,
	}
}

// Roster returns the accumulator of player ids seen so far
func (i *Ingester) Roster() *Roster {
	return i.roster
}

// IngestDate processes every game on one date. Returns the number of
// games successfully replaced. Scoreboard failure means zero games for
// the date, never a failed run.
func (i *Ingester) IngestDate(ctx context.Context, date time.Time) int {
	day := date.Format("2006-01-02")

	games, err := i.client.FetchScoreboard(ctx, date)
	if err != nil {
		log.Printf("[ingest] no scoreboard for %s: %v", day, err)
		return 0
	}

	if len(games) == 0 {
		log.Printf("[ingest] no games on %s", day)
		return 0
	}

	processed := 0
	for _, summary := range games {
		if err := i.ingestGame(ctx, summary.ID, date); err != nil {
			log.Printf("[ingest] skipping game %d on %s: %v", summary.ID, day, err)
			continue
		}
		processed++
	}

	log.Printf("[ingest] ✓ Processed %d/%d games for %s", processed, len(games), day)
	return processed
}

func (i *Ingester) ingestGame(ctx context.Context, gameID int, date time.Time) error {
	game, err := i.client.FetchPlayByPlay(ctx, i.season, gameID)
	if err != nil {
		return err
	}

	rec, err := BuildGameRecord(game, gameID, date, i.roster)
	if err != nil {
		return err
	}

	return i.gameRepo.Replace(ctx, rec)
}
