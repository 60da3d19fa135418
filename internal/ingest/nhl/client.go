package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fortuna/boreas/internal/cache"
)

const (
	// ScoreboardBaseURL serves the daily scoreboard as a JSONP document
	ScoreboardBaseURL = "http://www.nhl.com/ice/ajax/GCScoreboardJS"

	// GameDataBaseURL serves per-game play-by-play JSON
	GameDataBaseURL = "http://live.nhl.com/GameData"

	UserAgent = "boreas/1.0 (github.com/fortuna/boreas)"
	Timeout   = 15 * time.Second

	// feedCacheTTL bounds how long raw feed documents are reused across
	// backfill reruns
	feedCacheTTL = 24 * time.Hour
)

// Client fetches the GameCenter scoreboard and play-by-play feeds
type Client struct {
	httpClient     *http.Client
	scoreboardBase string
	gamedataBase   string
	feedCache      *cache.FeedCache
}

// NewClient creates a client against the production feed URLs
func NewClient() *Client {
	return NewClientWithBaseURLs(ScoreboardBaseURL, GameDataBaseURL)
}

// NewClientWithBaseURLs overrides the feed base URLs (useful for tests)
func NewClientWithBaseURLs(scoreboardBase, gamedataBase string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: Timeout,
		},
		scoreboardBase: scoreboardBase,
		gamedataBase:   gamedataBase,
	}
}

// UseCache attaches a feed-document cache consulted before the network
func (c *Client) UseCache(fc *cache.FeedCache) {
	c.feedCache = fc
}

// FetchScoreboard retrieves and parses the scoreboard for a date,
// returning the day's game summaries.
func (c *Client) FetchScoreboard(ctx context.Context, date time.Time) ([]GameSummary, error) {
	url := fmt.Sprintf("%s?today=%s", c.scoreboardBase, date.Format("01/02/2006"))

	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}

	games, err := ParseScoreboard(body)
	if err != nil {
		return nil, fmt.Errorf("parsing scoreboard: %w", err)
	}

	return games, nil
}

// FetchPlayByPlay retrieves the full play-by-play payload for a game and
// extracts the game object at its fixed data.game path.
func (c *Client) FetchPlayByPlay(ctx context.Context, season string, gameID int) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/%s/%d/PlayByPlay.json", c.gamedataBase, season, gameID)

	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching play-by-play: %w", err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding play-by-play: %w", err)
	}

	game := extractMap(extractMap(payload, "data"), "game")
	if len(game) == 0 {
		return nil, fmt.Errorf("play-by-play payload missing data.game for game %d", gameID)
	}

	return game, nil
}

// fetch retrieves one document, via the feed cache when attached
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	if c.feedCache != nil {
		if body, err := c.feedCache.Get(ctx, url); err == nil {
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	if c.feedCache != nil {
		if err := c.feedCache.Set(ctx, url, body, feedCacheTTL); err != nil {
			log.Printf("[nhl-client] feed cache write failed for %s: %v", url, err)
		}
	}

	return body, nil
}
