package bio

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	// ProfileBaseURL serves the player biography page as HTML
	ProfileBaseURL = "http://www.nhl.com/ice/player.htm"

	UserAgent = "boreas/1.0 (github.com/fortuna/boreas)"
	Timeout   = 30 * time.Second
)

// Client fetches player profile pages. A plain HTTP fetch is tried
// first; when a headless browser is attached it serves as the fallback
// for pages the static client cannot retrieve.
type Client struct {
	httpClient *http.Client
	baseURL    string
	browser    *Browser
}

// NewClient creates a client against the production profile URL
func NewClient() *Client {
	return NewClientWithBaseURL(ProfileBaseURL)
}

// NewClientWithBaseURL overrides the profile base URL (useful for tests)
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: Timeout,
		},
		baseURL: baseURL,
	}
}

// EnableBrowser attaches a headless-browser fallback fetcher
func (c *Client) EnableBrowser() error {
	browser, err := NewBrowser()
	if err != nil {
		return fmt.Errorf("starting headless browser: %w", err)
	}
	c.browser = browser
	return nil
}

// Close releases the headless browser, if one was attached
func (c *Client) Close() {
	if c.browser != nil {
		c.browser.Close()
	}
}

// FetchProfile retrieves the biography page for a player
func (c *Client) FetchProfile(ctx context.Context, playerID int) (string, error) {
	url := fmt.Sprintf("%s?id=%d", c.baseURL, playerID)

	html, err := c.fetchStatic(ctx, url)
	if err != nil && c.browser != nil {
		log.Printf("[bio] static fetch failed for player %d, falling back to browser: %v", playerID, err)
		return c.browser.Fetch(ctx, url)
	}

	return html, err
}

func (c *Client) fetchStatic(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}

	if len(body) == 0 {
		return "", fmt.Errorf("empty profile body for %s", url)
	}

	return string(body), nil
}
