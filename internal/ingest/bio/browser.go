package bio

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

// MinRequestInterval spaces out headless fetches so a long enrichment
// pass doesn't hammer the site.
const MinRequestInterval = 2 * time.Second

// Browser fetches pages through headless Chrome, with rate limiting.
// Used for profile pages that don't serve full markup to a plain HTTP
// client.
type Browser struct {
	lastRequest time.Time
	interval    time.Duration

	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewBrowser creates a headless Chrome allocator
func NewBrowser() (*Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Browser{
		interval: MinRequestInterval,
		allocCtx: allocCtx,
		cancel:   cancel,
	}, nil
}

// Close releases browser resources
func (b *Browser) Close() {
	if b.cancel != nil {
		b.cancel()
	}
}

// Fetch navigates to the URL and returns the rendered document
func (b *Browser) Fetch(ctx context.Context, url string) (string, error) {
	if !b.lastRequest.IsZero() {
		elapsed := time.Since(b.lastRequest)
		if elapsed < b.interval {
			wait := b.interval - elapsed
			log.Printf("[bio] rate limiting: waiting %v before next fetch", wait)
			time.Sleep(wait)
		}
	}

	html, err := b.fetch(ctx, url)
	b.lastRequest = time.Now()

	return html, err
}

func (b *Browser) fetch(ctx context.Context, url string) (string, error) {
	browserCtx, cancel := chromedp.NewContext(b.allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, 30*time.Second)
	defer cancel()

	var htmlContent string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.OuterHTML(`html`, &htmlContent, chromedp.ByQuery),
	)

	if err != nil {
		return "", fmt.Errorf("chromedp error: %w", err)
	}

	if htmlContent == "" {
		return "", fmt.Errorf("empty HTML content returned")
	}

	return htmlContent, nil
}
