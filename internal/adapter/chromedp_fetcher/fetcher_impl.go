package chromedp_fetcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/user/company-crawler/internal/entity"
	"github.com/user/company-crawler/internal/repository"
)

// Bot-detection avoidance: present a plain desktop Chrome identity.
const userAgent = `Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36`

// Fetcher implements repository.PageFetcher on top of a single headless
// Chrome instance. The instance is exclusively owned by one crawl run.
type Fetcher struct {
	browserCtx    context.Context
	browserCancel context.CancelFunc
	allocCancel   context.CancelFunc
	timeout       time.Duration
	settle        time.Duration
}

// New starts a headless browser. An error here is fatal for the run that
// requested it; there is no retry.
func New(pageLoadTimeout, settle time.Duration) (repository.PageFetcher, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so a broken Chrome install surfaces now
	// instead of on the first navigation.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return &Fetcher{
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		allocCancel:   allocCancel,
		timeout:       pageLoadTimeout,
		settle:        settle,
	}, nil
}

// Fetch navigates to url and returns the loaded document.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*entity.Page, error) {
	return f.fetch(ctx, url, false)
}

// FetchSettled navigates, scrolls to the bottom and waits again before
// reading the document, so lazily rendered footers are captured.
func (f *Fetcher) FetchSettled(ctx context.Context, url string) (*entity.Page, error) {
	return f.fetch(ctx, url, true)
}

func (f *Fetcher) fetch(ctx context.Context, url string, scroll bool) (*entity.Page, error) {
	// An in-flight navigation is never interrupted; callers cancel between
	// fetches, so only check on entry.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	taskCtx, cancel := context.WithTimeout(f.browserCtx, f.timeout)
	defer cancel()

	actions := []chromedp.Action{
		chromedp.Navigate(url),
		chromedp.Sleep(f.settle),
	}
	if scroll {
		actions = append(actions,
			chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
			chromedp.Sleep(f.settle),
		)
	}

	var title, bodyText, html string
	actions = append(actions,
		chromedp.Title(&title),
		chromedp.Text("body", &bodyText, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html),
	)

	if err := chromedp.Run(taskCtx, actions...); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repository.ErrNavigationFailed, url, err)
	}

	return &entity.Page{
		URL:      url,
		Title:    strings.TrimSpace(title),
		BodyText: bodyText,
		HTML:     html,
	}, nil
}

// Close shuts the browser down. Safe to call exactly once per instance.
func (f *Fetcher) Close() {
	f.browserCancel()
	f.allocCancel()
}
