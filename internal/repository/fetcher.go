package repository

import (
	"context"
	"errors"

	"github.com/user/company-crawler/internal/entity"
)

var (
	// ErrNavigationFailed wraps page-load failures. Per-candidate, never fatal.
	ErrNavigationFailed = errors.New("page navigation failed")
)

// PageFetcher is the page-fetch capability used by source adapters and the
// extraction pipeline. One instance is exclusively owned by a single run and
// must be released with Close on every exit path.
type PageFetcher interface {
	// Fetch navigates to url, waits for the page to settle and returns the
	// loaded document. Not interruptible mid-navigation; cancellation is
	// honored between fetches.
	Fetch(ctx context.Context, url string) (*entity.Page, error)
	// FetchSettled additionally scrolls to the bottom of the page and waits
	// again, so lazily rendered footer content is present in the document.
	FetchSettled(ctx context.Context, url string) (*entity.Page, error)
	// Close releases the underlying browser.
	Close()
}

// FetcherFactory creates the page-fetch capability for one run.
// Initialization failure is the only fatal error a run can hit.
type FetcherFactory func() (PageFetcher, error)
