package repository

import (
	"context"
	"time"
)

// VisitedRepository remembers candidate URLs processed by recent runs so
// repeated runs over the same keywords do not re-crawl the same sites.
// Optional: a nil repository disables the cache.
type VisitedRepository interface {
	// MarkVisited marks a URL as processed with a specific expiry time.
	MarkVisited(ctx context.Context, url string, expiry time.Duration) error
	// IsVisited checks if a URL has been processed recently.
	IsVisited(ctx context.Context, url string) (bool, error)
}
