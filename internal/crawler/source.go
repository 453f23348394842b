package crawler

import (
	"context"

	"github.com/user/company-crawler/internal/repository"
)

// SourceQuery is the input contract to a source adapter.
type SourceQuery struct {
	Keyword      string
	PageStart    int
	PageEnd      int
	URLCountGoal int // 0 = no goal
}

// SourceAdapter turns a keyword into candidate company URLs from one
// external source. Adapters are best-effort: a failed page or an empty
// selector is skipped, never raised, and whatever was found so far is
// returned.
type SourceAdapter interface {
	Name() string
	Discover(ctx context.Context, fetcher repository.PageFetcher, q SourceQuery) []string
}

// DefaultSources returns the enabled adapters in their fixed execution order:
// the generic web search first, then the listing sites.
func DefaultSources(filter *URLFilter) []SourceAdapter {
	return []SourceAdapter{
		NewWebSearchSource(filter),
		NewListingSource(&saraminProfile),
		NewListingSource(&jobkoreaProfile),
	}
}
