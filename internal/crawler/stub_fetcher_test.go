package crawler

import (
	"context"
	"fmt"

	"github.com/user/company-crawler/internal/entity"
	"github.com/user/company-crawler/internal/repository"
)

// stubFetcher serves canned pages keyed by URL and records every navigation.
type stubFetcher struct {
	pages   map[string]*entity.Page
	fetched []string
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{pages: make(map[string]*entity.Page)}
}

func (f *stubFetcher) add(url, title, bodyText, html string) {
	f.pages[url] = &entity.Page{URL: url, Title: title, BodyText: bodyText, HTML: html}
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) (*entity.Page, error) {
	f.fetched = append(f.fetched, url)
	if page, ok := f.pages[url]; ok {
		return page, nil
	}
	return nil, fmt.Errorf("%w: %s", repository.ErrNavigationFailed, url)
}

func (f *stubFetcher) FetchSettled(ctx context.Context, url string) (*entity.Page, error) {
	return f.Fetch(ctx, url)
}

func (f *stubFetcher) Close() {}
