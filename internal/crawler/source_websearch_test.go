package crawler

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchPageURL(keyword string, page int) string {
	return fmt.Sprintf(
		"https://search.naver.com/search.naver?where=web&query=%s&page=%d",
		url.QueryEscape(keyword), page,
	)
}

func TestWebSearchDiscoverHarvestsAndFilters(t *testing.T) {
	fetcher := newStubFetcher()
	fetcher.add(searchPageURL("금형 제조업체", 1), "검색결과", "", `
		<html><body>
		<a class="link_tit" href="http://acme-mold.co.kr">에이스금형</a>
		<div class="total_tit"><a href="http://daehan-precision.kr/">대한정밀</a></div>
		<a class="link_tit" href="https://blog.naver.com/somepost">블로그 글</a>
		<a class="link_tit" href="http://acme-mold.co.kr/?ref=serp">에이스금형 (중복)</a>
		<a class="link_tit" href="/relative/path">상대 링크</a>
		</body></html>`)

	source := NewWebSearchSource(NewURLFilter(true))
	links := source.Discover(context.Background(), fetcher, SourceQuery{
		Keyword: "금형 제조업체", PageStart: 1, PageEnd: 1,
	})

	// Blog/naver filtered, query-string variant deduplicated, relative
	// link ignored.
	assert.ElementsMatch(t, []string{
		"http://acme-mold.co.kr",
		"http://daehan-precision.kr/",
	}, links)
}

func TestWebSearchExpansionStopsOnEmptyPage(t *testing.T) {
	fetcher := newStubFetcher()
	fetcher.add(searchPageURL("금형", 1), "p1", "", `<a class="link_tit" href="http://acme-mold.co.kr">a</a>`)
	// Page 2 repeats page 1: past the base budget a page with no new links
	// ends the expansion before page 3.
	fetcher.add(searchPageURL("금형", 2), "p2", "", `<a class="link_tit" href="http://acme-mold.co.kr">a</a>`)
	fetcher.add(searchPageURL("금형", 3), "p3", "", `<a class="link_tit" href="http://other-mold.co.kr">b</a>`)

	source := NewWebSearchSource(NewURLFilter(true))
	links := source.Discover(context.Background(), fetcher, SourceQuery{
		Keyword: "금형", PageStart: 1, PageEnd: 1,
	})

	require.Equal(t, []string{"http://acme-mold.co.kr"}, links)
	assert.Len(t, fetcher.fetched, 2)
}

func TestWebSearchExpansionCappedAtTripleBudget(t *testing.T) {
	fetcher := newStubFetcher()
	// Every page yields a fresh link, so only the hard cap stops expansion.
	for page := 1; page <= 10; page++ {
		fetcher.add(searchPageURL("금형", page), "p", "",
			fmt.Sprintf(`<a class="link_tit" href="http://company%d.co.kr">c</a>`, page))
	}

	source := NewWebSearchSource(NewURLFilter(true))
	links := source.Discover(context.Background(), fetcher, SourceQuery{
		Keyword: "금형", PageStart: 1, PageEnd: 2,
	})

	assert.Len(t, fetcher.fetched, 2*webSearchExpansionFactor)
	assert.Len(t, links, 2*webSearchExpansionFactor)
}

func TestWebSearchStopsAtURLCountGoal(t *testing.T) {
	fetcher := newStubFetcher()
	fetcher.add(searchPageURL("금형", 1), "p1", "", `
		<a class="link_tit" href="http://a.co.kr">a</a>
		<a class="link_tit" href="http://b.co.kr">b</a>`)
	fetcher.add(searchPageURL("금형", 2), "p2", "", `<a class="link_tit" href="http://c.co.kr">c</a>`)

	source := NewWebSearchSource(NewURLFilter(true))
	links := source.Discover(context.Background(), fetcher, SourceQuery{
		Keyword: "금형", PageStart: 1, PageEnd: 2, URLCountGoal: 2,
	})

	assert.Len(t, links, 2)
	assert.Len(t, fetcher.fetched, 1)
}

func TestWebSearchPageFailureSkipsOnlyThatPage(t *testing.T) {
	fetcher := newStubFetcher()
	// Page 1 missing from the stub: navigation fails, page 2 still runs.
	fetcher.add(searchPageURL("금형", 2), "p2", "", `<a class="link_tit" href="http://acme-mold.co.kr">a</a>`)

	source := NewWebSearchSource(NewURLFilter(true))
	links := source.Discover(context.Background(), fetcher, SourceQuery{
		Keyword: "금형", PageStart: 1, PageEnd: 2,
	})

	assert.Equal(t, []string{"http://acme-mold.co.kr"}, links)
}
