package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/company-crawler/internal/entity"
	"github.com/user/company-crawler/internal/repository"
	"github.com/user/company-crawler/pkg/utils"
)

// Past the base page budget the adapter keeps expanding while pages still
// yield new links, capped at this multiple of the budget.
const webSearchExpansionFactor = 3

// Result-link selector strategies in priority order. Paid placements sit at
// the top of Naver's markup and are harvested first; the trailing selector is
// the catch-all for layout changes. A strategy that matches nothing is
// simply skipped.
var webSearchSelectors = []string{
	"a.link_ad",
	"div.lst_type a.site",
	"a.link_tit",
	"div.total_tit a",
	"a.total_tit",
	"div.api_txt_lines a",
	"a[href^='http']:not([href*='naver'])",
}

// WebSearchSource discovers candidate URLs from the Naver web-search tab.
type WebSearchSource struct {
	filter *URLFilter
}

func NewWebSearchSource(filter *URLFilter) *WebSearchSource {
	return &WebSearchSource{filter: filter}
}

func (s *WebSearchSource) Name() string { return "naver_web" }

// Discover walks search result pages one at a time, harvesting outbound
// links until the URL-count goal is met or, past the base page budget, a
// page yields nothing new.
func (s *WebSearchSource) Discover(ctx context.Context, fetcher repository.PageFetcher, q SourceQuery) []string {
	seen := make(map[string]struct{})
	var links []string

	start := q.PageStart
	if start < 1 {
		start = 1
	}
	maxPage := q.PageEnd * webSearchExpansionFactor

	for page := start; page <= maxPage; page++ {
		if ctx.Err() != nil {
			break
		}
		if q.URLCountGoal > 0 && len(links) >= q.URLCountGoal {
			break
		}

		searchURL := fmt.Sprintf(
			"https://search.naver.com/search.naver?where=web&query=%s&page=%d",
			url.QueryEscape(q.Keyword), page,
		)
		doc, err := fetchDocument(ctx, fetcher, searchURL)
		if err != nil {
			// A failed page aborts only that page, not the keyword.
			slog.Warn("search page failed", "source", s.Name(), "page", page, "error", err)
			continue
		}

		added := s.harvest(doc, seen, &links)
		slog.Debug("search page harvested", "source", s.Name(), "keyword", q.Keyword, "page", page, "new_links", added)

		if page >= q.PageEnd && added == 0 {
			break
		}
	}

	return links
}

func (s *WebSearchSource) harvest(doc *goquery.Document, seen map[string]struct{}, links *[]string) int {
	added := 0
	for _, selector := range webSearchSelectors {
		doc.Find(selector).Each(func(_ int, a *goquery.Selection) {
			href, ok := a.Attr("href")
			if !ok || !strings.HasPrefix(href, "http") {
				return
			}
			if !s.filter.IsAdmissible(href) {
				return
			}
			key := utils.NormalizeURL(href)
			if _, dup := seen[key]; dup {
				return
			}
			seen[key] = struct{}{}
			*links = append(*links, href)
			added++
		})
	}
	return added
}

func fetchDocument(ctx context.Context, fetcher repository.PageFetcher, url string) (*goquery.Document, error) {
	page, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseDocument(page)
}

func parseDocument(page *entity.Page) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
}
