package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/company-crawler/internal/repository"
	"github.com/user/company-crawler/pkg/utils"
)

// ListingProfile describes one listing site's search and company-detail page
// shape. The DOM of these sites is unstable, so detail links are recovered by
// several fallback strategies and the union of their findings is kept.
type ListingProfile struct {
	SiteName      string
	SearchURL     string // two verbs: escaped keyword, page number
	DetailAnchor  string // strategy 1: direct anchor selector
	DetailLabel   string // strategy 2: labeled button/link text
	ItemSelector  string // strategy 3: per-result item scope
	ItemAnchor    string // anchor within one result item
	DetailURLMark string // substring identifying a company detail URL
	HomepageLabel string // field label for the homepage link on detail pages
	NameSelector  string // company name on the detail page
}

var saraminProfile = ListingProfile{
	SiteName:      "saramin",
	SearchURL:     "https://www.saramin.co.kr/zf_user/search/company?searchword=%s&recruitPage=%d",
	DetailAnchor:  "a[href*='/zf_user/company-info/view']",
	DetailLabel:   "기업정보",
	ItemSelector:  ".item_corp",
	ItemAnchor:    ".corp_name a",
	DetailURLMark: "saramin.co.kr/zf_user/company-info/view",
	HomepageLabel: "홈페이지",
	NameSelector:  ".company_details .name, .title_area .corp_name",
}

var jobkoreaProfile = ListingProfile{
	SiteName:      "jobkorea",
	SearchURL:     "https://www.jobkorea.co.kr/Search/?stext=%s&tabType=corp&Page_No=%d",
	DetailAnchor:  "a[href*='/company/']",
	DetailLabel:   "기업정보",
	ItemSelector:  ".corp-info-item",
	ItemAnchor:    "a.name",
	DetailURLMark: "jobkorea.co.kr/company/",
	HomepageLabel: "홈페이지",
	NameSelector:  ".company-header .name, .coInfo .coName",
}

var listingProfiles = []*ListingProfile{&saraminProfile, &jobkoreaProfile}

// ListingDetailProfile reports the profile owning rawURL when it points at a
// company detail page, signalling the extraction pipeline to attempt the
// homepage hop.
func ListingDetailProfile(rawURL string) (*ListingProfile, bool) {
	lower := strings.ToLower(rawURL)
	for _, p := range listingProfiles {
		if strings.Contains(lower, strings.ToLower(p.DetailURLMark)) {
			return p, true
		}
	}
	return nil, false
}

// ListingSource discovers company-detail links from one listing site.
type ListingSource struct {
	profile *ListingProfile
}

func NewListingSource(profile *ListingProfile) *ListingSource {
	return &ListingSource{profile: profile}
}

func (s *ListingSource) Name() string { return s.profile.SiteName }

// Discover walks the site's company search pages and collects detail-page
// links through every strategy, deduplicating by normalized link.
func (s *ListingSource) Discover(ctx context.Context, fetcher repository.PageFetcher, q SourceQuery) []string {
	seen := make(map[string]struct{})
	var links []string

	start := q.PageStart
	if start < 1 {
		start = 1
	}

	for page := start; page <= q.PageEnd; page++ {
		if ctx.Err() != nil {
			break
		}
		if q.URLCountGoal > 0 && len(links) >= q.URLCountGoal {
			break
		}

		searchURL := fmt.Sprintf(s.profile.SearchURL, url.QueryEscape(q.Keyword), page)
		doc, err := fetchDocument(ctx, fetcher, searchURL)
		if err != nil {
			slog.Warn("listing page failed", "source", s.Name(), "page", page, "error", err)
			continue
		}

		base, _ := url.Parse(searchURL)
		for _, href := range s.detailLinks(doc) {
			abs := href
			if base != nil {
				if resolved, err := utils.ToAbsoluteURL(base, href); err == nil {
					abs = resolved
				}
			}
			key := utils.NormalizeURL(abs)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			links = append(links, abs)
		}
	}

	return links
}

// detailLinks applies the fallback strategies in order and returns the union
// of their findings. An empty strategy result is not an error.
func (s *ListingSource) detailLinks(doc *goquery.Document) []string {
	var hrefs []string

	// Strategy 1: anchors matching the detail-URL shape directly.
	doc.Find(s.profile.DetailAnchor).Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	})

	// Strategy 2: links labeled with the site's detail-button text.
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		if !strings.Contains(strings.TrimSpace(a.Text()), s.profile.DetailLabel) {
			return
		}
		if href, ok := a.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	})

	// Strategy 3: the first anchor scoped inside each result item.
	doc.Find(s.profile.ItemSelector).Each(func(_ int, item *goquery.Selection) {
		if href, ok := item.Find(s.profile.ItemAnchor).First().Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	})

	return hrefs
}
