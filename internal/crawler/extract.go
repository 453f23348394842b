package crawler

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/company-crawler/internal/entity"
	"github.com/user/company-crawler/internal/repository"
	"github.com/user/company-crawler/pkg/utils"
)

// Hosts that an external link on a listing detail page never resolves to a
// company homepage.
var nonCompanyHosts = []string{
	"saramin", "jobkorea", "incruit", "wanted",
	"naver.", "daum.", "kakao", "google.",
	"facebook", "instagram", "youtube", "twitter", "linkedin",
	"play.google", "apps.apple",
}

// Footer-region candidates tried in order on a settled homepage.
var footerSelectors = []string{"footer", "#footer", ".footer", "#foot", ".foot"}

// Extractor is the heuristic pipeline turning one candidate URL into a
// CompanyRecord. Every step is best-effort: an unmatched pattern leaves its
// field empty, and a failed fetch degrades to a record carrying only the URL.
type Extractor struct{}

func NewExtractor() *Extractor { return &Extractor{} }

// Extract fetches rawURL and populates a record. For listing-site detail
// pages it first reads the site's own markup, then attempts the homepage hop
// and prefers footer-region text of the resolved homepage for contact
// extraction.
func (e *Extractor) Extract(ctx context.Context, fetcher repository.PageFetcher, rawURL string) *entity.CompanyRecord {
	record := &entity.CompanyRecord{URL: rawURL}

	page, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		slog.Warn("page load failed", "url", rawURL, "error", err)
		return record
	}
	record.SiteTitle = page.Title

	// Texts to run the rule tables against, most specific first.
	texts := []string{page.BodyText}

	if profile, ok := ListingDetailProfile(rawURL); ok {
		e.applyListingSelectors(page, profile, record)

		if homepage := resolveHomepage(page, profile); homepage != "" {
			settled, err := fetcher.FetchSettled(ctx, homepage)
			if err != nil {
				slog.Warn("homepage fetch failed", "url", homepage, "error", err)
			} else {
				record.URL = homepage
				record.SiteTitle = settled.Title
				texts = []string{footerText(settled), settled.BodyText}
			}
		}
	}

	record.Email = extractEmailsTexts(texts)
	// Fields already populated from listing markup skip the generic rules.
	if record.CompanyName == "" {
		record.CompanyName = firstMatchTexts(companyNameRules, texts)
	}
	if record.CEOName == "" {
		record.CEOName = firstMatchTexts(ceoNameRules, texts)
	}
	if record.Address == "" {
		record.Address = truncateAddress(firstMatchTexts(addressRules, texts))
	}

	return record
}

// applyListingSelectors reads fields from the listing site's own markup:
// the company-name heading plus the label/value pairs of the info table.
func (e *Extractor) applyListingSelectors(page *entity.Page, profile *ListingProfile, record *entity.CompanyRecord) {
	doc, err := parseDocument(page)
	if err != nil {
		return
	}

	if name := strings.TrimSpace(doc.Find(profile.NameSelector).First().Text()); name != "" {
		record.CompanyName = name
	}

	doc.Find("dt, th").Each(func(_ int, label *goquery.Selection) {
		value := strings.TrimSpace(label.Next().Text())
		if value == "" {
			return
		}
		labelText := strings.TrimSpace(label.Text())
		switch {
		case strings.Contains(labelText, "대표"):
			if record.CEOName == "" {
				record.CEOName = value
			}
		case strings.Contains(labelText, "주소") || strings.Contains(labelText, "소재지"):
			if record.Address == "" {
				record.Address = truncateAddress(value)
			}
		}
	})
}

// resolveHomepage tries, in priority order, to find the company's external
// homepage on a listing detail page: the structured homepage field, anchors
// labeled as homepage links, and finally any external link that does not
// point at a known non-company host.
func resolveHomepage(page *entity.Page, profile *ListingProfile) string {
	doc, err := parseDocument(page)
	if err != nil {
		return ""
	}

	var homepage string

	doc.Find("dt, th").EachWithBreak(func(_ int, label *goquery.Selection) bool {
		if !strings.Contains(label.Text(), profile.HomepageLabel) {
			return true
		}
		value := label.Next()
		if href, ok := value.Find("a").First().Attr("href"); ok {
			homepage = href
			return false
		}
		if text := strings.TrimSpace(value.Text()); strings.HasPrefix(text, "http") {
			homepage = text
			return false
		}
		return true
	})

	if homepage == "" {
		doc.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			labelText := strings.TrimSpace(a.Text())
			if !strings.Contains(labelText, "홈페이지") && !strings.Contains(labelText, "웹사이트") {
				return true
			}
			if href, ok := a.Attr("href"); ok && href != "" && href != "#" {
				homepage = href
				return false
			}
			return true
		})
	}

	if homepage == "" {
		doc.Find("a[href^='http']").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href, _ := a.Attr("href")
			if containsAny(strings.ToLower(href), nonCompanyHosts) {
				return true
			}
			homepage = href
			return false
		})
	}

	if homepage == "" {
		return ""
	}

	if base, err := url.Parse(page.URL); err == nil {
		if abs, err := utils.ToAbsoluteURL(base, homepage); err == nil {
			homepage = abs
		}
	}
	if !strings.HasPrefix(homepage, "http") {
		return ""
	}
	return homepage
}

// footerText returns the text of the first non-empty footer region, or the
// whole body text when the page has no recognizable footer.
func footerText(page *entity.Page) string {
	doc, err := parseDocument(page)
	if err != nil {
		return page.BodyText
	}
	for _, selector := range footerSelectors {
		if text := strings.TrimSpace(doc.Find(selector).Text()); text != "" {
			return text
		}
	}
	return page.BodyText
}
