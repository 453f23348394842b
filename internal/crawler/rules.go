package crawler

import (
	"regexp"
	"sort"
	"strings"
)

// Heuristic extraction rules. Each field has an ordered table evaluated top
// to bottom; the first matching pattern wins and later patterns are not
// tried. The tables mirror the label conventions of Korean corporate footers.

const (
	maxEmails     = 3
	maxAddressLen = 80
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Pattern matches ending in asset extensions are artifacts of image paths,
// not addresses.
var assetExtensions = []string{".png", ".jpg", ".gif", ".svg", ".jpeg", ".webp"}

// System-noise mailboxes nobody answers.
var emailNoiseMarkers = []string{"no-reply", "noreply", "do-not-reply", "donotreply", "@example.", "@sentry."}

var companyNameRules = []*regexp.Regexp{
	regexp.MustCompile(`(?:회사명|상호|법인명|업체명|기업명)\s*[:\s]\s*([^\n\r,|(]{2,30})`),
	regexp.MustCompile(`(?:상\s*호)\s*[:\s]\s*([^\n\r,|(]{2,30})`),
	regexp.MustCompile(`\(주\)\s*([가-힣a-zA-Z0-9\s]{2,20})`),
	regexp.MustCompile(`([가-힣]{2,15}(?:주식회사|㈜|\(주\)))`),
	regexp.MustCompile(`((?:주식회사|㈜)\s*[가-힣a-zA-Z0-9]{2,15})`),
}

var ceoNameRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:대표자?|대표이사|CEO|대표자명)\s*[:\s]\s*([가-힣]{2,5})`),
	regexp.MustCompile(`(?i)(?:대\s*표)\s*[:\s]\s*([가-힣]{2,5})`),
	regexp.MustCompile(`대표이사\s*([가-힣]{2,5})`),
}

var addressRules = []*regexp.Regexp{
	regexp.MustCompile(`(?:주소|소재지|사업장\s*소재지|본사)\s*[:\s]\s*([^\n\r]{10,80})`),
	regexp.MustCompile(`(?:주\s*소)\s*[:\s]\s*([^\n\r]{10,80})`),
	regexp.MustCompile(`((?:서울|부산|대구|인천|광주|대전|울산|세종|경기|강원|충북|충남|전북|전남|경북|경남|제주)[^\n\r]{10,70})`),
}

// firstMatch evaluates a rule table against text and returns the first
// capture, trimmed, or "".
func firstMatch(rules []*regexp.Regexp, text string) string {
	for _, rule := range rules {
		if m := rule.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// firstMatchTexts tries the rule table against each text in order, so a
// footer region can be preferred over the whole document.
func firstMatchTexts(rules []*regexp.Regexp, texts []string) string {
	for _, text := range texts {
		if v := firstMatch(rules, text); v != "" {
			return v
		}
	}
	return ""
}

// extractEmails collects up to maxEmails distinct addresses from text,
// dropping asset-path artifacts and system-noise mailboxes. The result is
// sorted before joining so the output (and the dedup key derived from it) is
// independent of match order.
func extractEmails(text string) string {
	seen := make(map[string]struct{})
	for _, match := range emailPattern.FindAllString(text, -1) {
		email := strings.ToLower(match)
		if hasSuffixAny(email, assetExtensions) || containsAny(email, emailNoiseMarkers) {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		if len(seen) == maxEmails {
			break
		}
	}
	if len(seen) == 0 {
		return ""
	}
	emails := make([]string, 0, len(seen))
	for email := range seen {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return strings.Join(emails, ", ")
}

func extractEmailsTexts(texts []string) string {
	for _, text := range texts {
		if v := extractEmails(text); v != "" {
			return v
		}
	}
	return ""
}

// truncateAddress bounds an extracted address to maxAddressLen characters.
func truncateAddress(addr string) string {
	runes := []rune(addr)
	if len(runes) <= maxAddressLen {
		return addr
	}
	return string(runes[:maxAddressLen])
}

func hasSuffixAny(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
