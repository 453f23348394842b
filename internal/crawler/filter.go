package crawler

import "strings"

// Domains that are never company homepages: the search portal itself, news
// outlets, blogs and communities, marketplaces, overseas manufacturers,
// wikis, social networks, ads.
var excludeDomains = []string{
	"naver.com", "naver.me",

	"news", "snmnews", "chosun", "joongang", "hani", "donga", "hankyung",
	"mk.co.kr", "mt.co.kr", "edaily", "newsis", "yonhap", "yna.co.kr", "khan",

	"tistory", "blog", "brunch", "medium.com", "velog", "notion.so",
	"cafe.daum", "dcinside", "clien", "ruliweb", "fmkorea",

	"gmarket", "11st", "coupang", "auction", "interpark", "wemakeprice",
	"tmon", "ssg.com", "lotte", "shinsegae", "hmall", "gsshop",
	"alibaba", "aliexpress", "amazon", "ebay", "taobao",

	"mfgrobots", "made-in-china", "globalsources",
	"firstmold", "djmolding", "sanonchina", "yujebearing",
	"custom-plastic-molds", "rjcmold", "formlabs", "boyiprototyping",
	"juliertech", ".cn", ".com.cn",

	"wikipedia", "namu.wiki", "openstreetmap", "google.com", "youtube",
	"facebook", "instagram", "twitter", "linkedin",
	"kisti.re.kr", "scienceon",

	"ad.search", "searchad", "adsense",
}

// Job boards are excluded by default but can be admitted via configuration,
// e.g. when the listing-site sources should contribute candidates.
var jobBoardDomains = []string{
	"saramin", "jobkorea", "job.gg.go.kr", "incruit", "wanted", "jobaba",
	"alba", "work.go.kr", "catch.co.kr", "superookie", "workieum",
}

// Path segments marking editorial rather than corporate content.
var excludePathSegments = []string{"/blog", "/cafe", "/article", "/news"}

// URLFilter decides whether a discovered URL is plausibly a company site.
// Pure predicate: no I/O, deterministic for a given configuration.
type URLFilter struct {
	exclude []string
}

// NewURLFilter builds the filter. When excludeJobBoards is false, job-board
// domains pass through and their detail pages become candidates.
func NewURLFilter(excludeJobBoards bool) *URLFilter {
	exclude := make([]string, 0, len(excludeDomains)+len(jobBoardDomains))
	exclude = append(exclude, excludeDomains...)
	if excludeJobBoards {
		exclude = append(exclude, jobBoardDomains...)
	}
	return &URLFilter{exclude: exclude}
}

// IsAdmissible reports whether url may be a company website.
func (f *URLFilter) IsAdmissible(url string) bool {
	lower := strings.ToLower(url)
	for _, domain := range f.exclude {
		if strings.Contains(lower, domain) {
			return false
		}
	}
	for _, segment := range excludePathSegments {
		if strings.Contains(lower, segment) {
			return false
		}
	}
	return true
}
