package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLFilterRejectsExcludedDomains(t *testing.T) {
	filter := NewURLFilter(true)

	rejected := []string{
		"https://search.naver.com/search.naver?query=acme",
		"https://blog.example.com/post/1",
		"https://somecompany.tistory.com",
		"https://www.coupang.com/vp/products/1",
		"https://ko.wikipedia.org/wiki/Acme",
		"https://www.facebook.com/acme",
		"https://news.example.co.kr/2024/01/01",
		"https://factory.example.cn",
	}
	for _, url := range rejected {
		assert.False(t, filter.IsAdmissible(url), url)
	}
}

func TestURLFilterRejectsEditorialPaths(t *testing.T) {
	filter := NewURLFilter(true)

	assert.False(t, filter.IsAdmissible("http://acme-mold.co.kr/cafe/board"))
	assert.False(t, filter.IsAdmissible("http://acme-mold.co.kr/article/12"))
}

func TestURLFilterAdmitsCompanySites(t *testing.T) {
	filter := NewURLFilter(true)

	admitted := []string{
		"http://acme-mold.co.kr",
		"https://www.daehanprecision.kr/about",
		"http://sejin-tech.com/contact",
	}
	for _, url := range admitted {
		assert.True(t, filter.IsAdmissible(url), url)
	}
}

func TestURLFilterIsCaseInsensitive(t *testing.T) {
	filter := NewURLFilter(true)
	assert.False(t, filter.IsAdmissible("https://WWW.COUPANG.COM/vp"))
}

func TestURLFilterJobBoardToggle(t *testing.T) {
	strict := NewURLFilter(true)
	lenient := NewURLFilter(false)

	detail := "https://www.saramin.co.kr/zf_user/company-info/view/csn/123"
	assert.False(t, strict.IsAdmissible(detail))
	assert.True(t, lenient.IsAdmissible(detail))

	// Non-job-board exclusions hold either way.
	assert.False(t, lenient.IsAdmissible("https://search.naver.com/search"))
}
