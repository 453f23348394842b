package crawler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmails(t *testing.T) {
	text := `문의: Sales@Acme.co.kr 또는 info@acme.co.kr
이미지 logo@2x.png
회신 불가: no-reply@acme.co.kr`

	got := extractEmails(text)
	// Sorted, lowercased, artifacts and noise mailboxes dropped.
	assert.Equal(t, "info@acme.co.kr, sales@acme.co.kr", got)
}

func TestExtractEmailsCap(t *testing.T) {
	text := "a@x.com b@x.com c@x.com d@x.com e@x.com"
	got := extractEmails(text)
	assert.Len(t, strings.Split(got, ", "), maxEmails)
}

func TestExtractEmailsDeduplicates(t *testing.T) {
	got := extractEmails("info@acme.com INFO@ACME.COM info@acme.com")
	assert.Equal(t, "info@acme.com", got)
}

func TestExtractEmailsEmpty(t *testing.T) {
	assert.Equal(t, "", extractEmails("연락처가 없는 페이지입니다"))
}

func TestCompanyNameRules(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"explicit label", "회사명 : 에이스금형 | 대표 홍길동", "에이스금형"},
		{"spaced label", "상 호 : 세진테크", "세진테크"},
		{"jusik prefix", "(주) 대한정밀", "대한정밀"},
		{"legal suffix", "한빛주식회사 서울특별시", "한빛주식회사"},
		{"legal prefix", "주식회사 미래산업 대표이사", "주식회사 미래산업"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstMatch(companyNameRules, tt.text))
		})
	}
}

func TestCompanyNameFirstRuleWins(t *testing.T) {
	// Both the explicit label and the legal-entity token are present; the
	// label rule sits higher in the table and must win.
	text := "회사명: 에이스금형 / 관계사: 한빛주식회사"
	assert.Equal(t, "에이스금형", firstMatch(companyNameRules, text))
}

func TestCEONameRules(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"explicit label", "대표자 : 홍길동", "홍길동"},
		{"ceo label", "CEO: 김철수", "김철수"},
		{"daepyo-isa", "대표이사 이영희", "이영희"},
		{"spaced label", "대 표 : 박민수", "박민수"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstMatch(ceoNameRules, tt.text))
		})
	}
}

func TestAddressRules(t *testing.T) {
	labeled := "주소 : 서울특별시 강남구 테헤란로 123, 4층"
	assert.Equal(t, "서울특별시 강남구 테헤란로 123, 4층", firstMatch(addressRules, labeled))

	regionPrefixed := "오시는 길\n경기도 화성시 동탄산단로 55번길 12\n전화 031-123-4567"
	assert.Equal(t, "경기도 화성시 동탄산단로 55번길 12", firstMatch(addressRules, regionPrefixed))
}

func TestTruncateAddress(t *testing.T) {
	long := strings.Repeat("가", 100)
	assert.Equal(t, maxAddressLen, len([]rune(truncateAddress(long))))
	assert.Equal(t, "짧은 주소", truncateAddress("짧은 주소"))
}

func TestFirstMatchTextsPrefersEarlierText(t *testing.T) {
	footer := "대표자 : 홍길동"
	body := "대표자 : 김철수"
	assert.Equal(t, "홍길동", firstMatchTexts(ceoNameRules, []string{footer, body}))
	assert.Equal(t, "김철수", firstMatchTexts(ceoNameRules, []string{"", body}))
}
