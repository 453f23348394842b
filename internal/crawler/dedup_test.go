package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/company-crawler/internal/entity"
)

func TestDeduperIdempotent(t *testing.T) {
	d := NewDeduper()
	record := &entity.CompanyRecord{
		URL:         "http://acme.co.kr",
		CompanyName: "에이스금형",
		Email:       "info@acme.co.kr",
	}

	assert.True(t, d.Accept(record))
	assert.False(t, d.Accept(record))
}

func TestDeduperEmailCollision(t *testing.T) {
	d := NewDeduper()

	assert.True(t, d.Accept(&entity.CompanyRecord{
		URL:         "http://acme.co.kr",
		CompanyName: "에이스금형",
		Email:       "info@acme.com",
	}))
	// Different URL and name, same email: still a duplicate.
	assert.False(t, d.Accept(&entity.CompanyRecord{
		URL:         "http://other.co.kr",
		CompanyName: "다른회사",
		Email:       "info@acme.com",
	}))
}

func TestDeduperEmailKeyIsCaseInsensitive(t *testing.T) {
	d := NewDeduper()
	assert.True(t, d.Accept(&entity.CompanyRecord{URL: "http://a.kr", Email: "Info@Acme.com"}))
	assert.False(t, d.Accept(&entity.CompanyRecord{URL: "http://b.kr", Email: "info@acme.com "}))
}

func TestDeduperURLBaseCollision(t *testing.T) {
	d := NewDeduper()

	assert.True(t, d.Accept(&entity.CompanyRecord{
		URL:   "http://acme.co.kr/?ref=search",
		Email: "a@acme.com",
	}))
	// Same URL base modulo query/trailing slash, different email.
	assert.False(t, d.Accept(&entity.CompanyRecord{
		URL:   "http://acme.co.kr/",
		Email: "b@acme.com",
	}))
}

func TestDeduperPartialRecordsOnlyCollideOnURL(t *testing.T) {
	d := NewDeduper()

	// Two records with no name and no email: nothing but the URL base can
	// reject the second one.
	assert.True(t, d.Accept(&entity.CompanyRecord{URL: "http://a.co.kr"}))
	assert.True(t, d.Accept(&entity.CompanyRecord{URL: "http://b.co.kr"}))
	assert.False(t, d.Accept(&entity.CompanyRecord{URL: "http://a.co.kr"}))
}

func TestDeduperEmptyKeysNeverMatchEachOther(t *testing.T) {
	d := NewDeduper()

	assert.True(t, d.Accept(&entity.CompanyRecord{URL: "http://a.co.kr", CompanyName: "", Email: ""}))
	// Empty name/email on the first record must not block later records
	// that also have empty name/email.
	assert.True(t, d.Accept(&entity.CompanyRecord{URL: "http://b.co.kr", CompanyName: "", Email: ""}))
}
