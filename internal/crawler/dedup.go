package crawler

import (
	"strings"

	"github.com/user/company-crawler/internal/entity"
	"github.com/user/company-crawler/pkg/utils"
)

// Deduper gates acceptance of extracted records within one run. A record is
// a duplicate if any of its non-empty keys (normalized URL base, trimmed
// company name, lowercased joined emails) matches a previously accepted
// record. A record with no name and no email can therefore only collide on
// its URL base.
type Deduper struct {
	urls   map[string]struct{}
	names  map[string]struct{}
	emails map[string]struct{}
}

func NewDeduper() *Deduper {
	return &Deduper{
		urls:   make(map[string]struct{}),
		names:  make(map[string]struct{}),
		emails: make(map[string]struct{}),
	}
}

// Accept reports whether record is novel and, when it is, registers all of
// its non-empty keys.
func (d *Deduper) Accept(record *entity.CompanyRecord) bool {
	urlKey := utils.NormalizeURL(record.URL)
	nameKey := strings.TrimSpace(record.CompanyName)
	emailKey := strings.ToLower(strings.TrimSpace(record.Email))

	if urlKey != "" {
		if _, dup := d.urls[urlKey]; dup {
			return false
		}
	}
	if nameKey != "" {
		if _, dup := d.names[nameKey]; dup {
			return false
		}
	}
	if emailKey != "" {
		if _, dup := d.emails[emailKey]; dup {
			return false
		}
	}

	if urlKey != "" {
		d.urls[urlKey] = struct{}{}
	}
	if nameKey != "" {
		d.names[nameKey] = struct{}{}
	}
	if emailKey != "" {
		d.emails[emailKey] = struct{}{}
	}
	return true
}
