package repository

import (
	"context"

	"github.com/user/company-crawler/internal/entity"
)

// RecordArchive persists accepted company records across runs. Optional:
// a nil archive disables persistence and the run keeps results in memory only.
type RecordArchive interface {
	// Save stores one accepted record. Existing rows for the same URL are
	// overwritten with the fresher extraction.
	Save(ctx context.Context, sessionID string, record *entity.CompanyRecord) error
}
