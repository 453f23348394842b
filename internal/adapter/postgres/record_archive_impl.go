package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/company-crawler/internal/entity"
)

// RecordArchiveImpl provides a concrete implementation for the RecordArchive
// interface using PostgreSQL.
type RecordArchiveImpl struct {
	db *pgxpool.Pool
}

// NewRecordArchive creates a new instance of RecordArchiveImpl.
func NewRecordArchive(db *pgxpool.Pool) *RecordArchiveImpl {
	return &RecordArchiveImpl{db: db}
}

// Save stores or updates one accepted company record.
func (r *RecordArchiveImpl) Save(ctx context.Context, sessionID string, record *entity.CompanyRecord) error {
	query := `
		INSERT INTO company_records (session_id, url, site_title, company_name, ceo_name, address, emails, collected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (url) DO UPDATE SET
			session_id = EXCLUDED.session_id,
			site_title = EXCLUDED.site_title,
			company_name = EXCLUDED.company_name,
			ceo_name = EXCLUDED.ceo_name,
			address = EXCLUDED.address,
			emails = EXCLUDED.emails,
			collected_at = EXCLUDED.collected_at;
	`
	_, err := r.db.Exec(ctx, query,
		sessionID,
		record.URL,
		record.SiteTitle,
		record.CompanyName,
		record.CEOName,
		record.Address,
		record.Email,
		time.Now(),
	)
	return err
}
