package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/fwojciec/brochure"
)

// Compile-time interface verification.
var _ brochure.BrochureService = (*BrochureService)(nil)

// BrochureService implements brochure.BrochureService using SQLite.
type BrochureService struct {
	db *DB
}

// NewBrochureService creates a new BrochureService.
func NewBrochureService(db *DB) *BrochureService {
	return &BrochureService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateBrochure persists a brochure, assigning its ID, content hash,
// and creation timestamp.
func (s *BrochureService) CreateBrochure(ctx context.Context, b *brochure.Brochure) error {
	if err := b.Validate(); err != nil {
		return err
	}

	b.ID = uuid.New().String()
	b.CreatedAt = time.Now().UTC()
	b.ContentHash = hashContent(b.Markdown)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO brochures (id, company_name, seed_url, markdown, status, error_detail, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.CompanyName, b.SeedURL, b.Markdown, b.Status, b.ErrorDetail, b.ContentHash,
		b.CreatedAt.Format(time.RFC3339))

	return err
}

// FindBrochureByID retrieves a brochure by ID.
func (s *BrochureService) FindBrochureByID(ctx context.Context, id string) (*brochure.Brochure, error) {
	var b brochure.Brochure
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, company_name, seed_url, markdown, status, error_detail, content_hash, created_at
		FROM brochures
		WHERE id = ?
	`, id).Scan(&b.ID, &b.CompanyName, &b.SeedURL, &b.Markdown, &b.Status,
		&b.ErrorDetail, &b.ContentHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, brochure.Errorf(brochure.ENOTFOUND, "brochure not found")
	}
	if err != nil {
		return nil, err
	}

	b.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// FindBrochures retrieves brochures matching the filter, newest first.
func (s *BrochureService) FindBrochures(ctx context.Context, filter brochure.BrochureFilter) ([]*brochure.Brochure, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, company_name, seed_url, markdown, status, error_detail, content_hash, created_at FROM brochures WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CompanyName != nil {
		query.WriteString(" AND company_name = ?")
		args = append(args, *filter.CompanyName)
	}
	if filter.SeedURL != nil {
		query.WriteString(" AND seed_url = ?")
		args = append(args, *filter.SeedURL)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brochures []*brochure.Brochure
	for rows.Next() {
		var b brochure.Brochure
		var createdAt string

		if err := rows.Scan(&b.ID, &b.CompanyName, &b.SeedURL, &b.Markdown, &b.Status,
			&b.ErrorDetail, &b.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		b.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		brochures = append(brochures, &b)
	}

	return brochures, rows.Err()
}

// DeleteBrochure permanently removes a brochure.
func (s *BrochureService) DeleteBrochure(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM brochures WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return brochure.Errorf(brochure.ENOTFOUND, "brochure not found")
	}

	return nil
}
