package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"city_pulse/internal/domain"
)

// LedgerStore persists discovered content. A row is written at most once per
// (external_id, content_type) and is never deleted.
type LedgerStore struct {
	db *sqlx.DB
}

func NewLedgerStore(db *sqlx.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// Insert records an item and reports whether the row was actually inserted.
// A conflict on (external_id, content_type) leaves the existing row untouched.
func (s *LedgerStore) Insert(ctx context.Context, item *domain.DiscoveredItem) (bool, error) {
	query := `
		INSERT INTO discovered_content (
			content_type, external_id, city_slug, discovered_at, payload, is_published
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (external_id, content_type) DO NOTHING`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		item.ContentType,
		item.ExternalID,
		item.CitySlug,
		item.DiscoveredAt,
		item.Payload,
		item.IsPublished,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListUnpublishedRecap returns all of a city's unpublished items of
// non-preview types. No time bound: the published flag is what keeps this
// set small, and an old row must stay eligible until it is published.
func (s *LedgerStore) ListUnpublishedRecap(ctx context.Context, citySlug string) ([]domain.DiscoveredItem, error) {
	query := `
		SELECT id, content_type, external_id, city_slug, discovered_at, payload, is_published
		FROM discovered_content
		WHERE city_slug = $1
		  AND is_published = false
		  AND content_type <> $2
		ORDER BY id`

	var items []domain.DiscoveredItem
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &items, query, citySlug, domain.ContentEvent)
	return items, err
}

// ListEventsSince returns a city's events discovered at or after the cutoff.
// Events stay eligible regardless of publication state: previews repeat until
// their period closes and the rows are never marked published.
func (s *LedgerStore) ListEventsSince(ctx context.Context, citySlug string, since time.Time) ([]domain.DiscoveredItem, error) {
	query := `
		SELECT id, content_type, external_id, city_slug, discovered_at, payload, is_published
		FROM discovered_content
		WHERE city_slug = $1
		  AND content_type = $2
		  AND discovered_at >= $3
		ORDER BY id`

	var items []domain.DiscoveredItem
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &items, query, citySlug, domain.ContentEvent, since)
	return items, err
}

func (s *LedgerStore) MarkPublished(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE discovered_content SET is_published = true WHERE id = ANY($1)`
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, pq.Array(ids))
	return err
}
