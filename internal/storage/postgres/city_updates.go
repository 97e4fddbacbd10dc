package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"city_pulse/internal/domain"
)

// CityUpdateStore persists digest documents. (city_slug, period_key) is
// unique so re-running a closed bucket overwrites the previous digest.
type CityUpdateStore struct {
	db *sqlx.DB
}

func NewCityUpdateStore(db *sqlx.DB) *CityUpdateStore {
	return &CityUpdateStore{db: db}
}

func (s *CityUpdateStore) Upsert(ctx context.Context, update *domain.CityUpdate) (int64, error) {
	query := `
		INSERT INTO city_updates (
			city_slug, period_key, post_slug, title, summary, featured_image_url, body, publish_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (city_slug, period_key) DO UPDATE SET
			post_slug = EXCLUDED.post_slug,
			title = EXCLUDED.title,
			summary = EXCLUDED.summary,
			featured_image_url = EXCLUDED.featured_image_url,
			body = EXCLUDED.body,
			publish_date = EXCLUDED.publish_date
		RETURNING id`

	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id, query,
		update.CitySlug,
		update.PeriodKey,
		update.PostSlug,
		update.Title,
		update.Summary,
		update.FeaturedImageURL,
		update.Body,
		update.PublishDate,
	)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByPeriod fetches one digest row, or nil when the bucket has not been
// published yet.
func (s *CityUpdateStore) GetByPeriod(ctx context.Context, citySlug, periodKey string) (*domain.CityUpdate, error) {
	query := `
		SELECT id, city_slug, period_key, post_slug, title, summary, featured_image_url, body, publish_date
		FROM city_updates
		WHERE city_slug = $1 AND period_key = $2`

	var update domain.CityUpdate
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &update, query, citySlug, periodKey)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &update, nil
}
