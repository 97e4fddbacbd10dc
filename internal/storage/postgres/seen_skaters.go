package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"city_pulse/internal/domain"
)

// SeenSkaterStore is the first-sighting index used to decide whether a nearby
// user counts as a new skater for a city.
type SeenSkaterStore struct {
	db *sqlx.DB
}

func NewSeenSkaterStore(db *sqlx.DB) *SeenSkaterStore {
	return &SeenSkaterStore{db: db}
}

func (s *SeenSkaterStore) Seen(ctx context.Context, userExternalID, citySlug string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM seen_skaters WHERE user_external_id = $1 AND city_slug = $2
	)`

	var seen bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &seen, query, userExternalID, citySlug)
	return seen, err
}

func (s *SeenSkaterStore) Record(ctx context.Context, skater *domain.SeenSkater) error {
	query := `
		INSERT INTO seen_skaters (user_external_id, city_slug, first_seen_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_external_id, city_slug) DO NOTHING`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		skater.UserExternalID, skater.CitySlug, skater.FirstSeenAt)
	return err
}
