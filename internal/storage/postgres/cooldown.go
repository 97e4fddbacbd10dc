package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"city_pulse/internal/domain"
)

// CooldownStore records when a skater was last synced to the mailing
// platform, keyed by skate name.
type CooldownStore struct {
	db *sqlx.DB
}

func NewCooldownStore(db *sqlx.DB) *CooldownStore {
	return &CooldownStore{db: db}
}

func (s *CooldownStore) Get(ctx context.Context, skateName string) (*domain.CooldownEntry, error) {
	query := `SELECT skate_name, city_name, last_synced_at FROM skater_cooldowns WHERE skate_name = $1`

	var entry domain.CooldownEntry
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &entry, query, skateName)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (s *CooldownStore) Put(ctx context.Context, entry *domain.CooldownEntry) error {
	query := `
		INSERT INTO skater_cooldowns (skate_name, city_name, last_synced_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (skate_name) DO UPDATE SET
			city_name = EXCLUDED.city_name,
			last_synced_at = EXCLUDED.last_synced_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		entry.SkateName, entry.CityName, entry.LastSyncedAt)
	return err
}
