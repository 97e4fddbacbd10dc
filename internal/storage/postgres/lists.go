package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// ListStore maps city names to mailing list ids on the email provider.
type ListStore struct {
	db *sqlx.DB
}

func NewListStore(db *sqlx.DB) *ListStore {
	return &ListStore{db: db}
}

func (s *ListStore) Get(ctx context.Context, cityName string) (int64, bool, error) {
	var listID int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &listID,
		`SELECT list_id FROM mailing_lists WHERE city_name = $1`, cityName)
	if err != nil {
		if isNoRows(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return listID, true, nil
}

func (s *ListStore) Put(ctx context.Context, cityName string, listID int64) error {
	query := `
		INSERT INTO mailing_lists (city_name, list_id)
		VALUES ($1, $2)
		ON CONFLICT (city_name) DO UPDATE SET list_id = EXCLUDED.list_id`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, cityName, listID)
	return err
}

func (s *ListStore) All(ctx context.Context) (map[string]int64, error) {
	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx,
		`SELECT city_name, list_id FROM mailing_lists`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var cityName string
		var listID int64
		if err := rows.Scan(&cityName, &listID); err != nil {
			return nil, err
		}
		result[cityName] = listID
	}
	return result, rows.Err()
}
