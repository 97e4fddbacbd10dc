package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"city_pulse/internal/domain"
)

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// QueueStore persists one row per pipeline: remaining cities and the frozen
// total. Row presence doubles as the "run in progress" flag.
type QueueStore struct {
	db *sqlx.DB
}

func NewQueueStore(db *sqlx.DB) *QueueStore {
	return &QueueStore{db: db}
}

func (s *QueueStore) Get(ctx context.Context, pipeline domain.Pipeline) (*domain.Queue, error) {
	query := `SELECT items, total_count FROM pipeline_queues WHERE pipeline = $1`

	var row struct {
		Items      []byte `db:"items"`
		TotalCount int    `db:"total_count"`
	}
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, pipeline)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	queue := &domain.Queue{Pipeline: pipeline, TotalCount: row.TotalCount}
	if err := json.Unmarshal(row.Items, &queue.Items); err != nil {
		return nil, fmt.Errorf("decode queue items: %w", err)
	}
	return queue, nil
}

func (s *QueueStore) Save(ctx context.Context, queue *domain.Queue) error {
	items, err := json.Marshal(queue.Items)
	if err != nil {
		return fmt.Errorf("encode queue items: %w", err)
	}

	query := `
		INSERT INTO pipeline_queues (pipeline, items, total_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (pipeline) DO UPDATE SET
			items = EXCLUDED.items,
			total_count = EXCLUDED.total_count`

	_, err = GetExecutor(ctx, s.db).ExecContext(ctx, query, queue.Pipeline, items, queue.TotalCount)
	return err
}

func (s *QueueStore) Delete(ctx context.Context, pipeline domain.Pipeline) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM pipeline_queues WHERE pipeline = $1`, pipeline)
	return err
}
