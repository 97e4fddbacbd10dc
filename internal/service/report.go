package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"city_pulse/internal/domain"
)

// ReportService produces the contact-sync dry run: the same evaluation as a
// real sync, one city per client-driven batch, without writing to the
// provider or the cooldown log. The city queue travels with the client: Start
// hands out the full queue, each Step consumes the head of whatever queue the
// client echoes back and returns the shrunk remainder. The server keeps only
// the accumulating rows, in memory with a TTL, exportable as CSV until they
// expire.
type ReportService struct {
	engine *ContactSyncEngine
	cities CitySource
	logger *slog.Logger
	ttl    time.Duration

	now func() time.Time

	mu        sync.Mutex
	active    bool
	total     int
	rows      []domain.ReportRow
	expiresAt time.Time
}

// ReportBatch is the result of processing one city of the dry run. Remaining
// is the shrunk queue the client must send back on the next Step.
type ReportBatch struct {
	City      string             `json:"city"`
	Rows      []domain.ReportRow `json:"rows"`
	Remaining []string           `json:"remaining"`
	Total     int                `json:"total"`
	Done      bool               `json:"done"`
}

func NewReportService(engine *ContactSyncEngine, cities CitySource, logger *slog.Logger, ttl time.Duration) *ReportService {
	return &ReportService{
		engine: engine,
		cities: cities,
		logger: logger.With("component", "dry_run"),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Start begins a new dry run, discarding any previous report, and returns
// the full city queue (slugs) for the client to step through plus its size.
func (s *ReportService) Start() ([]string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cities := s.cities.Cities()
	queue := make([]string, len(cities))
	for i, city := range cities {
		queue[i] = city.Slug
	}

	s.active = true
	s.total = len(queue)
	s.rows = nil
	s.expiresAt = s.now().Add(s.ttl)

	s.logger.Info("dry run started", "cities", s.total)
	return queue, s.total
}

// Step evaluates the head of the client-supplied remaining queue and returns
// the shrunk queue. The city is not consumed when its skater fetch fails, so
// the client can retry with the same queue.
func (s *ReportService) Step(ctx context.Context, remaining []string) (*ReportBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkActiveLocked(); err != nil {
		return nil, err
	}
	if len(remaining) == 0 {
		return &ReportBatch{Remaining: []string{}, Total: s.total, Done: true}, nil
	}

	city, ok := s.cityBySlug(remaining[0])
	if !ok {
		return nil, fmt.Errorf("unknown city %q in queue", remaining[0])
	}

	candidates, err := s.engine.CityCandidates(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("fetch skaters for %s: %w", city.Slug, err)
	}

	batch := &ReportBatch{City: city.Name, Total: s.total}
	for _, profile := range candidates {
		row, _ := s.engine.Evaluate(ctx, city, profile)
		batch.Rows = append(batch.Rows, row)
	}

	s.rows = append(s.rows, batch.Rows...)
	s.expiresAt = s.now().Add(s.ttl)

	batch.Remaining = append([]string{}, remaining[1:]...)
	batch.Done = len(batch.Remaining) == 0
	if batch.Done {
		s.logger.Info("dry run completed", "rows", len(s.rows))
	}
	return batch, nil
}

func (s *ReportService) cityBySlug(slug string) (domain.City, bool) {
	for _, city := range s.cities.Cities() {
		if city.Slug == slug {
			return city, true
		}
	}
	return domain.City{}, false
}

// Rows returns a snapshot of everything evaluated so far.
func (s *ReportService) Rows() ([]domain.ReportRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkActiveLocked(); err != nil {
		return nil, err
	}
	rows := make([]domain.ReportRow, len(s.rows))
	copy(rows, s.rows)
	return rows, nil
}

// WriteCSV renders the accumulated report.
func (s *ReportService) WriteCSV(w io.Writer) error {
	rows, err := s.Rows()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"city", "skate_name", "distance_km", "outcome", "reason"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.CityName,
			row.SkateName,
			strconv.FormatFloat(row.DistanceKM, 'f', 2, 64),
			string(row.Outcome),
			row.Reason,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *ReportService) checkActiveLocked() error {
	if !s.active {
		return fmt.Errorf("no dry run in progress")
	}
	if s.now().After(s.expiresAt) {
		s.active = false
		s.rows = nil
		return fmt.Errorf("dry run expired")
	}
	return nil
}
