package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"city_pulse/internal/config"
	"city_pulse/internal/domain"
	"city_pulse/internal/geo"
)

// DiscoveryEngine pulls fresh skate content for one city into the ledger.
// Content types are processed in a fixed order; a failed endpoint skips only
// its own type, while an auth failure aborts the whole city so the queue
// runner can retry it unchanged.
type DiscoveryEngine struct {
	source    ContentSource
	ledger    LedgerStore
	seen      SeenSkaterStore
	txManager TransactionManager
	logger    *slog.Logger
	config    config.DiscoveryConfig

	now func() time.Time
}

func NewDiscoveryEngine(
	source ContentSource,
	ledger LedgerStore,
	seen SeenSkaterStore,
	txManager TransactionManager,
	logger *slog.Logger,
	cfg config.DiscoveryConfig,
) *DiscoveryEngine {
	return &DiscoveryEngine{
		source:    source,
		ledger:    ledger,
		seen:      seen,
		txManager: txManager,
		logger:    logger.With("pipeline", domain.PipelineDiscovery),
		config:    cfg,
		now:       time.Now,
	}
}

func (e *DiscoveryEngine) Pipeline() domain.Pipeline {
	return domain.PipelineDiscovery
}

func (e *DiscoveryEngine) ProcessCity(ctx context.Context, city domain.City) error {
	since := e.now().Add(-e.config.Window)
	_, err := e.discoverCity(ctx, city, since)
	return err
}

// Seed runs discovery with a months-long window instead of the regular one,
// to backfill a newly added city.
func (e *DiscoveryEngine) Seed(ctx context.Context, city domain.City, months int) (*domain.DiscoveryReport, error) {
	since := e.now().AddDate(0, -months, 0)
	return e.discoverCity(ctx, city, since)
}

func (e *DiscoveryEngine) discoverCity(ctx context.Context, city domain.City, since time.Time) (*domain.DiscoveryReport, error) {
	startTime := e.now()
	report := domain.NewDiscoveryReport(city.Slug)
	box := geo.BoundingBox(city.Latitude, city.Longitude, city.RadiusKM)

	e.logger.Info("starting discovery", "city", city.Slug, "since", since)

	spots, err := e.source.FetchSpots(ctx, box)
	if err != nil {
		if isAuthErr(err) {
			return report, err
		}
		e.logger.Error("spot fetch failed", "city", city.Slug, "error", err)
		report.Errors++
	}
	e.insertCandidates(ctx, city, spots, since, report)

	events, err := e.source.FetchEvents(ctx, box)
	if err != nil {
		if isAuthErr(err) {
			return report, err
		}
		e.logger.Error("event fetch failed", "city", city.Slug, "error", err)
		report.Errors++
	}
	e.insertCandidates(ctx, city, events, since, report)

	// Reviews and sessions hang off the spots that are in the box right now.
	for _, spot := range spots {
		if err := e.discoverSpotActivity(ctx, city, spot.ExternalID, since, report); err != nil {
			return report, err
		}
	}

	if err := e.discoverSkaters(ctx, city, report); err != nil {
		return report, err
	}

	report.Duration = e.now().Sub(startTime)
	e.logger.Info("discovery completed",
		"city", city.Slug,
		"fetched", totalCount(report.Fetched),
		"inserted", totalCount(report.Inserted),
		"errors", report.Errors,
		"duration", report.Duration,
	)
	return report, nil
}

func (e *DiscoveryEngine) discoverSpotActivity(ctx context.Context, city domain.City, spotID string, since time.Time, report *domain.DiscoveryReport) error {
	reviews, err := e.source.FetchSpotReviews(ctx, spotID)
	if err != nil {
		if isAuthErr(err) {
			return err
		}
		e.logger.Warn("review fetch failed", "city", city.Slug, "spot_id", spotID, "error", err)
		report.Errors++
	}
	e.insertCandidates(ctx, city, reviews, since, report)

	sessions, err := e.source.FetchSpotSessions(ctx, spotID)
	if err != nil {
		if isAuthErr(err) {
			return err
		}
		e.logger.Warn("session list fetch failed", "city", city.Slug, "spot_id", spotID, "error", err)
		report.Errors++
		return nil
	}

	for _, summary := range sessions {
		// Event-type sessions duplicate the event feed.
		if summary.Type == "Event" {
			continue
		}
		detail, err := e.source.FetchSessionDetail(ctx, summary.ID)
		if err != nil {
			if isAuthErr(err) {
				return err
			}
			e.logger.Warn("session detail fetch failed", "session_id", summary.ID, "error", err)
			report.Errors++
			continue
		}
		e.insertCandidates(ctx, city, []domain.Candidate{detail}, since, report)
	}
	return nil
}

// discoverSkaters records users never seen in this city before. Unlike the
// other types there is no creation-time window: the first-sighting index is
// the dedup.
func (e *DiscoveryEngine) discoverSkaters(ctx context.Context, city domain.City, report *domain.DiscoveryReport) error {
	nearby, err := e.source.FetchNearbySkaters(ctx, city.Latitude, city.Longitude, e.config.SkaterWindowDays)
	if err != nil {
		if isAuthErr(err) {
			return err
		}
		e.logger.Error("nearby skaters fetch failed", "city", city.Slug, "error", err)
		report.Errors++
		return nil
	}

	minDistance := MinDistancePerUser(nearby.Activities)

	for _, profile := range nearby.Profiles {
		report.Fetched[domain.ContentSkater]++

		distKM, ok := minDistance[profile.UserID]
		if !ok || distKM > city.RadiusKM {
			continue
		}

		seen, err := e.seen.Seen(ctx, profile.UserID, city.Slug)
		if err != nil {
			e.logger.Error("seen-skater lookup failed", "user_id", profile.UserID, "error", err)
			report.Errors++
			continue
		}
		if seen {
			continue
		}

		err = e.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			inserted, err := e.ledger.Insert(txCtx, &domain.DiscoveredItem{
				ContentType:  domain.ContentSkater,
				ExternalID:   profile.UserID,
				CitySlug:     city.Slug,
				DiscoveredAt: e.now(),
				Payload:      profile.Payload,
			})
			if err != nil {
				return err
			}
			if inserted {
				report.Inserted[domain.ContentSkater]++
			}
			return e.seen.Record(txCtx, &domain.SeenSkater{
				UserExternalID: profile.UserID,
				CitySlug:       city.Slug,
				FirstSeenAt:    e.now(),
			})
		})
		if err != nil {
			e.logger.Error("skater insert failed", "user_id", profile.UserID, "error", err)
			report.Errors++
		}
	}
	return nil
}

func (e *DiscoveryEngine) insertCandidates(ctx context.Context, city domain.City, candidates []domain.Candidate, since time.Time, report *domain.DiscoveryReport) {
	for _, c := range candidates {
		report.Fetched[c.ContentType]++

		if c.CreatedAt.Before(since) {
			continue
		}

		inserted, err := e.ledger.Insert(ctx, &domain.DiscoveredItem{
			ContentType:  c.ContentType,
			ExternalID:   c.ExternalID,
			CitySlug:     city.Slug,
			DiscoveredAt: e.now(),
			Payload:      c.Payload,
		})
		if err != nil {
			e.logger.Error("ledger insert failed",
				"content_type", c.ContentType,
				"external_id", c.ExternalID,
				"error", err,
			)
			report.Errors++
			continue
		}
		if inserted {
			report.Inserted[c.ContentType]++
		}
	}
}

// MinDistancePerUser collapses repeated activities into the closest recorded
// distance per user, in kilometers.
func MinDistancePerUser(activities []domain.NearbyActivity) map[string]float64 {
	min := make(map[string]float64, len(activities))
	for _, a := range activities {
		km := a.DistanceMeters / 1000
		if cur, ok := min[a.UserID]; !ok || km < cur {
			min[a.UserID] = km
		}
	}
	return min
}

func isAuthErr(err error) bool {
	var authErr *domain.AuthError
	return errors.As(err, &authErr)
}

func totalCount(m map[domain.ContentType]int) int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}
