package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"city_pulse/internal/config"
	"city_pulse/internal/domain"
)

// ContactSyncEngine links discovered skaters to the mailing platform, one
// city per queue tick. Matching is deliberately conservative: a skater is
// added to a city list only when exactly one contact matches, and a cooldown
// log keyed by skate name keeps recently synced skaters from being touched
// again.
type ContactSyncEngine struct {
	source    ContentSource
	directory ContactDirectory
	cooldowns CooldownStore
	lists     ListStore
	logger    *slog.Logger
	config    config.ContactSyncConfig
	brevo     config.BrevoConfig

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

func NewContactSyncEngine(
	source ContentSource,
	directory ContactDirectory,
	cooldowns CooldownStore,
	lists ListStore,
	logger *slog.Logger,
	cfg config.ContactSyncConfig,
	brevoCfg config.BrevoConfig,
) *ContactSyncEngine {
	return &ContactSyncEngine{
		source:    source,
		directory: directory,
		cooldowns: cooldowns,
		lists:     lists,
		logger:    logger.With("pipeline", domain.PipelineContactSync),
		config:    cfg,
		brevo:     brevoCfg,
		now:       time.Now,
		sleep:     sleepCtx,
	}
}

func (e *ContactSyncEngine) Pipeline() domain.Pipeline {
	return domain.PipelineContactSync
}

func (e *ContactSyncEngine) ProcessCity(ctx context.Context, city domain.City) error {
	candidates, err := e.CityCandidates(ctx, city)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		e.logger.Info("no skaters in range", "city", city.Slug)
		return nil
	}

	listID, err := e.ensureList(ctx, city.Name)
	if err != nil {
		return fmt.Errorf("ensure mailing list for %s: %w", city.Name, err)
	}

	synced, skipped := 0, 0
	for i, profile := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			// Provider rate limit headroom.
			e.sleep(ctx, e.brevo.ContactDelay)
		}

		row, contact := e.Evaluate(ctx, city, profile)
		if row.Outcome != domain.OutcomeWillSync {
			e.logger.Debug("skipping skater",
				"city", city.Slug,
				"skate_name", profile.SkateName,
				"reason", row.Reason,
			)
			skipped++
			continue
		}

		if err := e.directory.AddContactToList(ctx, contact.ID, listID); err != nil {
			e.logger.Error("add to list failed",
				"city", city.Slug,
				"skate_name", profile.SkateName,
				"error", err,
			)
			skipped++
			continue
		}

		err = e.cooldowns.Put(ctx, &domain.CooldownEntry{
			SkateName:    profile.SkateName,
			CityName:     city.Name,
			LastSyncedAt: e.now(),
		})
		if err != nil {
			e.logger.Error("cooldown write failed", "skate_name", profile.SkateName, "error", err)
		}
		synced++
	}

	e.logger.Info("contact sync completed",
		"city", city.Slug,
		"candidates", len(candidates),
		"synced", synced,
		"skipped", skipped,
	)
	return nil
}

// CityCandidates returns the skaters inside the city radius, closest first,
// one entry per user at their minimum recorded distance.
func (e *ContactSyncEngine) CityCandidates(ctx context.Context, city domain.City) ([]domain.SkaterProfile, error) {
	nearby, err := e.source.FetchNearbySkaters(ctx, city.Latitude, city.Longitude, e.config.LookbackDays)
	if err != nil {
		return nil, err
	}

	minDistance := MinDistancePerUser(nearby.Activities)

	candidates := make([]domain.SkaterProfile, 0, len(nearby.Profiles))
	seen := make(map[string]bool, len(nearby.Profiles))
	for _, profile := range nearby.Profiles {
		if seen[profile.UserID] {
			continue
		}
		seen[profile.UserID] = true

		distKM, ok := minDistance[profile.UserID]
		if !ok || distKM > city.RadiusKM {
			continue
		}
		profile.DistanceKM = distKM
		candidates = append(candidates, profile)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].DistanceKM < candidates[j].DistanceKM
	})
	return candidates, nil
}

// Evaluate decides whether one skater would be synced, without writing
// anything. The dry-run report generator shares this path.
func (e *ContactSyncEngine) Evaluate(ctx context.Context, city domain.City, profile domain.SkaterProfile) (domain.ReportRow, *domain.Contact) {
	row := domain.ReportRow{
		CityName:   city.Name,
		SkateName:  profile.SkateName,
		DistanceKM: profile.DistanceKM,
		Outcome:    domain.OutcomeWillSkip,
	}

	if profile.SkateName == "" {
		row.Reason = "no skate name"
		return row, nil
	}

	entry, err := e.cooldowns.Get(ctx, profile.SkateName)
	if err != nil {
		row.Reason = fmt.Sprintf("cooldown lookup failed: %v", err)
		return row, nil
	}
	if entry != nil && e.now().Sub(entry.LastSyncedAt) < e.config.ResyncPeriod {
		row.Reason = fmt.Sprintf("synced %s ago", e.now().Sub(entry.LastSyncedAt).Round(time.Hour))
		return row, nil
	}

	attribute := e.brevo.PrimaryAttribute
	contacts, err := e.directory.FindContactsByAttribute(ctx, attribute, profile.SkateName)
	if err != nil {
		row.Reason = fmt.Sprintf("contact lookup failed: %v", err)
		return row, nil
	}
	// Fall back to the secondary attribute when the primary resolves to
	// anything but exactly one contact: zero matches and ambiguous matches
	// both get a second chance.
	if len(contacts) != 1 && e.brevo.SecondaryAttribute != "" {
		attribute = e.brevo.SecondaryAttribute
		contacts, err = e.directory.FindContactsByAttribute(ctx, attribute, profile.SkateName)
		if err != nil {
			row.Reason = fmt.Sprintf("contact lookup failed: %v", err)
			return row, nil
		}
	}

	switch len(contacts) {
	case 0:
		row.Reason = "no matching contact"
		return row, nil
	case 1:
		contact := contacts[0]
		row.Outcome = domain.OutcomeWillSync
		row.Reason = fmt.Sprintf("matched via %s", attribute)
		return row, &contact
	default:
		row.Reason = fmt.Sprintf("%d contacts match", len(contacts))
		return row, nil
	}
}

// ensureList resolves the provider list id for a city, reconciling against
// the provider's existing lists by name before creating a new one.
func (e *ContactSyncEngine) ensureList(ctx context.Context, cityName string) (int64, error) {
	listID, found, err := e.lists.Get(ctx, cityName)
	if err != nil {
		return 0, err
	}
	if found {
		return listID, nil
	}

	remote, err := e.directory.Lists(ctx)
	if err != nil {
		return 0, fmt.Errorf("list provider lists: %w", err)
	}
	for _, l := range remote {
		if l.Name == cityName {
			if err := e.lists.Put(ctx, cityName, l.ID); err != nil {
				return 0, err
			}
			return l.ID, nil
		}
	}

	created, err := e.directory.CreateList(ctx, cityName, e.brevo.FolderID)
	if err != nil {
		return 0, fmt.Errorf("create provider list: %w", err)
	}
	if err := e.lists.Put(ctx, cityName, created); err != nil {
		return 0, err
	}
	e.logger.Info("created mailing list", "city", cityName, "list_id", created)
	return created, nil
}

// ReconcileLists refreshes the local city-to-list mapping from the provider
// and creates missing lists for every configured city.
func (e *ContactSyncEngine) ReconcileLists(ctx context.Context, cities []domain.City) (map[string]int64, error) {
	result := make(map[string]int64, len(cities))
	for _, city := range cities {
		listID, err := e.ensureList(ctx, city.Name)
		if err != nil {
			return result, err
		}
		result[city.Name] = listID
	}
	return result, nil
}

func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
