package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"city_pulse/internal/bucket"
	"city_pulse/internal/config"
	"city_pulse/internal/domain"
)

// PublicationEngine turns closed ledger buckets into digest rows. It runs a
// full pass over all cities: recap items land in the period they were created
// in, events one period ahead, and only buckets whose period has ended
// produce a digest. Recap items are marked published afterwards; events never
// are, so a future event keeps appearing until its period closes.
type PublicationEngine struct {
	ledger       LedgerStore
	updates      CityUpdateStore
	synthesizer  ContentSynthesizer
	digests      DigestPublisher
	cities       CitySource
	txManager    TransactionManager
	logger       *slog.Logger
	config       config.PublicationConfig
	mediaBaseURL string

	now func() time.Time
}

func NewPublicationEngine(
	ledger LedgerStore,
	updates CityUpdateStore,
	synthesizer ContentSynthesizer,
	digests DigestPublisher,
	cities CitySource,
	txManager TransactionManager,
	logger *slog.Logger,
	cfg config.PublicationConfig,
	mediaBaseURL string,
) *PublicationEngine {
	return &PublicationEngine{
		ledger:       ledger,
		updates:      updates,
		synthesizer:  synthesizer,
		digests:      digests,
		cities:       cities,
		txManager:    txManager,
		logger:       logger.With("pipeline", "publication"),
		config:       cfg,
		mediaBaseURL: mediaBaseURL,
		now:          time.Now,
	}
}

func (e *PublicationEngine) Run(ctx context.Context) (*domain.PublicationReport, error) {
	startTime := e.now()
	report := &domain.PublicationReport{}

	for _, city := range e.cities.Cities() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		e.processCity(ctx, city, report)
	}

	e.logger.Info("publication pass completed",
		"considered", report.Considered,
		"buckets_closed", report.BucketsClosed,
		"digests_upserted", report.DigestsUpserted,
		"items_published", report.ItemsPublished,
		"errors", report.Errors,
		"duration", e.now().Sub(startTime),
	)
	return report, nil
}

func (e *PublicationEngine) processCity(ctx context.Context, city domain.City, report *domain.PublicationReport) {
	// Recaps are bounded by the published flag, not by time: a stale
	// unpublished row must keep surfacing until it is published. Only the
	// event scan is time-bounded, since events are never marked published.
	recaps, err := e.ledger.ListUnpublishedRecap(ctx, city.Slug)
	if err != nil {
		e.logger.Error("list recap items failed", "city", city.Slug, "error", err)
		report.Errors++
		return
	}
	since := e.now().AddDate(0, -e.config.HistoryMonths, 0)
	events, err := e.ledger.ListEventsSince(ctx, city.Slug, since)
	if err != nil {
		e.logger.Error("list events failed", "city", city.Slug, "error", err)
		report.Errors++
		return
	}

	items := append(recaps, events...)
	report.Considered += len(items)

	buckets := e.groupIntoBuckets(items, report)

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !bucket.IsClosed(key, e.now(), e.config.Frequency) {
			continue
		}
		report.BucketsClosed++
		if err := e.publishBucket(ctx, city, key, buckets[key], report); err != nil {
			e.logger.Error("publish bucket failed", "city", city.Slug, "period_key", key, "error", err)
			report.Errors++
		}
	}
}

// groupIntoBuckets assigns every item to its period key, grouped by content
// type inside each bucket. Items whose payload lacks a usable timestamp are
// counted as errors and dropped.
func (e *PublicationEngine) groupIntoBuckets(items []domain.DiscoveredItem, report *domain.PublicationReport) map[string]map[domain.ContentType][]domain.DiscoveredItem {
	buckets := make(map[string]map[domain.ContentType][]domain.DiscoveredItem)
	for i := range items {
		item := items[i]
		createdAt, err := domain.ItemCreatedAt(&item)
		if err != nil {
			e.logger.Warn("skipping item without timestamp",
				"content_type", item.ContentType,
				"external_id", item.ExternalID,
				"error", err,
			)
			report.Errors++
			continue
		}
		key := bucket.Assign(createdAt, item.ContentType.IsPreview(), e.config.Frequency)
		if buckets[key] == nil {
			buckets[key] = make(map[domain.ContentType][]domain.DiscoveredItem)
		}
		buckets[key][item.ContentType] = append(buckets[key][item.ContentType], item)
	}
	return buckets
}

func (e *PublicationEngine) publishBucket(ctx context.Context, city domain.City, key string, grouped map[domain.ContentType][]domain.DiscoveredItem, report *domain.PublicationReport) error {
	publishDate, err := bucket.PublishDate(key, e.config.Frequency)
	if err != nil {
		return fmt.Errorf("resolve publish date: %w", err)
	}
	label, err := bucket.Label(key, e.config.Frequency)
	if err != nil {
		return fmt.Errorf("resolve period label: %w", err)
	}

	digest := e.synthesizeDigest(ctx, city, publishDate, label, grouped)

	existing, err := e.updates.GetByPeriod(ctx, city.Slug, key)
	if err != nil {
		return fmt.Errorf("load existing digest: %w", err)
	}
	isNew := existing == nil

	update := &domain.CityUpdate{
		CitySlug:         city.Slug,
		PeriodKey:        key,
		PostSlug:         Slugify(digest.Title),
		Title:            digest.Title,
		Summary:          digest.Summary,
		FeaturedImageURL: e.featuredImage(grouped),
		Body:             digest.Body,
		PublishDate:      publishDate,
	}

	recapIDs := make([]int64, 0)
	for contentType, bucketItems := range grouped {
		if contentType.IsPreview() {
			continue
		}
		for _, item := range bucketItems {
			recapIDs = append(recapIDs, item.ID)
		}
	}

	err = e.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := e.updates.Upsert(txCtx, update)
		if err != nil {
			return fmt.Errorf("upsert digest: %w", err)
		}
		update.ID = id
		return e.ledger.MarkPublished(txCtx, recapIDs)
	})
	if err != nil {
		return err
	}

	report.DigestsUpserted++
	report.ItemsPublished += len(recapIDs)

	// Broadcast is best effort; the digest row is already durable.
	if e.digests != nil {
		if err := e.digests.PublishDigest(ctx, update, isNew); err != nil {
			e.logger.Error("digest broadcast failed",
				"city", city.Slug,
				"period_key", key,
				"error", err,
			)
		}
	}

	e.logger.Info("bucket published",
		"city", city.Slug,
		"period_key", key,
		"items", len(recapIDs),
		"new", isNew,
	)
	return nil
}

// synthesizeDigest asks the AI synthesizer for the digest document and falls
// back to a plain template when synthesis is unavailable or fails.
func (e *PublicationEngine) synthesizeDigest(ctx context.Context, city domain.City, publishDate time.Time, label string, grouped map[domain.ContentType][]domain.DiscoveredItem) domain.Digest {
	if e.synthesizer != nil {
		digest, err := e.synthesizer.Synthesize(ctx, domain.SynthesisRequest{
			CityName:    city.Name,
			PublishDate: publishDate,
			PeriodLabel: label,
			Grouped:     grouped,
		})
		if err == nil {
			return digest
		}
		e.logger.Warn("synthesis failed, using fallback digest", "city", city.Slug, "error", err)
	}
	return FallbackDigest(city.Name, label, grouped)
}

// FallbackDigest builds a minimal digest from per-type counts alone.
func FallbackDigest(cityName, label string, grouped map[domain.ContentType][]domain.DiscoveredItem) domain.Digest {
	var b strings.Builder
	b.WriteString("<ul>")
	for _, contentType := range domain.DiscoveryTypes {
		if n := len(grouped[contentType]); n > 0 {
			fmt.Fprintf(&b, "<li>%d new %s items</li>", n, contentType)
		}
	}
	b.WriteString("</ul>")

	return domain.Digest{
		Title: fmt.Sprintf("%s Skate Update: %s", cityName, label),
		Body:  b.String(),
	}
}

// featuredImage picks an image for the digest by fixed priority: first event
// attachment, then a spot satellite shot, then the first reviewer's avatar.
func (e *PublicationEngine) featuredImage(grouped map[domain.ContentType][]domain.DiscoveredItem) *string {
	for _, item := range grouped[domain.ContentEvent] {
		attachmentID, eventID, err := domain.EventImageRef(item.Payload)
		if err != nil {
			continue
		}
		url := fmt.Sprintf("%s/roll-session/%s/attachments/%s/content/processed", e.mediaBaseURL, eventID, attachmentID)
		return &url
	}
	for _, item := range grouped[domain.ContentSpot] {
		satelliteID, err := domain.SpotSatelliteRef(item.Payload)
		if err != nil {
			continue
		}
		url := fmt.Sprintf("%s/spots/attachment/%s/content/processed", e.mediaBaseURL, satelliteID)
		return &url
	}
	for _, item := range grouped[domain.ContentReview] {
		userID, err := domain.ReviewerRef(item.Payload)
		if err != nil {
			continue
		}
		url := fmt.Sprintf("%s/user/%s/avatar/content/processed", e.mediaBaseURL, userID)
		return &url
	}
	return nil
}

// Slugify lowercases a title and collapses every non-alphanumeric run into a
// single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
