package domain

import (
	"encoding/json"
	"time"
)

// ContentType identifies the kind of item recorded in the discovery ledger.
type ContentType string

const (
	ContentSpot    ContentType = "spot"
	ContentEvent   ContentType = "event"
	ContentReview  ContentType = "review"
	ContentSession ContentType = "session"
	ContentSkater  ContentType = "skater"
)

// DiscoveryTypes is the fixed processing order within one city.
var DiscoveryTypes = []ContentType{ContentSpot, ContentEvent, ContentReview, ContentSession, ContentSkater}

// IsPreview reports whether items of this type are bucketed one period ahead
// of their start date (events) instead of the period they were created in.
func (c ContentType) IsPreview() bool {
	return c == ContentEvent
}

// DiscoveredItem is one ledger row. An item is recorded at most once ever:
// (ExternalID, ContentType) carries a unique constraint, and IsPublished only
// moves false -> true.
type DiscoveredItem struct {
	ID           int64           `db:"id"`
	ContentType  ContentType     `db:"content_type"`
	ExternalID   string          `db:"external_id"`
	CitySlug     string          `db:"city_slug"`
	DiscoveredAt time.Time       `db:"discovered_at"`
	Payload      json.RawMessage `db:"payload"`
	IsPublished  bool            `db:"is_published"`
}

// SeenSkater records the first sighting of a user in a city. Skater discovery
// keys on "never seen here before" rather than a creation-time window.
type SeenSkater struct {
	UserExternalID string    `db:"user_external_id"`
	CitySlug       string    `db:"city_slug"`
	FirstSeenAt    time.Time `db:"first_seen_at"`
}

// CityUpdate is the synthesized digest document for one (city, bucket).
// PeriodKey is the bucket key the row was produced from; (CitySlug, PeriodKey)
// is unique so re-running aggregation overwrites instead of duplicating.
type CityUpdate struct {
	ID               int64     `db:"id" json:"id"`
	CitySlug         string    `db:"city_slug" json:"city_slug"`
	PeriodKey        string    `db:"period_key" json:"period_key"`
	PostSlug         string    `db:"post_slug" json:"post_slug"`
	Title            string    `db:"title" json:"title"`
	Summary          string    `db:"summary" json:"summary"`
	FeaturedImageURL *string   `db:"featured_image_url" json:"featured_image_url,omitempty"`
	Body             string    `db:"body" json:"body"`
	PublishDate      time.Time `db:"publish_date" json:"publish_date"`
}

// CooldownEntry suppresses re-syncing a skater to the mailing platform until
// the configured resync period has elapsed. Keyed by skate name, not a stable
// user id, matching how list membership history is keyed.
type CooldownEntry struct {
	SkateName    string    `db:"skate_name"`
	CityName     string    `db:"city_name"`
	LastSyncedAt time.Time `db:"last_synced_at"`
}
