package domain

import "time"

// DiscoveryReport holds per-city discovery statistics, for logging only.
type DiscoveryReport struct {
	CitySlug string
	Fetched  map[ContentType]int
	Inserted map[ContentType]int
	Errors   int
	Duration time.Duration
}

func NewDiscoveryReport(citySlug string) *DiscoveryReport {
	return &DiscoveryReport{
		CitySlug: citySlug,
		Fetched:  make(map[ContentType]int),
		Inserted: make(map[ContentType]int),
	}
}

// PublicationReport summarizes one publication pass.
type PublicationReport struct {
	Considered      int `json:"considered"`
	BucketsClosed   int `json:"buckets_closed"`
	DigestsUpserted int `json:"digests_upserted"`
	ItemsPublished  int `json:"items_published"`
	Errors          int `json:"errors"`
}

// SyncOutcome classifies one skater during contact sync or a dry run.
type SyncOutcome string

const (
	OutcomeWillSync SyncOutcome = "Will Sync"
	OutcomeWillSkip SyncOutcome = "Will Skip"
)

// ReportRow is one line of the dry-run report.
type ReportRow struct {
	CityName   string      `json:"city_name"`
	SkateName  string      `json:"skate_name"`
	DistanceKM float64     `json:"distance_km"`
	Outcome    SyncOutcome `json:"outcome"`
	Reason     string      `json:"reason"`
}

// SynthesisRequest is the structured payload handed to the content
// synthesizer: city, target publish date, and the new items grouped by type.
type SynthesisRequest struct {
	CityName    string
	PublishDate time.Time
	PeriodLabel string
	Grouped     map[ContentType][]DiscoveredItem
}

// Digest is a successful synthesis result.
type Digest struct {
	Title   string
	Summary string
	Body    string
}
