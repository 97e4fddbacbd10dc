package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"city_pulse/internal/domain"
	"city_pulse/internal/geo"
)

type LedgerStore interface {
	Insert(ctx context.Context, item *domain.DiscoveredItem) (bool, error)
	ListUnpublishedRecap(ctx context.Context, citySlug string) ([]domain.DiscoveredItem, error)
	ListEventsSince(ctx context.Context, citySlug string, since time.Time) ([]domain.DiscoveredItem, error)
	MarkPublished(ctx context.Context, ids []int64) error
}

type SeenSkaterStore interface {
	Seen(ctx context.Context, userExternalID, citySlug string) (bool, error)
	Record(ctx context.Context, skater *domain.SeenSkater) error
}

type CityUpdateStore interface {
	Upsert(ctx context.Context, update *domain.CityUpdate) (int64, error)
	GetByPeriod(ctx context.Context, citySlug, periodKey string) (*domain.CityUpdate, error)
}

type QueueStore interface {
	Get(ctx context.Context, pipeline domain.Pipeline) (*domain.Queue, error)
	Save(ctx context.Context, queue *domain.Queue) error
	Delete(ctx context.Context, pipeline domain.Pipeline) error
}

type CooldownStore interface {
	Get(ctx context.Context, skateName string) (*domain.CooldownEntry, error)
	Put(ctx context.Context, entry *domain.CooldownEntry) error
}

type ListStore interface {
	Get(ctx context.Context, cityName string) (int64, bool, error)
	Put(ctx context.Context, cityName string, listID int64) error
	All(ctx context.Context) (map[string]int64, error)
}

type ContentSource interface {
	FetchSpots(ctx context.Context, box geo.Box) ([]domain.Candidate, error)
	FetchEvents(ctx context.Context, box geo.Box) ([]domain.Candidate, error)
	FetchSpotReviews(ctx context.Context, spotID string) ([]domain.Candidate, error)
	FetchSpotSessions(ctx context.Context, spotID string) ([]domain.SessionSummary, error)
	FetchSessionDetail(ctx context.Context, sessionID string) (domain.Candidate, error)
	FetchNearbySkaters(ctx context.Context, lat, lng float64, sinceDays int) (domain.NearbySkaters, error)
}

type ContactDirectory interface {
	FindContactsByAttribute(ctx context.Context, attribute, value string) ([]domain.Contact, error)
	AddContactToList(ctx context.Context, contactID, listID int64) error
	Lists(ctx context.Context) ([]domain.MailingList, error)
	CreateList(ctx context.Context, name string, folderID int64) (int64, error)
}

type ContentSynthesizer interface {
	Synthesize(ctx context.Context, req domain.SynthesisRequest) (domain.Digest, error)
}

type DigestPublisher interface {
	PublishDigest(ctx context.Context, update *domain.CityUpdate, isNew bool) error
	Close() error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CitySource interface {
	Cities() []domain.City
}

// TickScheduler arms a one-shot wakeup for the queue runner.
type TickScheduler interface {
	ScheduleOnce(delay time.Duration)
}

// CityProcessor is one pipeline's per-city unit of work, driven by the
// queue runner.
type CityProcessor interface {
	Pipeline() domain.Pipeline
	ProcessCity(ctx context.Context, city domain.City) error
}
