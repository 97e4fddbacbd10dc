package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"city_pulse/internal/bucket"
	"city_pulse/internal/config"
	"city_pulse/internal/domain"
	"city_pulse/internal/service/mocks"
)

type PublicationEngineTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	ledger      *mocks.MockLedgerStore
	updates     *mocks.MockCityUpdateStore
	synthesizer *mocks.MockContentSynthesizer
	digests     *mocks.MockDigestPublisher
	cities      *mocks.MockCitySource
	txManager   *mocks.MockTransactionManager

	engine *PublicationEngine
	now    time.Time
	city   domain.City
}

func (s *PublicationEngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.ledger = mocks.NewMockLedgerStore(s.ctrl)
	s.updates = mocks.NewMockCityUpdateStore(s.ctrl)
	s.synthesizer = mocks.NewMockContentSynthesizer(s.ctrl)
	s.digests = mocks.NewMockDigestPublisher(s.ctrl)
	s.cities = mocks.NewMockCitySource(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.engine = NewPublicationEngine(
		s.ledger, s.updates, s.synthesizer, s.digests, s.cities, s.txManager,
		logger,
		config.PublicationConfig{Frequency: bucket.Weekly, HistoryMonths: 6},
		"https://media.example.com",
	)

	s.now = time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
	s.engine.now = func() time.Time { return s.now }

	s.city = domain.City{Slug: "berlin", Name: "Berlin"}
	s.cities.EXPECT().Cities().Return([]domain.City{s.city}).AnyTimes()

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func (s *PublicationEngineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPublicationEngineTestSuite(t *testing.T) {
	suite.Run(t, new(PublicationEngineTestSuite))
}

func spotItem(id int64, externalID, createdAt string) domain.DiscoveredItem {
	payload := fmt.Sprintf(`{"_id":%q,"createdAt":%q,"spotWithAddress":{"name":"Spot"}}`, externalID, createdAt)
	return domain.DiscoveredItem{
		ID:          id,
		ContentType: domain.ContentSpot,
		ExternalID:  externalID,
		CitySlug:    "berlin",
		Payload:     json.RawMessage(payload),
	}
}

func eventItem(id int64, externalID, startDate string) domain.DiscoveredItem {
	payload := fmt.Sprintf(`{"_id":%q,"event":{"startDate":%q},"createdAt":"2025-01-01T00:00:00Z"}`, externalID, startDate)
	return domain.DiscoveredItem{
		ID:          id,
		ContentType: domain.ContentEvent,
		ExternalID:  externalID,
		CitySlug:    "berlin",
		Payload:     json.RawMessage(payload),
	}
}

// Three spots across two ISO weeks, both already over at the reference time:
// two digests come out and all three rows get marked published.
func (s *PublicationEngineTestSuite) TestRun_ClosedWeeksPublished() {
	ctx := context.Background()

	recaps := []domain.DiscoveredItem{
		spotItem(1, "s1", "2025-06-02T10:00:00Z"), // week 23
		spotItem(2, "s2", "2025-06-05T10:00:00Z"), // week 23
		spotItem(3, "s3", "2025-06-10T10:00:00Z"), // week 24
	}

	s.ledger.EXPECT().ListUnpublishedRecap(ctx, "berlin").Return(recaps, nil)
	s.ledger.EXPECT().ListEventsSince(ctx, "berlin", gomock.Any()).Return(nil, nil)

	s.synthesizer.EXPECT().Synthesize(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.SynthesisRequest) (domain.Digest, error) {
			return domain.Digest{
				Title:   "Berlin Skate Update: " + req.PeriodLabel,
				Summary: "summary",
				Body:    "<p>body</p>",
			}, nil
		},
	).Times(2)

	s.updates.EXPECT().GetByPeriod(ctx, "berlin", "2025-23").Return(nil, nil)
	s.updates.EXPECT().GetByPeriod(ctx, "berlin", "2025-24").Return(nil, nil)

	var upserted []*domain.CityUpdate
	s.updates.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, update *domain.CityUpdate) (int64, error) {
			upserted = append(upserted, update)
			return int64(len(upserted)), nil
		},
	).Times(2)

	var published []int64
	s.ledger.EXPECT().MarkPublished(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ids []int64) error {
			published = append(published, ids...)
			return nil
		},
	).Times(2)

	s.digests.EXPECT().PublishDigest(ctx, gomock.Any(), true).Return(nil).Times(2)

	report, err := s.engine.Run(ctx)

	s.NoError(err)
	s.Equal(3, report.Considered)
	s.Equal(2, report.BucketsClosed)
	s.Equal(2, report.DigestsUpserted)
	s.Equal(3, report.ItemsPublished)
	s.Equal(0, report.Errors)

	s.Require().Len(upserted, 2)
	s.Equal("2025-23", upserted[0].PeriodKey)
	s.Equal("2025-24", upserted[1].PeriodKey)
	s.Equal(time.Date(2025, 6, 8, 23, 59, 59, 0, time.UTC), upserted[0].PublishDate)
	s.ElementsMatch([]int64{1, 2, 3}, published)
}

func (s *PublicationEngineTestSuite) TestRun_OpenBucketSkipped() {
	ctx := context.Background()

	// Created in the current ISO week; the bucket is still open.
	recaps := []domain.DiscoveredItem{spotItem(1, "s1", "2025-06-19T10:00:00Z")}

	s.ledger.EXPECT().ListUnpublishedRecap(ctx, "berlin").Return(recaps, nil)
	s.ledger.EXPECT().ListEventsSince(ctx, "berlin", gomock.Any()).Return(nil, nil)

	report, err := s.engine.Run(ctx)

	s.NoError(err)
	s.Equal(1, report.Considered)
	s.Equal(0, report.BucketsClosed)
	s.Equal(0, report.DigestsUpserted)
}

// An event starting next week is assigned to this week's preview bucket,
// which is still open, so nothing publishes; and events never get marked
// published even once their bucket closes.
func (s *PublicationEngineTestSuite) TestRun_EventsPreviewAndNeverMarked() {
	ctx := context.Background()

	closedEvent := eventItem(10, "ev-past", "2025-06-04T18:00:00Z") // preview bucket = week 22, closed

	s.ledger.EXPECT().ListUnpublishedRecap(ctx, "berlin").Return(nil, nil)
	s.ledger.EXPECT().ListEventsSince(ctx, "berlin", gomock.Any()).Return([]domain.DiscoveredItem{closedEvent}, nil)

	s.synthesizer.EXPECT().Synthesize(ctx, gomock.Any()).Return(domain.Digest{Title: "t", Body: "b"}, nil)
	s.updates.EXPECT().GetByPeriod(ctx, "berlin", "2025-22").Return(nil, nil)
	s.updates.EXPECT().Upsert(ctx, gomock.Any()).Return(int64(1), nil)
	s.ledger.EXPECT().MarkPublished(ctx, []int64{}).Return(nil)
	s.digests.EXPECT().PublishDigest(ctx, gomock.Any(), true).Return(nil)

	report, err := s.engine.Run(ctx)

	s.NoError(err)
	s.Equal(1, report.BucketsClosed)
	s.Equal(0, report.ItemsPublished)
}

func (s *PublicationEngineTestSuite) TestRun_SynthesisFailureFallsBack() {
	ctx := context.Background()

	recaps := []domain.DiscoveredItem{spotItem(1, "s1", "2025-06-02T10:00:00Z")}

	s.ledger.EXPECT().ListUnpublishedRecap(ctx, "berlin").Return(recaps, nil)
	s.ledger.EXPECT().ListEventsSince(ctx, "berlin", gomock.Any()).Return(nil, nil)

	s.synthesizer.EXPECT().Synthesize(ctx, gomock.Any()).
		Return(domain.Digest{}, fmt.Errorf("model unavailable"))

	s.updates.EXPECT().GetByPeriod(ctx, "berlin", "2025-23").Return(nil, nil)
	s.updates.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, update *domain.CityUpdate) (int64, error) {
			s.Contains(update.Title, "Berlin Skate Update:")
			s.Contains(update.Body, "1 new spot items")
			return int64(1), nil
		},
	)
	s.ledger.EXPECT().MarkPublished(ctx, []int64{1}).Return(nil)
	s.digests.EXPECT().PublishDigest(ctx, gomock.Any(), true).Return(nil)

	report, err := s.engine.Run(ctx)

	s.NoError(err)
	s.Equal(1, report.DigestsUpserted)
}

func (s *PublicationEngineTestSuite) TestRun_ExistingDigestUpdated() {
	ctx := context.Background()

	recaps := []domain.DiscoveredItem{spotItem(1, "s1", "2025-06-02T10:00:00Z")}

	s.ledger.EXPECT().ListUnpublishedRecap(ctx, "berlin").Return(recaps, nil)
	s.ledger.EXPECT().ListEventsSince(ctx, "berlin", gomock.Any()).Return(nil, nil)

	s.synthesizer.EXPECT().Synthesize(ctx, gomock.Any()).Return(domain.Digest{Title: "t", Body: "b"}, nil)
	s.updates.EXPECT().GetByPeriod(ctx, "berlin", "2025-23").
		Return(&domain.CityUpdate{ID: 7, CitySlug: "berlin", PeriodKey: "2025-23"}, nil)
	s.updates.EXPECT().Upsert(ctx, gomock.Any()).Return(int64(7), nil)
	s.ledger.EXPECT().MarkPublished(ctx, []int64{1}).Return(nil)
	s.digests.EXPECT().PublishDigest(ctx, gomock.Any(), false).Return(nil)

	_, err := s.engine.Run(ctx)
	s.NoError(err)
}

func TestFeaturedImagePriority(t *testing.T) {
	engine := &PublicationEngine{mediaBaseURL: "https://media.example.com"}

	eventWithImage := domain.DiscoveredItem{
		ContentType: domain.ContentEvent,
		Payload:     json.RawMessage(`{"_id":"ev1","attachments":[{"_id":"att1"}]}`),
	}
	spotWithSatellite := domain.DiscoveredItem{
		ContentType: domain.ContentSpot,
		Payload:     json.RawMessage(`{"_id":"s1","spotWithAddress":{"satelliteAttachment":"sat1"}}`),
	}
	review := domain.DiscoveredItem{
		ContentType: domain.ContentReview,
		Payload:     json.RawMessage(`{"user_id":"u1"}`),
	}

	url := engine.featuredImage(map[domain.ContentType][]domain.DiscoveredItem{
		domain.ContentEvent:  {eventWithImage},
		domain.ContentSpot:   {spotWithSatellite},
		domain.ContentReview: {review},
	})
	assert.Equal(t, "https://media.example.com/roll-session/ev1/attachments/att1/content/processed", *url)

	url = engine.featuredImage(map[domain.ContentType][]domain.DiscoveredItem{
		domain.ContentSpot:   {spotWithSatellite},
		domain.ContentReview: {review},
	})
	assert.Equal(t, "https://media.example.com/spots/attachment/sat1/content/processed", *url)

	url = engine.featuredImage(map[domain.ContentType][]domain.DiscoveredItem{
		domain.ContentReview: {review},
	})
	assert.Equal(t, "https://media.example.com/user/u1/avatar/content/processed", *url)

	url = engine.featuredImage(map[domain.ContentType][]domain.DiscoveredItem{})
	assert.Nil(t, url)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "berlin-skate-update-week-of-june-2-2025", Slugify("Berlin Skate Update: Week of June 2, 2025"))
	assert.Equal(t, "munich-2025", Slugify("  Munich  2025! "))
	assert.Equal(t, "", Slugify("!!!"))
}
