package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"city_pulse/internal/config"
	"city_pulse/internal/domain"
	"city_pulse/internal/service/mocks"
)

type ReportServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockContentSource
	directory *mocks.MockContactDirectory
	cooldowns *mocks.MockCooldownStore
	lists     *mocks.MockListStore
	cities    *mocks.MockCitySource

	reports *ReportService
	now     time.Time
	berlin  domain.City
	paris   domain.City
}

func (s *ReportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockContentSource(s.ctrl)
	s.directory = mocks.NewMockContactDirectory(s.ctrl)
	s.cooldowns = mocks.NewMockCooldownStore(s.ctrl)
	s.lists = mocks.NewMockListStore(s.ctrl)
	s.cities = mocks.NewMockCitySource(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	engine := NewContactSyncEngine(
		s.source, s.directory, s.cooldowns, s.lists, logger,
		config.ContactSyncConfig{ResyncPeriod: 7 * 24 * time.Hour, LookbackDays: 365},
		config.BrevoConfig{PrimaryAttribute: "SKATENAME"},
	)

	s.now = time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
	engine.now = func() time.Time { return s.now }

	s.reports = NewReportService(engine, s.cities, logger, 30*time.Minute)
	s.reports.now = func() time.Time { return s.now }

	s.berlin = domain.City{Slug: "berlin", Name: "Berlin", Latitude: 52.52, Longitude: 13.405, RadiusKM: 40}
	s.paris = domain.City{Slug: "paris", Name: "Paris", Latitude: 48.85, Longitude: 2.35, RadiusKM: 35}
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) TestDryRun_FullPass() {
	ctx := context.Background()

	s.cities.EXPECT().Cities().Return([]domain.City{s.berlin, s.paris}).AnyTimes()
	queue, total := s.reports.Start()
	s.Equal(2, total)
	s.Equal([]string{"berlin", "paris"}, queue)

	// Berlin: one matchable skater.
	s.source.EXPECT().FetchNearbySkaters(ctx, s.berlin.Latitude, s.berlin.Longitude, 365).Return(domain.NearbySkaters{
		Activities: []domain.NearbyActivity{{UserID: "u1", DistanceMeters: 2500}},
		Profiles:   []domain.SkaterProfile{{UserID: "u1", SkateName: "grinder"}},
	}, nil)
	s.cooldowns.EXPECT().Get(ctx, "grinder").Return(nil, nil)
	s.directory.EXPECT().FindContactsByAttribute(ctx, "SKATENAME", "grinder").
		Return([]domain.Contact{{ID: 42}}, nil)

	batch, err := s.reports.Step(ctx, queue)
	s.NoError(err)
	s.Equal("Berlin", batch.City)
	s.Equal([]string{"paris"}, batch.Remaining)
	s.False(batch.Done)
	s.Require().Len(batch.Rows, 1)
	s.Equal(domain.OutcomeWillSync, batch.Rows[0].Outcome)
	s.Equal(2.5, batch.Rows[0].DistanceKM)

	// Paris: nobody around.
	s.source.EXPECT().FetchNearbySkaters(ctx, s.paris.Latitude, s.paris.Longitude, 365).
		Return(domain.NearbySkaters{}, nil)

	batch, err = s.reports.Step(ctx, batch.Remaining)
	s.NoError(err)
	s.Empty(batch.Remaining)
	s.True(batch.Done)

	var buf bytes.Buffer
	s.NoError(s.reports.WriteCSV(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	s.Require().Len(lines, 2)
	s.Equal("city,skate_name,distance_km,outcome,reason", lines[0])
	s.Contains(lines[1], "Berlin,grinder,2.50,Will Sync")
}

func (s *ReportServiceTestSuite) TestDryRun_WritesNothing() {
	ctx := context.Background()

	s.cities.EXPECT().Cities().Return([]domain.City{s.berlin}).AnyTimes()
	queue, _ := s.reports.Start()

	s.source.EXPECT().FetchNearbySkaters(ctx, s.berlin.Latitude, s.berlin.Longitude, 365).Return(domain.NearbySkaters{
		Activities: []domain.NearbyActivity{{UserID: "u1", DistanceMeters: 2500}},
		Profiles:   []domain.SkaterProfile{{UserID: "u1", SkateName: "grinder"}},
	}, nil)
	s.cooldowns.EXPECT().Get(ctx, "grinder").Return(nil, nil)
	s.directory.EXPECT().FindContactsByAttribute(ctx, "SKATENAME", "grinder").
		Return([]domain.Contact{{ID: 42}}, nil)
	// No AddContactToList, no cooldown Put, no list creation.

	_, err := s.reports.Step(ctx, queue)
	s.NoError(err)
}

func (s *ReportServiceTestSuite) TestStep_WithoutStartFails() {
	_, err := s.reports.Step(context.Background(), []string{"berlin"})
	s.ErrorContains(err, "no dry run in progress")
}

func (s *ReportServiceTestSuite) TestStep_UnknownCityInQueue() {
	s.cities.EXPECT().Cities().Return([]domain.City{s.berlin}).AnyTimes()
	s.reports.Start()

	_, err := s.reports.Step(context.Background(), []string{"atlantis"})
	s.ErrorContains(err, "unknown city")
}

func (s *ReportServiceTestSuite) TestStep_FailedFetchKeepsQueueReplayable() {
	ctx := context.Background()

	s.cities.EXPECT().Cities().Return([]domain.City{s.berlin}).AnyTimes()
	queue, _ := s.reports.Start()

	s.source.EXPECT().FetchNearbySkaters(ctx, s.berlin.Latitude, s.berlin.Longitude, 365).
		Return(domain.NearbySkaters{}, fmt.Errorf("upstream down"))
	_, err := s.reports.Step(ctx, queue)
	s.Error(err)

	// Retrying with the same queue succeeds.
	s.source.EXPECT().FetchNearbySkaters(ctx, s.berlin.Latitude, s.berlin.Longitude, 365).
		Return(domain.NearbySkaters{}, nil)
	batch, err := s.reports.Step(ctx, queue)
	s.NoError(err)
	s.Equal("Berlin", batch.City)
	s.True(batch.Done)
}

func (s *ReportServiceTestSuite) TestReportExpires() {
	s.cities.EXPECT().Cities().Return([]domain.City{s.berlin}).AnyTimes()
	queue, _ := s.reports.Start()

	s.now = s.now.Add(31 * time.Minute)

	_, err := s.reports.Step(context.Background(), queue)
	s.ErrorContains(err, "expired")

	_, err = s.reports.Rows()
	s.ErrorContains(err, "no dry run in progress")
}

func (s *ReportServiceTestSuite) TestStart_ResetsPreviousRun() {
	ctx := context.Background()

	s.cities.EXPECT().Cities().Return([]domain.City{s.berlin}).AnyTimes()
	queue, _ := s.reports.Start()

	s.source.EXPECT().FetchNearbySkaters(ctx, s.berlin.Latitude, s.berlin.Longitude, 365).
		Return(domain.NearbySkaters{}, nil)
	batch, err := s.reports.Step(ctx, queue)
	s.NoError(err)
	s.True(batch.Done)

	s.reports.Start()
	rows, err := s.reports.Rows()
	s.NoError(err)
	s.Empty(rows)
}
