package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"city_pulse/internal/config"
	"city_pulse/internal/domain"
	"city_pulse/internal/service/mocks"
)

type ContactSyncTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockContentSource
	directory *mocks.MockContactDirectory
	cooldowns *mocks.MockCooldownStore
	lists     *mocks.MockListStore

	engine *ContactSyncEngine
	now    time.Time
	city   domain.City
}

func (s *ContactSyncTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockContentSource(s.ctrl)
	s.directory = mocks.NewMockContactDirectory(s.ctrl)
	s.cooldowns = mocks.NewMockCooldownStore(s.ctrl)
	s.lists = mocks.NewMockListStore(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.engine = NewContactSyncEngine(
		s.source, s.directory, s.cooldowns, s.lists, logger,
		config.ContactSyncConfig{ResyncPeriod: 7 * 24 * time.Hour, LookbackDays: 365},
		config.BrevoConfig{
			PrimaryAttribute:   "SKATENAME",
			SecondaryAttribute: "FIRSTNAME",
			ContactDelay:       200 * time.Millisecond,
			FolderID:           1,
		},
	)

	s.now = time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
	s.engine.now = func() time.Time { return s.now }
	s.engine.sleep = func(context.Context, time.Duration) {}

	s.city = domain.City{Slug: "berlin", Name: "Berlin", Latitude: 52.52, Longitude: 13.405, RadiusKM: 40}
}

func (s *ContactSyncTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestContactSyncTestSuite(t *testing.T) {
	suite.Run(t, new(ContactSyncTestSuite))
}

func (s *ContactSyncTestSuite) TestCityCandidates_SortedAndFiltered() {
	ctx := context.Background()

	s.source.EXPECT().FetchNearbySkaters(ctx, s.city.Latitude, s.city.Longitude, 365).Return(domain.NearbySkaters{
		Activities: []domain.NearbyActivity{
			{UserID: "far", DistanceMeters: 80000},
			{UserID: "near", DistanceMeters: 12000},
			{UserID: "near", DistanceMeters: 2000},
			{UserID: "mid", DistanceMeters: 20000},
		},
		Profiles: []domain.SkaterProfile{
			{UserID: "far", SkateName: "outsider"},
			{UserID: "mid", SkateName: "cruiser"},
			{UserID: "near", SkateName: "grinder"},
		},
	}, nil)

	candidates, err := s.engine.CityCandidates(ctx, s.city)

	s.NoError(err)
	s.Require().Len(candidates, 2)
	s.Equal("near", candidates[0].UserID)
	s.Equal(2.0, candidates[0].DistanceKM)
	s.Equal("mid", candidates[1].UserID)
}

func (s *ContactSyncTestSuite) TestEvaluate_CooldownSkips() {
	ctx := context.Background()
	profile := domain.SkaterProfile{UserID: "u1", SkateName: "grinder", DistanceKM: 2}

	s.cooldowns.EXPECT().Get(ctx, "grinder").Return(&domain.CooldownEntry{
		SkateName:    "grinder",
		LastSyncedAt: s.now.Add(-24 * time.Hour),
	}, nil)

	row, contact := s.engine.Evaluate(ctx, s.city, profile)

	s.Equal(domain.OutcomeWillSkip, row.Outcome)
	s.Contains(row.Reason, "synced")
	s.Nil(contact)
}

func (s *ContactSyncTestSuite) TestEvaluate_ExpiredCooldownSyncs() {
	ctx := context.Background()
	profile := domain.SkaterProfile{UserID: "u1", SkateName: "grinder", DistanceKM: 2}

	s.cooldowns.EXPECT().Get(ctx, "grinder").Return(&domain.CooldownEntry{
		SkateName:    "grinder",
		LastSyncedAt: s.now.Add(-8 * 24 * time.Hour),
	}, nil)
	s.directory.EXPECT().FindContactsByAttribute(ctx, "SKATENAME", "grinder").
		Return([]domain.Contact{{ID: 42, Email: "g@example.com"}}, nil)

	row, contact := s.engine.Evaluate(ctx, s.city, profile)

	s.Equal(domain.OutcomeWillSync, row.Outcome)
	s.Require().NotNil(contact)
	s.Equal(int64(42), contact.ID)
}

func (s *ContactSyncTestSuite) TestEvaluate_SecondaryAttributeFallback() {
	ctx := context.Background()
	profile := domain.SkaterProfile{UserID: "u1", SkateName: "grinder", DistanceKM: 2}

	s.cooldowns.EXPECT().Get(ctx, "grinder").Return(nil, nil)
	s.directory.EXPECT().FindContactsByAttribute(ctx, "SKATENAME", "grinder").Return(nil, nil)
	s.directory.EXPECT().FindContactsByAttribute(ctx, "FIRSTNAME", "grinder").
		Return([]domain.Contact{{ID: 7}}, nil)

	row, contact := s.engine.Evaluate(ctx, s.city, profile)

	s.Equal(domain.OutcomeWillSync, row.Outcome)
	s.Contains(row.Reason, "FIRSTNAME")
	s.NotNil(contact)
}

func (s *ContactSyncTestSuite) TestEvaluate_AmbiguousMatchSkips() {
	ctx := context.Background()
	profile := domain.SkaterProfile{UserID: "u1", SkateName: "grinder", DistanceKM: 2}

	s.cooldowns.EXPECT().Get(ctx, "grinder").Return(nil, nil)
	s.directory.EXPECT().FindContactsByAttribute(ctx, "SKATENAME", "grinder").
		Return([]domain.Contact{{ID: 1}, {ID: 2}}, nil)
	s.directory.EXPECT().FindContactsByAttribute(ctx, "FIRSTNAME", "grinder").
		Return([]domain.Contact{{ID: 1}, {ID: 2}}, nil)

	row, contact := s.engine.Evaluate(ctx, s.city, profile)

	s.Equal(domain.OutcomeWillSkip, row.Outcome)
	s.Equal("2 contacts match", row.Reason)
	s.Nil(contact)
}

func (s *ContactSyncTestSuite) TestEvaluate_AmbiguousPrimaryResolvedBySecondary() {
	ctx := context.Background()
	profile := domain.SkaterProfile{UserID: "u1", SkateName: "grinder", DistanceKM: 2}

	// Several contacts share the skate name, but the secondary attribute
	// narrows it to one.
	s.cooldowns.EXPECT().Get(ctx, "grinder").Return(nil, nil)
	s.directory.EXPECT().FindContactsByAttribute(ctx, "SKATENAME", "grinder").
		Return([]domain.Contact{{ID: 1}, {ID: 2}}, nil)
	s.directory.EXPECT().FindContactsByAttribute(ctx, "FIRSTNAME", "grinder").
		Return([]domain.Contact{{ID: 7}}, nil)

	row, contact := s.engine.Evaluate(ctx, s.city, profile)

	s.Equal(domain.OutcomeWillSync, row.Outcome)
	s.Contains(row.Reason, "FIRSTNAME")
	s.Require().NotNil(contact)
	s.Equal(int64(7), contact.ID)
}

func (s *ContactSyncTestSuite) TestEvaluate_NoSkateNameSkips() {
	row, contact := s.engine.Evaluate(context.Background(), s.city, domain.SkaterProfile{UserID: "u1"})

	s.Equal(domain.OutcomeWillSkip, row.Outcome)
	s.Equal("no skate name", row.Reason)
	s.Nil(contact)
}

func (s *ContactSyncTestSuite) TestProcessCity_SyncsAndRecordsCooldown() {
	ctx := context.Background()

	s.source.EXPECT().FetchNearbySkaters(ctx, s.city.Latitude, s.city.Longitude, 365).Return(domain.NearbySkaters{
		Activities: []domain.NearbyActivity{{UserID: "u1", DistanceMeters: 2000}},
		Profiles:   []domain.SkaterProfile{{UserID: "u1", SkateName: "grinder"}},
	}, nil)

	// No local mapping and nothing matching remotely: list gets created.
	s.lists.EXPECT().Get(ctx, "Berlin").Return(int64(0), false, nil)
	s.directory.EXPECT().Lists(ctx).Return([]domain.MailingList{{ID: 5, Name: "Paris"}}, nil)
	s.directory.EXPECT().CreateList(ctx, "Berlin", int64(1)).Return(int64(9), nil)
	s.lists.EXPECT().Put(ctx, "Berlin", int64(9)).Return(nil)

	s.cooldowns.EXPECT().Get(ctx, "grinder").Return(nil, nil)
	s.directory.EXPECT().FindContactsByAttribute(ctx, "SKATENAME", "grinder").
		Return([]domain.Contact{{ID: 42}}, nil)
	s.directory.EXPECT().AddContactToList(ctx, int64(42), int64(9)).Return(nil)
	s.cooldowns.EXPECT().Put(ctx, &domain.CooldownEntry{
		SkateName:    "grinder",
		CityName:     "Berlin",
		LastSyncedAt: s.now,
	}).Return(nil)

	err := s.engine.ProcessCity(ctx, s.city)
	s.NoError(err)
}

func (s *ContactSyncTestSuite) TestProcessCity_ReusesRemoteList() {
	ctx := context.Background()

	s.source.EXPECT().FetchNearbySkaters(ctx, s.city.Latitude, s.city.Longitude, 365).Return(domain.NearbySkaters{
		Activities: []domain.NearbyActivity{{UserID: "u1", DistanceMeters: 2000}},
		Profiles:   []domain.SkaterProfile{{UserID: "u1", SkateName: ""}},
	}, nil)

	s.lists.EXPECT().Get(ctx, "Berlin").Return(int64(0), false, nil)
	s.directory.EXPECT().Lists(ctx).Return([]domain.MailingList{{ID: 5, Name: "Berlin"}}, nil)
	s.lists.EXPECT().Put(ctx, "Berlin", int64(5)).Return(nil)

	// The only candidate has no skate name, so nothing else happens.
	err := s.engine.ProcessCity(ctx, s.city)
	s.NoError(err)
}

func (s *ContactSyncTestSuite) TestProcessCity_AuthErrorPropagates() {
	ctx := context.Background()

	s.source.EXPECT().FetchNearbySkaters(ctx, s.city.Latitude, s.city.Longitude, 365).
		Return(domain.NearbySkaters{}, &domain.AuthError{Err: fmt.Errorf("token rejected")})

	err := s.engine.ProcessCity(ctx, s.city)

	s.Error(err)
	s.True(isAuthErr(err))
}
