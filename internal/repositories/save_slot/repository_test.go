package saveslot_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/clock"
	saveslot "github.com/KirkDiggler/trivia-quest/internal/repositories/save_slot"
	"github.com/KirkDiggler/trivia-quest/internal/testutils"
)

const testKey = "player-one"

// RepositoryTestSuite runs the same contract against every backend
type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.Manual
	newRepo func() (saveslot.Repository, func())
	repo    saveslot.Repository
	cleanup func()
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewManual(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))
	s.repo, s.cleanup = s.newRepo()
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, saveslot.GetInput{Key: testKey})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestSetThenGet() {
	out, err := s.repo.Set(s.ctx, saveslot.SetInput{Key: testKey, Payload: []byte(`{"coins":10}`)})
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), out.UpdatedAt)

	got, err := s.repo.Get(s.ctx, saveslot.GetInput{Key: testKey})
	s.Require().NoError(err)
	s.JSONEq(`{"coins":10}`, string(got.Payload))
	s.True(got.UpdatedAt.Equal(s.clock.Now()))
}

func (s *RepositoryTestSuite) TestSetOverwrites() {
	_, err := s.repo.Set(s.ctx, saveslot.SetInput{Key: testKey, Payload: []byte(`{"coins":10}`)})
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	_, err = s.repo.Set(s.ctx, saveslot.SetInput{Key: testKey, Payload: []byte(`{"coins":99}`)})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, saveslot.GetInput{Key: testKey})
	s.Require().NoError(err)
	s.JSONEq(`{"coins":99}`, string(got.Payload))
	s.True(got.UpdatedAt.Equal(s.clock.Now()))
}

func (s *RepositoryTestSuite) TestKeysAreIndependent() {
	_, err := s.repo.Set(s.ctx, saveslot.SetInput{Key: "a", Payload: []byte(`{"zone":1}`)})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, saveslot.GetInput{Key: "b"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestValidation() {
	testCases := []struct {
		name string
		run  func() error
	}{
		{
			name: "get with empty key",
			run: func() error {
				_, err := s.repo.Get(s.ctx, saveslot.GetInput{})
				return err
			},
		},
		{
			name: "set with empty key",
			run: func() error {
				_, err := s.repo.Set(s.ctx, saveslot.SetInput{Payload: []byte(`{}`)})
				return err
			},
		},
		{
			name: "set with empty payload",
			run: func() error {
				_, err := s.repo.Set(s.ctx, saveslot.SetInput{Key: testKey})
				return err
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.run()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func TestInMemoryRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (saveslot.Repository, func()) {
		return saveslot.NewInMemory(s.clock), nil
	}
	suite.Run(t, s)
}

func TestRedisRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (saveslot.Repository, func()) {
		rdb := testutils.NewTestRedis(s.T())
		repo, err := saveslot.NewRedis(&saveslot.RedisConfig{Client: rdb.Client, Clock: s.clock})
		s.Require().NoError(err)
		return repo, nil
	}
	suite.Run(t, s)
}

func TestSQLiteRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() (saveslot.Repository, func()) {
		db, err := saveslot.OpenSQLite(filepath.Join(s.T().TempDir(), "saves.db"))
		s.Require().NoError(err)
		repo, err := saveslot.NewSQLite(s.ctx, &saveslot.SQLiteConfig{DB: db, Clock: s.clock})
		s.Require().NoError(err)
		return repo, func() { _ = db.Close() }
	}
	suite.Run(t, s)
}

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestNewRedisValidation() {
	testCases := []struct {
		name   string
		config *saveslot.RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "nil client", config: &saveslot.RedisConfig{Clock: clock.New()}, errMsg: "redis client is required"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := saveslot.NewRedis(tc.config)
			s.Require().Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(repo)
		})
	}
}

func (s *ConfigTestSuite) TestNewSQLiteValidation() {
	repo, err := saveslot.NewSQLite(context.Background(), &saveslot.SQLiteConfig{Clock: clock.New()})
	s.Require().Error(err)
	s.Contains(err.Error(), "database is required")
	s.Nil(repo)

	_, err = saveslot.OpenSQLite("")
	s.True(errors.IsInvalidArgument(err))
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
