package saveslot_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/clock"
	saveslot "github.com/KirkDiggler/trivia-quest/internal/repositories/save_slot"
	"github.com/KirkDiggler/trivia-quest/internal/testutils"
)

// RedisLayoutTestSuite checks what the Redis store leaves on the server,
// which the inspect-saves script depends on
type RedisLayoutTestSuite struct {
	suite.Suite
	ctx   context.Context
	clock *clock.Manual
	rdb   *testutils.TestRedis
	repo  saveslot.Repository
}

func TestRedisLayoutTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLayoutTestSuite))
}

func (s *RedisLayoutTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewManual(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC))
	s.rdb = testutils.NewTestRedis(s.T())

	repo, err := saveslot.NewRedis(&saveslot.RedisConfig{Client: s.rdb.Client, Clock: s.clock})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisLayoutTestSuite) TestSaveIsAPrefixedHashWithoutTTL() {
	_, err := s.repo.Set(s.ctx, saveslot.SetInput{Key: testKey, Payload: []byte(`{"zone":4}`)})
	s.Require().NoError(err)

	key := saveslot.KeyPrefix + testKey
	s.True(s.rdb.Server.Exists(key))
	s.Equal(`{"zone":4}`, s.rdb.Server.HGet(key, "payload"))
	s.Equal("1773478800000", s.rdb.Server.HGet(key, "updated_at"))
	s.Zero(s.rdb.Server.TTL(key))
}

func (s *RedisLayoutTestSuite) TestUnparseableTimestampStillLoads() {
	key := saveslot.KeyPrefix + testKey
	s.rdb.Server.HSet(key, "payload", `{"zone":2}`)
	s.rdb.Server.HSet(key, "updated_at", "yesterday")

	out, err := s.repo.Get(s.ctx, saveslot.GetInput{Key: testKey})
	s.Require().NoError(err)
	s.JSONEq(`{"zone":2}`, string(out.Payload))
	s.True(out.UpdatedAt.IsZero())
}

func (s *RedisLayoutTestSuite) TestHashWithoutPayloadIsMissing() {
	s.rdb.Server.HSet(saveslot.KeyPrefix+testKey, "updated_at", "1")

	_, err := s.repo.Get(s.ctx, saveslot.GetInput{Key: testKey})
	s.True(errors.IsNotFound(err))
}

func (s *RedisLayoutTestSuite) TestServerDown() {
	s.rdb.Server.Close()

	_, err := s.repo.Set(s.ctx, saveslot.SetInput{Key: testKey, Payload: []byte(`{}`)})
	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}
