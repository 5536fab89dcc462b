package game_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/orchestrators/game"
	saveslot "github.com/KirkDiggler/trivia-quest/internal/repositories/save_slot"
	saveslotmock "github.com/KirkDiggler/trivia-quest/internal/repositories/save_slot/mock"
)

type PersistenceTestSuite struct {
	gameSuite
	ctrl     *gomock.Controller
	mockRepo *saveslotmock.MockRepository
}

func TestPersistenceTestSuite(t *testing.T) {
	suite.Run(t, new(PersistenceTestSuite))
}

func (s *PersistenceTestSuite) SetupTest() {
	s.gameSuite.SetupTest()
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = saveslotmock.NewMockRepository(s.ctrl)
}

func (s *PersistenceTestSuite) TearDownTest() {
	s.gameSuite.TearDownTest()
	s.ctrl.Finish()
}

// withMockRepo swaps the service for one saving through the mock repository
func (s *PersistenceTestSuite) withMockRepo() {
	s.Require().NoError(s.service.Close(s.ctx))

	svc, err := game.NewOrchestrator(&game.Config{
		Repository: s.mockRepo,
		Generator:  s.generator,
		Evaluator:  s.evaluator,
		Roller:     s.roller,
		Clock:      s.clock,
		Balance:    s.balance,
		SaveKey:    testSaveKey,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *PersistenceTestSuite) TestNewOrchestratorValidation() {
	testCases := []struct {
		name   string
		config *game.Config
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config is required"},
		{name: "missing repository", config: &game.Config{}, errMsg: "Repository"},
		{name: "missing save key", config: &game.Config{
			Repository: s.repo,
			Generator:  s.generator,
			Evaluator:  s.evaluator,
			Roller:     s.roller,
			Clock:      s.clock,
			Balance:    s.balance,
		}, errMsg: "SaveKey"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := game.NewOrchestrator(tc.config)
			s.Require().Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(svc)
		})
	}
}

func (s *PersistenceTestSuite) TestCommitsAreSaved() {
	s.load(nil)
	s.roller.Queue(50)

	_, err := s.service.Mine(s.ctx)
	s.Require().NoError(err)

	saved := s.savedState()
	s.Equal(1, saved.Gems)
	s.Equal(entities.SchemaVersion, saved.Version)
	s.True(testStart.Equal(saved.LastActive))
}

func (s *PersistenceTestSuite) TestLatestCommitWins() {
	s.load(nil)
	before := s.repo.Writes()

	for i := 0; i < 20; i++ {
		_, err := s.service.Mine(s.ctx)
		s.Require().NoError(err)
	}

	saved := s.savedState()
	s.Equal(20, saved.Gems)
	writes := s.repo.Writes() - before
	s.GreaterOrEqual(writes, 1)
	s.LessOrEqual(writes, 20)
}

func (s *PersistenceTestSuite) TestConcurrentOperationsAreSerialized() {
	s.load(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.Mine(s.ctx)
			s.NoError(err)
		}()
	}
	wg.Wait()

	st := s.state()
	s.Equal(50, st.Gems)
	s.Equal(50, st.Statistics.GemsMined)
	s.Equal(50, s.savedState().Gems)
}

func (s *PersistenceTestSuite) TestGetStateReturnsACopy() {
	s.load(nil)

	got := s.state()
	got.Coins = 1_000_000
	got.Inventory.Weapons[0].BaseAtk = 999

	fresh := s.state()
	s.Equal(500, fresh.Coins)
	s.Equal(12, fresh.Inventory.Weapons[0].BaseAtk)
}

func (s *PersistenceTestSuite) TestCloseStopsSaving() {
	s.load(nil)
	s.roller.Queue(50)
	_, err := s.service.Mine(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.service.Close(s.ctx))
	writes := s.repo.Writes()

	_, err = s.service.Mine(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, s.state().Gems)

	s.Require().NoError(s.service.Flush(s.ctx))
	s.Equal(writes, s.repo.Writes())
}

func (s *PersistenceTestSuite) TestLoadMissingSaveStartsNewGame() {
	s.load(nil)

	got, err := s.service.GetState(s.ctx)
	s.Require().NoError(err)
	s.Equal(entities.CombatPhaseIdle, got.Phase)
	s.Equal(500, got.State.Coins)
	s.Equal(1, got.State.Zone)
	s.Len(got.State.Inventory.Weapons, 1)
	s.Equal(got.State.Inventory.Weapons[0].ID, got.State.Inventory.CurrentWeaponID)
}

func (s *PersistenceTestSuite) TestLoadCorruptSaveFallsBackToDefaults() {
	_, err := s.repo.Set(s.ctx, saveslot.SetInput{Key: testSaveKey, Payload: []byte("{not json")})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Load(s.ctx))
	s.Equal(500, s.state().Coins)
}

func (s *PersistenceTestSuite) TestLoadStorageFailure() {
	s.withMockRepo()
	s.mockRepo.EXPECT().
		Get(gomock.Any(), saveslot.GetInput{Key: testSaveKey}).
		Return(nil, errors.New(errors.CodeUnavailable, "redis down"))

	err := s.service.Load(s.ctx)
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to load save")

	_, err = s.service.GetState(s.ctx)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *PersistenceTestSuite) TestSaveFailuresAreCounted() {
	s.withMockRepo()
	s.mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("save not found"))
	s.mockRepo.EXPECT().
		Set(gomock.Any(), gomock.Any()).
		Return(nil, errors.New(errors.CodeUnavailable, "redis down"))

	s.Require().NoError(s.service.Load(s.ctx))
	s.roller.Queue(50)
	_, err := s.service.Mine(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.service.Flush(s.ctx))

	diag, ok := s.service.(game.Diagnostics)
	s.Require().True(ok)
	s.Equal(int64(1), diag.PersistFailures())
	s.Equal(1, s.state().Gems, "a failed save never rolls back the commit")
}

func (s *PersistenceTestSuite) TestEventHandlerFailureKeepsCommit() {
	s.bus.err = errors.Internal("handler exploded")
	s.load(func(st *entities.GameState) {
		unlockAll(st)
		inCombatWith(st, entities.Enemy{Name: "Training Dummy", HP: 1, MaxHP: 1, Zone: 1}, "")
	})

	out, err := s.service.Attack(s.ctx, &game.AttackInput{Hit: true})
	s.Require().NoError(err)
	s.Equal(game.AttackOutcomeVictory, out.Outcome)
	s.Equal(2, s.state().Zone)
}
