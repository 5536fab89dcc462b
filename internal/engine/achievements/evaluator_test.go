package achievements_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/trivia-quest/internal/engine/achievements"
	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/clock"
)

type EvaluatorTestSuite struct {
	suite.Suite
	clock     *clock.Manual
	evaluator *achievements.Evaluator
	state     *entities.GameState
}

func (s *EvaluatorTestSuite) SetupTest() {
	s.clock = clock.NewManual(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	eval, err := achievements.New(s.clock)
	s.Require().NoError(err)
	s.evaluator = eval

	s.state = &entities.GameState{
		Achievements: eval.InitializeAchievements(),
		PlayerTags:   eval.InitializePlayerTags(),
	}
}

func (s *EvaluatorTestSuite) TestInitializeAllLocked() {
	s.NotEmpty(s.state.Achievements)
	for _, a := range s.state.Achievements {
		s.False(a.Unlocked, a.ID)
	}
	for _, t := range s.state.PlayerTags {
		s.False(t.Unlocked, t.ID)
	}
}

func (s *EvaluatorTestSuite) TestNothingEarnedOnFreshState() {
	s.Empty(s.evaluator.CheckAchievements(s.state))
	s.Empty(s.evaluator.CheckPlayerTags(s.state))
}

func (s *EvaluatorTestSuite) TestCheckAchievements() {
	testCases := []struct {
		name   string
		mutate func(*entities.GameState)
		wantID string
	}{
		{name: "first victory", mutate: func(st *entities.GameState) { st.Statistics.TotalVictories = 1 }, wantID: "first_victory"},
		{name: "zone ten", mutate: func(st *entities.GameState) { st.Statistics.ZonesReached = 10 }, wantID: "zone_10"},
		{name: "streak", mutate: func(st *entities.GameState) { st.KnowledgeStreak.Best = 12 }, wantID: "streak_10"},
		{
			name: "collector counts both kinds",
			mutate: func(st *entities.GameState) {
				st.CollectionBook.TotalWeaponsFound = 6
				st.CollectionBook.TotalArmorFound = 4
			},
			wantID: "collector_10",
		},
		{name: "chests", mutate: func(st *entities.GameState) { st.Statistics.ChestsOpened = 25 }, wantID: "chest_opener_25"},
		{name: "revival", mutate: func(st *entities.GameState) { st.HasUsedRevival = true }, wantID: "second_wind"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.mutate(s.state)

			got := s.evaluator.CheckAchievements(s.state)

			s.Require().Len(got, 1)
			s.Equal(tc.wantID, got[0].ID)
			s.True(got[0].Unlocked)
			s.Equal(s.clock.Now(), got[0].UnlockedAt)
		})
	}
}

func (s *EvaluatorTestSuite) TestAlreadyUnlockedIsNotReturned() {
	s.state.Statistics.TotalVictories = 3
	for i := range s.state.Achievements {
		if s.state.Achievements[i].ID == "first_victory" {
			s.state.Achievements[i].Unlocked = true
		}
	}

	s.Empty(s.evaluator.CheckAchievements(s.state))
}

func (s *EvaluatorTestSuite) TestUnknownToStateIsSkipped() {
	s.state.Achievements = nil
	s.state.Statistics.TotalVictories = 1

	s.Empty(s.evaluator.CheckAchievements(s.state))
}

func (s *EvaluatorTestSuite) TestScholarNeedsVolumeAndAccuracy() {
	s.state.Statistics.TotalQuestionsAnswered = 10
	s.state.Statistics.CorrectAnswers = 10
	s.Empty(s.evaluator.CheckPlayerTags(s.state))

	s.state.Statistics.TotalQuestionsAnswered = 20
	s.state.Statistics.CorrectAnswers = 15
	s.Empty(s.evaluator.CheckPlayerTags(s.state))

	s.state.Statistics.CorrectAnswers = 16
	got := s.evaluator.CheckPlayerTags(s.state)
	s.Require().Len(got, 1)
	s.Equal("scholar", got[0].ID)
}

func (s *EvaluatorTestSuite) TestOtherTags() {
	s.state.Statistics.ItemsSold = 25
	s.state.GardenOfGrowth.GrowthCm = 10.5
	s.state.Progression.PrestigeLevel = 1

	got := s.evaluator.CheckPlayerTags(s.state)

	ids := make([]string, 0, len(got))
	for _, t := range got {
		ids = append(ids, t.ID)
	}
	s.ElementsMatch([]string{"merchant", "gardener", "prestigious"}, ids)
}

func (s *EvaluatorTestSuite) TestNewRequiresClock() {
	eval, err := achievements.New(nil)
	s.Error(err)
	s.Nil(eval)
}

func TestEvaluatorTestSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorTestSuite))
}
