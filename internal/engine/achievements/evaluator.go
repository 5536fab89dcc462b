// Package achievements is the default engine.Evaluator
package achievements

import (
	"github.com/KirkDiggler/trivia-quest/internal/engine"
	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/clock"
)

type achievementRule struct {
	achievement entities.Achievement
	met         func(*entities.GameState) bool
}

type tagRule struct {
	tag entities.PlayerTag
	met func(*entities.GameState) bool
}

var achievementRules = []achievementRule{
	{
		achievement: entities.Achievement{ID: "first_victory", Name: "First Blood", Description: "Win your first battle", RewardCoins: 100, RewardGems: 1},
		met:         func(s *entities.GameState) bool { return s.Statistics.TotalVictories >= 1 },
	},
	{
		achievement: entities.Achievement{ID: "zone_10", Name: "Explorer", Description: "Reach zone 10", RewardCoins: 500, RewardGems: 5},
		met:         func(s *entities.GameState) bool { return s.Statistics.ZonesReached >= 10 },
	},
	{
		achievement: entities.Achievement{ID: "zone_50", Name: "Conqueror", Description: "Reach zone 50", RewardCoins: 5000, RewardGems: 50},
		met:         func(s *entities.GameState) bool { return s.Statistics.ZonesReached >= 50 },
	},
	{
		achievement: entities.Achievement{ID: "streak_10", Name: "Know-It-All", Description: "Answer 10 questions correctly in a row", RewardCoins: 300, RewardGems: 3},
		met:         func(s *entities.GameState) bool { return s.KnowledgeStreak.Best >= 10 },
	},
	{
		achievement: entities.Achievement{ID: "collector_10", Name: "Collector", Description: "Discover 10 different items", RewardCoins: 250, RewardGems: 2},
		met:         func(s *entities.GameState) bool { return discovered(s) >= 10 },
	},
	{
		achievement: entities.Achievement{ID: "chest_opener_25", Name: "Treasure Seeker", Description: "Open 25 chests", RewardCoins: 500, RewardGems: 5},
		met:         func(s *entities.GameState) bool { return s.Statistics.ChestsOpened >= 25 },
	},
	{
		achievement: entities.Achievement{ID: "second_wind", Name: "Second Wind", Description: "Survive a defeat with your free revival", RewardCoins: 200, RewardGems: 2},
		met:         func(s *entities.GameState) bool { return s.HasUsedRevival },
	},
}

var tagRules = []tagRule{
	{
		tag: entities.PlayerTag{ID: "scholar", Name: "Scholar"},
		met: func(s *entities.GameState) bool {
			answered := s.Statistics.TotalQuestionsAnswered
			return answered >= 20 && s.Statistics.CorrectAnswers*100 >= answered*80
		},
	},
	{
		tag: entities.PlayerTag{ID: "merchant", Name: "Merchant"},
		met: func(s *entities.GameState) bool { return s.Statistics.ItemsSold >= 25 },
	},
	{
		tag: entities.PlayerTag{ID: "gardener", Name: "Gardener"},
		met: func(s *entities.GameState) bool { return s.GardenOfGrowth.GrowthCm >= 10 },
	},
	{
		tag: entities.PlayerTag{ID: "prestigious", Name: "Prestigious"},
		met: func(s *entities.GameState) bool { return s.Progression.PrestigeLevel >= 1 },
	},
}

func discovered(s *entities.GameState) int {
	return s.CollectionBook.TotalWeaponsFound + s.CollectionBook.TotalArmorFound
}

// Evaluator implements engine.Evaluator over a fixed rule table
type Evaluator struct {
	clock clock.Clock
}

var _ engine.Evaluator = (*Evaluator)(nil)

// New creates an evaluator stamping unlock times from c
func New(c clock.Clock) (*Evaluator, error) {
	if c == nil {
		return nil, errors.InvalidArgument("clock is required")
	}
	return &Evaluator{clock: c}, nil
}

// InitializeAchievements returns every achievement locked
func (e *Evaluator) InitializeAchievements() []entities.Achievement {
	out := make([]entities.Achievement, len(achievementRules))
	for i, rule := range achievementRules {
		out[i] = rule.achievement
	}
	return out
}

// CheckAchievements returns achievements whose condition now holds but which
// the state still has locked. Achievements the state does not list are skipped.
func (e *Evaluator) CheckAchievements(state *entities.GameState) []entities.Achievement {
	locked := make(map[string]bool, len(state.Achievements))
	for _, a := range state.Achievements {
		if !a.Unlocked {
			locked[a.ID] = true
		}
	}

	var unlocked []entities.Achievement
	for _, rule := range achievementRules {
		if !locked[rule.achievement.ID] || !rule.met(state) {
			continue
		}
		a := rule.achievement
		a.Unlocked = true
		a.UnlockedAt = e.clock.Now()
		unlocked = append(unlocked, a)
	}
	return unlocked
}

// InitializePlayerTags returns every tag locked
func (e *Evaluator) InitializePlayerTags() []entities.PlayerTag {
	out := make([]entities.PlayerTag, len(tagRules))
	for i, rule := range tagRules {
		out[i] = rule.tag
	}
	return out
}

// CheckPlayerTags returns tags whose condition now holds but which are still locked
func (e *Evaluator) CheckPlayerTags(state *entities.GameState) []entities.PlayerTag {
	locked := make(map[string]bool, len(state.PlayerTags))
	for _, t := range state.PlayerTags {
		if !t.Unlocked {
			locked[t.ID] = true
		}
	}

	var unlocked []entities.PlayerTag
	for _, rule := range tagRules {
		if !locked[rule.tag.ID] || !rule.met(state) {
			continue
		}
		t := rule.tag
		t.Unlocked = true
		t.UnlockedAt = e.clock.Now()
		unlocked = append(unlocked, t)
	}
	return unlocked
}
