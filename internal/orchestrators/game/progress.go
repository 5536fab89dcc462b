package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
)

type mutation[R any] struct {
	result   R
	unlocked []entities.Achievement
}

// mutate dispatches fn, then evaluates achievements and tags on the state it
// produced inside the same commit. Unlock events are published after commit.
func mutate[R any](ctx context.Context, o *orchestrator, fn func(*entities.GameState) (*entities.GameState, R)) (R, error) {
	out, ok := dispatch(o.dispatcher, func(s *entities.GameState) (*entities.GameState, mutation[R]) {
		next, result := fn(s)
		if next == nil {
			return nil, mutation[R]{result: result}
		}
		return next, mutation[R]{result: result, unlocked: o.evaluateProgress(next)}
	})
	if !ok {
		var zero R
		return zero, errNotLoaded()
	}

	for _, a := range out.unlocked {
		o.publish(ctx, EventAchievementUnlocked, playerEntity, map[string]any{
			"achievement_id": a.ID,
			"reward_coins":   a.RewardCoins,
			"reward_gems":    a.RewardGems,
		})
	}
	return out.result, nil
}

// evaluateProgress unlocks earned achievements and tags and pays achievement rewards
func (o *orchestrator) evaluateProgress(s *entities.GameState) []entities.Achievement {
	unlocked := o.evaluator.CheckAchievements(s)
	for _, a := range unlocked {
		for i := range s.Achievements {
			if s.Achievements[i].ID != a.ID || s.Achievements[i].Unlocked {
				continue
			}
			s.Achievements[i] = a
			earnCoins(s, a.RewardCoins)
			earnGems(s, a.RewardGems)
			slog.Info("Achievement unlocked",
				"achievement_id", a.ID,
				"reward_coins", a.RewardCoins,
				"reward_gems", a.RewardGems,
			)
		}
	}

	for _, t := range o.evaluator.CheckPlayerTags(s) {
		for i := range s.PlayerTags {
			if s.PlayerTags[i].ID == t.ID && !s.PlayerTags[i].Unlocked {
				s.PlayerTags[i] = t
				slog.Info("Player tag unlocked", "tag_id", t.ID)
			}
		}
	}

	return unlocked
}

// grantExperience adds experience and returns how many levels were gained.
// Level L needs L*xpPerLevel experience to advance.
func (o *orchestrator) grantExperience(s *entities.GameState, amount int) int {
	perLevel := o.balance.Progression.XPPerLevel
	if amount <= 0 || perLevel <= 0 {
		return 0
	}

	p := &s.Progression
	p.Experience += amount
	levels := 0
	for p.Experience >= p.Level*perLevel {
		p.Experience -= p.Level * perLevel
		p.Level++
		levels++
	}
	return levels
}

func earnCoins(s *entities.GameState, amount int) {
	if amount <= 0 {
		return
	}
	s.Coins += amount
	s.Statistics.CoinsEarned += amount
}

func earnGems(s *entities.GameState, amount int) {
	if amount <= 0 {
		return
	}
	s.Gems += amount
	s.Statistics.GemsEarned += amount
}

func earnShinyGems(s *entities.GameState, amount int) {
	if amount <= 0 {
		return
	}
	s.ShinyGems += amount
	s.Statistics.ShinyGemsEarned += amount
}
