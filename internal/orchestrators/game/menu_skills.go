package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/trivia-quest/internal/engine"
	"github.com/KirkDiggler/trivia-quest/internal/entities"
)

// RollMenuSkill buys a random timed buff. Only one may be active at a time.
func (o *orchestrator) RollMenuSkill(ctx context.Context) (*RollMenuSkillOutput, error) {
	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *RollMenuSkillOutput) {
		now := o.clock.Now()
		catalog := o.balance.MenuSkills.Catalog
		if len(catalog) == 0 || s.Skills.Active(now) != nil {
			return s, &RollMenuSkillOutput{}
		}
		if !payCoins(s, o.balance.MenuSkills.RollCost) {
			return s, &RollMenuSkillOutput{}
		}

		def := catalog[engine.Index(o.roller, len(catalog))]
		skill := &entities.MenuSkill{
			ID:        def.ID,
			Name:      def.Name,
			Type:      def.Type,
			ExpiresAt: now.Add(o.balance.MenuSkills.Duration()),
		}
		s.Skills.ActiveMenuSkill = skill
		s.Skills.LastRollTime = now
		s.Skills.TotalRolls++

		slog.Info("Menu skill rolled", "skill", def.ID, "expires_at", skill.ExpiresAt)
		rolled := *skill
		return s, &RollMenuSkillOutput{Success: true, Skill: &rolled}
	})
}

// ExpireMenuSkill clears the active menu skill once it has run out
func (o *orchestrator) ExpireMenuSkill(ctx context.Context) (*ActionOutput, error) {
	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ActionOutput) {
		active := s.Skills.ActiveMenuSkill
		if active == nil || o.clock.Now().Before(active.ExpiresAt) {
			return s, &ActionOutput{}
		}
		s.Skills.ActiveMenuSkill = nil
		return s, &ActionOutput{Success: true}
	})
}
