package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/trivia-quest/internal/engine"
	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
)

// offeredSkillCount is how many skills a combat offers
const offeredSkillCount = 3

var adventureSkillCatalog = []entities.AdventureSkill{
	{ID: "risker", Name: "Risker", Description: "Lose 15% HP, gain 20% attack", Type: entities.SkillRisker},
	{ID: "lightning_chain", Name: "Lightning Chain", Description: "Deal 15% more damage, take 10% more", Type: entities.SkillLightningChain},
	{ID: "skip_card", Name: "Skip Card", Description: "Skip one question without penalty", Type: entities.SkillSkipCard},
	{ID: "metal_shield", Name: "Metal Shield", Description: "Survive one lethal hit at 1 HP, losing 30% attack", Type: entities.SkillMetalShield},
	{ID: "truth_lies", Name: "Truth or Lies", Description: "Questions become true or false", Type: entities.SkillTruthLies},
	{ID: "ramp", Name: "Ramp", Description: "Double one stat, weaken another by 40%", Type: entities.SkillRamp},
	{ID: "dodge", Name: "Dodge", Description: "Avoid the first enemy hit", Type: entities.SkillDodge},
}

// AdventureSkillCatalog returns every adventure skill definition in catalog order
func AdventureSkillCatalog() []entities.AdventureSkill {
	return append([]entities.AdventureSkill(nil), adventureSkillCatalog...)
}

// GenerateRandomAdventureSkills shuffles the catalog with a Fisher-Yates pass
// and returns the first three, so no skill repeats within an offering
func GenerateRandomAdventureSkills(r dice.Roller) []entities.AdventureSkill {
	skills := AdventureSkillCatalog()
	for i := len(skills) - 1; i > 0; i-- {
		j := engine.Index(r, i+1)
		skills[i], skills[j] = skills[j], skills[i]
	}
	return append([]entities.AdventureSkill(nil), skills[:offeredSkillCount]...)
}

// StartCombat opens the skill selection for the next fight
func (o *orchestrator) StartCombat(ctx context.Context) (*StartCombatOutput, error) {
	out, err := mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *StartCombatOutput) {
		if s.Phase() != entities.CombatPhaseIdle {
			return s, &StartCombatOutput{Offered: cloneSkills(s.AdventureSkills.AvailableSkills)}
		}

		s.AdventureSkills = defaultAdventureSkills()
		s.AdventureSkills.AvailableSkills = GenerateRandomAdventureSkills(o.roller)
		s.AdventureSkills.ShowSelectionModal = true

		return s, &StartCombatOutput{Success: true, Offered: cloneSkills(s.AdventureSkills.AvailableSkills)}
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SelectAdventureSkill starts combat with one of the offered skills
func (o *orchestrator) SelectAdventureSkill(ctx context.Context, input *SelectAdventureSkillInput) (*BeginCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *BeginCombatOutput) {
		if s.Phase() != entities.CombatPhaseAwaitingSkillChoice {
			return s, &BeginCombatOutput{}
		}

		for _, offered := range s.AdventureSkills.AvailableSkills {
			if offered.ID == input.SkillID {
				skill := offered
				return s, o.beginCombat(s, &skill)
			}
		}
		return s, &BeginCombatOutput{}
	})
	if err != nil {
		return nil, err
	}

	o.publishCombatStarted(ctx, out)
	return out, nil
}

// SkipAdventureSkills dismisses the skill offer and starts combat without a skill
func (o *orchestrator) SkipAdventureSkills(ctx context.Context) (*BeginCombatOutput, error) {
	out, err := mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *BeginCombatOutput) {
		if s.Phase() != entities.CombatPhaseAwaitingSkillChoice {
			return s, &BeginCombatOutput{}
		}
		return s, o.beginCombat(s, nil)
	})
	if err != nil {
		return nil, err
	}

	o.publishCombatStarted(ctx, out)
	return out, nil
}

// beginCombat generates the enemy for the current zone, rebuilds stats from
// base values and applies the selected skill's immediate modifier
func (o *orchestrator) beginCombat(s *entities.GameState, skill *entities.AdventureSkill) *BeginCombatOutput {
	enemy := o.generator.GenerateEnemy(s.Zone)

	s.InCombat = true
	s.CurrentEnemy = enemy
	s.CombatLog = []string{}
	s.AdventureSkills = entities.AdventureSkillsState{
		SelectedSkill:   skill,
		AvailableSkills: []entities.AdventureSkill{},
	}

	rebuildStats(s, o.generator)
	s.PlayerStats.HP = s.PlayerStats.MaxHP

	out := &BeginCombatOutput{Success: true}
	logf(s, "A wild %s appears!", enemy.Name)

	if skill != nil {
		skillCopy := *skill
		out.Skill = &skillCopy
		o.applySkillModifier(s, out)
		logf(s, "You enter battle with %s.", skill.Name)
	}

	enemyCopy := *enemy
	out.Enemy = &enemyCopy

	slog.Info("Combat started",
		"zone", s.Zone,
		"enemy", enemy.Name,
		"skill", s.AdventureSkills.SelectedType(),
	)
	return out
}

func (o *orchestrator) applySkillModifier(s *entities.GameState, out *BeginCombatOutput) {
	stats := &s.PlayerStats
	effects := &s.AdventureSkills.SkillEffects

	switch s.AdventureSkills.SelectedType() {
	case entities.SkillRisker:
		stats.HP = floorMul(stats.HP, 0.85)
		stats.Atk = floorMul(stats.Atk, 1.2)
	case entities.SkillRamp:
		choices := []StatName{StatAtk, StatDef, StatHP}
		up := engine.Index(o.roller, len(choices))
		boosted := choices[up]
		rest := append(append([]StatName(nil), choices[:up]...), choices[up+1:]...)
		reduced := rest[engine.Index(o.roller, len(rest))]

		switch boosted {
		case StatAtk:
			stats.Atk *= 2
		case StatDef:
			stats.Def *= 2
		case StatHP:
			stats.MaxHP *= 2
			stats.HP *= 2
		}
		switch reduced {
		case StatAtk:
			stats.Atk = floorMul(stats.Atk, 0.6)
		case StatDef:
			stats.Def = floorMul(stats.Def, 0.6)
		case StatHP:
			stats.HP = floorMul(stats.HP, 0.6)
		}

		effects.RampActive = true
		out.RampBoosted = boosted
		out.RampReduced = reduced
	case entities.SkillLightningChain:
		effects.LightningChainActive = true
	case entities.SkillTruthLies:
		effects.TruthLiesActive = true
	}
}

// UseSkipCard consumes the skip card of the current combat
func (o *orchestrator) UseSkipCard(ctx context.Context) (*ActionOutput, error) {
	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ActionOutput) {
		effects := &s.AdventureSkills.SkillEffects
		if !s.InCombat || s.AdventureSkills.SelectedType() != entities.SkillSkipCard || effects.SkipCardUsed {
			return s, &ActionOutput{}
		}

		effects.SkipCardUsed = true
		logf(s, "You skip the question.")
		return s, &ActionOutput{Success: true}
	})
}

// Retreat leaves combat without reward or penalty. The skill selection is kept.
func (o *orchestrator) Retreat(ctx context.Context) (*ActionOutput, error) {
	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ActionOutput) {
		if !s.InCombat {
			return s, &ActionOutput{}
		}

		logf(s, "You retreat from %s.", s.CurrentEnemy.Name)
		s.InCombat = false
		s.CurrentEnemy = nil

		slog.Info("Combat retreat", "zone", s.Zone)
		return s, &ActionOutput{Success: true}
	})
}

func cloneSkills(skills []entities.AdventureSkill) []entities.AdventureSkill {
	return append([]entities.AdventureSkill{}, skills...)
}
