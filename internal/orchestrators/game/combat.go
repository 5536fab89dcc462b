package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
)

const (
	lightningDamageDealt = 1.15
	lightningDamageTaken = 1.1
	shieldAtkFactor      = 0.7
	premiumZone          = 50
)

// Attack resolves one quiz answer against the current enemy. A hit damages
// the enemy, a miss lets the enemy strike back. Victory is checked before
// defeat, and defeat falls back to the metal shield, then the lifetime
// revival, before the combat is lost.
func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *AttackOutput) {
		return s, o.resolveAttack(s, input.Hit, input.Category)
	})
	if err != nil {
		return nil, err
	}

	o.publishAttack(ctx, out)
	return out, nil
}

func (o *orchestrator) resolveAttack(s *entities.GameState, hit bool, category string) *AttackOutput {
	if !s.InCombat || s.CurrentEnemy == nil {
		return &AttackOutput{}
	}

	out := &AttackOutput{Success: true}
	enemy := s.CurrentEnemy

	if hit {
		o.resolveHit(s, out)
	} else {
		o.resolveMiss(s, out)
	}
	recordAnswer(s, category, hit)

	switch {
	case enemy.HP <= 0:
		o.resolveVictory(s, out)
	case s.PlayerStats.HP <= 0:
		o.resolveLethalHit(s, out)
	}

	out.Streak = s.KnowledgeStreak.Current
	out.Multiplier = s.KnowledgeStreak.Multiplier
	if s.CurrentEnemy != nil {
		enemyCopy := *s.CurrentEnemy
		out.Enemy = &enemyCopy
	}
	return out
}

func (o *orchestrator) resolveHit(s *entities.GameState, out *AttackOutput) {
	enemy := s.CurrentEnemy

	damage := max(1, s.PlayerStats.Atk-enemy.Def)
	if s.AdventureSkills.SkillEffects.LightningChainActive {
		damage = floorMul(damage, lightningDamageDealt)
	}
	enemy.HP = max(0, enemy.HP-damage)

	streak := &s.KnowledgeStreak
	streak.Current++
	streak.Best = max(streak.Best, streak.Current)
	streak.Multiplier = streakMultiplier(streak.Current)

	out.Outcome = AttackOutcomeHit
	out.DamageDealt = damage
	logf(s, "You hit %s for %d damage.", enemy.Name, damage)
}

func (o *orchestrator) resolveMiss(s *entities.GameState, out *AttackOutput) {
	enemy := s.CurrentEnemy
	skills := &s.AdventureSkills

	s.KnowledgeStreak.Current = 0
	s.KnowledgeStreak.Multiplier = streakMultiplier(0)

	if skills.SelectedType() == entities.SkillDodge && !skills.SkillEffects.DodgeUsed {
		skills.SkillEffects.DodgeUsed = true
		out.Outcome = AttackOutcomeDodged
		logf(s, "You dodge %s's attack!", enemy.Name)
		return
	}

	damage := max(1, enemy.Atk-s.PlayerStats.Def)
	if skills.SkillEffects.LightningChainActive {
		damage = floorMul(damage, lightningDamageTaken)
	}
	s.PlayerStats.HP = max(0, s.PlayerStats.HP-damage)

	out.Outcome = AttackOutcomeMiss
	out.DamageTaken = damage
	logf(s, "%s hits you for %d damage.", enemy.Name, damage)
}

func recordAnswer(s *entities.GameState, category string, correct bool) {
	stats := &s.Statistics
	stats.TotalQuestionsAnswered++
	if correct {
		stats.CorrectAnswers++
	}

	if category == "" {
		return
	}
	if stats.AccuracyByCategory == nil {
		stats.AccuracyByCategory = map[string]*entities.CategoryAccuracy{}
	}
	acc, ok := stats.AccuracyByCategory[category]
	if !ok {
		acc = &entities.CategoryAccuracy{}
		stats.AccuracyByCategory[category] = acc
	}
	acc.Total++
	if correct {
		acc.Correct++
	}
}

func (o *orchestrator) resolveVictory(s *entities.GameState, out *AttackOutput) {
	enemy := s.CurrentEnemy
	zone := s.Zone
	mult := s.KnowledgeStreak.Multiplier
	now := o.clock.Now()

	coins := floorMul(10+zone*2, mult)
	gems := floorMul(1+zone/5, mult)
	xp := o.balance.Progression.XPPerZone * zone

	if active := s.Skills.Active(now); active != nil {
		switch active.Type {
		case entities.MenuSkillCoinVortex:
			coins += coins * o.balance.MenuSkills.CoinBoostPercent / 100
		case entities.MenuSkillGemMagnet:
			gems += o.balance.MenuSkills.GemBoost
		case entities.MenuSkillScholarsFocus:
			xp *= 2
		}
	}

	earnCoins(s, coins)
	earnGems(s, gems)
	levels := o.grantExperience(s, xp)

	s.Zone++
	s.Statistics.TotalVictories++
	s.Statistics.ZonesReached = max(s.Statistics.ZonesReached, s.Zone)
	if s.Zone >= premiumZone {
		s.IsPremium = true
	}

	s.InCombat = false
	s.CurrentEnemy = nil
	s.AdventureSkills = defaultAdventureSkills()

	out.Outcome = AttackOutcomeVictory
	out.Reward = &VictoryReward{
		Coins:      coins,
		Gems:       gems,
		Experience: xp,
		LevelsUp:   levels,
		NewZone:    s.Zone,
	}
	logf(s, "%s is defeated! You earn %d coins and %d gems.", enemy.Name, coins, gems)

	slog.Info("Combat victory",
		"zone", zone,
		"coins", coins,
		"gems", gems,
		"multiplier", mult,
	)
}

func (o *orchestrator) resolveLethalHit(s *entities.GameState, out *AttackOutput) {
	stats := &s.PlayerStats
	skills := &s.AdventureSkills

	if skills.SelectedType() == entities.SkillMetalShield && !skills.SkillEffects.MetalShieldUsed {
		skills.SkillEffects.MetalShieldUsed = true
		stats.HP = 1
		stats.Atk = floorMul(stats.Atk, shieldAtkFactor)
		out.Outcome = AttackOutcomeShielded
		logf(s, "Your metal shield absorbs the killing blow!")
		slog.Info("Metal shield consumed", "zone", s.Zone)
		return
	}

	if !s.HasUsedRevival {
		s.HasUsedRevival = true
		stats.HP = stats.MaxHP
		out.Outcome = AttackOutcomeRevived
		logf(s, "You fall, but rise again with full health!")
		slog.Info("Free revival consumed", "zone", s.Zone)
		return
	}

	enemyName := s.CurrentEnemy.Name
	s.InCombat = false
	s.CurrentEnemy = nil
	s.AdventureSkills = defaultAdventureSkills()
	s.Statistics.TotalDeaths++

	out.Outcome = AttackOutcomeDefeat
	logf(s, "You were defeated by %s.", enemyName)
	slog.Info("Combat defeat", "zone", s.Zone)
}
