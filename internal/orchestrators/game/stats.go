package game

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/trivia-quest/internal/engine"
	"github.com/KirkDiggler/trivia-quest/internal/entities"
)

func streakMultiplier(current int) float64 {
	return 1 + float64(current)*0.1
}

func floorMul(v int, factor float64) int {
	return int(math.Floor(float64(v) * factor))
}

// rebuildStats derives atk, def and maxHp from the base stats, equipment,
// research and garden bonus. hp is clamped into [0, maxHp].
func rebuildStats(s *entities.GameState, gen engine.Generator) {
	inv := &s.Inventory
	stats := &s.PlayerStats

	atk := stats.BaseAtk
	def := stats.BaseDef
	if w := inv.CurrentWeapon(); w != nil {
		atk += w.BaseAtk
	}
	if a := inv.CurrentArmor(); a != nil {
		def += a.BaseDef
	}
	for _, r := range inv.EquippedRelics() {
		atk += r.BaseAtk
		def += r.BaseDef
	}

	garden := s.GardenOfGrowth.TotalGrowthBonus
	bonus := 1 + (float64(gen.ResearchBonus(s.Research.Level))+garden)/100

	stats.Atk = max(0, floorMul(atk, bonus))
	stats.Def = max(0, floorMul(def, bonus))
	stats.MaxHP = max(1, floorMul(stats.BaseHP, 1+garden/100))
	stats.HP = min(max(0, stats.HP), stats.MaxHP)
}

// refreshStats rebuilds stats outside combat. In combat the skill-modified
// stats stand until the next fight starts.
func refreshStats(s *entities.GameState, gen engine.Generator) {
	if s.InCombat {
		return
	}
	rebuildStats(s, gen)
}

// payCoins deducts amount unless the infinite coins cheat is on
func payCoins(s *entities.GameState, amount int) bool {
	if amount < 0 {
		return false
	}
	if s.Cheats.InfiniteCoins {
		return true
	}
	if s.Coins < amount {
		return false
	}
	s.Coins -= amount
	return true
}

// payGems deducts amount unless the infinite gems cheat is on
func payGems(s *entities.GameState, amount int) bool {
	if amount < 0 {
		return false
	}
	if s.Cheats.InfiniteGems {
		return true
	}
	if s.Gems < amount {
		return false
	}
	s.Gems -= amount
	return true
}

func payShinyGems(s *entities.GameState, amount int) bool {
	if amount < 0 {
		return false
	}
	if s.Cheats.InfiniteShinyGems {
		return true
	}
	if s.ShinyGems < amount {
		return false
	}
	s.ShinyGems -= amount
	return true
}

func logf(s *entities.GameState, format string, args ...any) {
	s.CombatLog = append(s.CombatLog, fmt.Sprintf(format, args...))
}
