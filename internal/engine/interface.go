// Package engine declares the collaborators the game orchestrator consumes but
// does not own: item, enemy and reward generation, and achievement evaluation
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/trivia-quest/internal/engine Generator,Evaluator

import (
	"github.com/KirkDiggler/trivia-quest/internal/entities"
)

// Generator produces item, enemy and reward values. Implementations may draw
// randomness but must not touch game state.
type Generator interface {
	GenerateWeapon(isStarter bool, rarity entities.Rarity) *entities.Weapon
	GenerateArmor(isStarter bool, rarity entities.Rarity) *entities.Armor
	GenerateEnemy(zone int) *entities.Enemy
	GenerateRelicItem() *entities.Relic

	// ChestRarityWeights returns weights in entities.Rarities order summing to 100
	ChestRarityWeights(cost int) [5]int

	ResearchCost(level int) int
	// ResearchBonus is a percentage applied to attack and defense
	ResearchBonus(level int) int
}

// Evaluator decides which achievements and player tags a state has earned
type Evaluator interface {
	InitializeAchievements() []entities.Achievement
	// CheckAchievements returns achievements that are newly unlocked in state
	CheckAchievements(state *entities.GameState) []entities.Achievement

	InitializePlayerTags() []entities.PlayerTag
	// CheckPlayerTags returns tags that are newly unlocked in state
	CheckPlayerTags(state *entities.GameState) []entities.PlayerTag
}
