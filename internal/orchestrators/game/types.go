package game

import (
	"time"

	"github.com/KirkDiggler/trivia-quest/internal/config"
	"github.com/KirkDiggler/trivia-quest/internal/entities"
)

// GetStateOutput is a private copy of the committed state
type GetStateOutput struct {
	State *entities.GameState  `json:"state"`
	Phase entities.CombatPhase `json:"phase"`
}

// ResetGameOutput reports a full reset
type ResetGameOutput struct {
	Success bool `json:"success"`
}

// ActionOutput is returned by operations with no computed result
type ActionOutput struct {
	Success bool `json:"success"`
}

// ItemInput identifies one owned or market item
type ItemInput struct {
	ID string `json:"id"`
}

// BulkInput lists item ids processed in order
type BulkInput struct {
	IDs []string `json:"ids"`
}

// StartCombatOutput carries the adventure skills offered for the next fight
type StartCombatOutput struct {
	Success bool                      `json:"success"`
	Offered []entities.AdventureSkill `json:"offered"`
}

// SelectAdventureSkillInput picks one of the offered skills
type SelectAdventureSkillInput struct {
	SkillID string `json:"skillId"`
}

// BeginCombatOutput describes the fight that just started
type BeginCombatOutput struct {
	Success bool                     `json:"success"`
	Enemy   *entities.Enemy          `json:"enemy,omitempty"`
	Skill   *entities.AdventureSkill `json:"skill,omitempty"`
	// RampBoosted and RampReduced name the stats ramp changed
	RampBoosted StatName `json:"rampBoosted"`
	RampReduced StatName `json:"rampReduced"`
}

// StatName names a player stat a skill modified
type StatName string

// Stats ramp can change
const (
	StatAtk StatName = "atk"
	StatDef StatName = "def"
	StatHP  StatName = "hp"
)

// AttackInput is the outcome of one quiz answer
type AttackInput struct {
	Hit      bool   `json:"hit"`
	Category string `json:"category"`
}

// AttackOutcome is the resolved transition of one attack
type AttackOutcome string

// Attack outcomes
const (
	AttackOutcomeNone     AttackOutcome = ""
	AttackOutcomeHit      AttackOutcome = "hit"
	AttackOutcomeMiss     AttackOutcome = "miss"
	AttackOutcomeDodged   AttackOutcome = "dodged"
	AttackOutcomeVictory  AttackOutcome = "victory"
	AttackOutcomeShielded AttackOutcome = "shielded"
	AttackOutcomeRevived  AttackOutcome = "revived"
	AttackOutcomeDefeat   AttackOutcome = "defeat"
)

// AttackOutput reports what one attack did
type AttackOutput struct {
	Success     bool           `json:"success"`
	Outcome     AttackOutcome  `json:"outcome"`
	DamageDealt int            `json:"damageDealt"`
	DamageTaken int            `json:"damageTaken"`
	Streak      int            `json:"streak"`
	Multiplier  float64        `json:"multiplier"`
	Reward      *VictoryReward `json:"reward,omitempty"`
	// Enemy is nil once combat has ended
	Enemy *entities.Enemy `json:"enemy,omitempty"`
}

// VictoryReward is granted when an enemy falls
type VictoryReward struct {
	Coins      int `json:"coins"`
	Gems       int `json:"gems"`
	Experience int `json:"experience"`
	LevelsUp   int `json:"levelsUp"`
	NewZone    int `json:"newZone"`
}

// UpgradeOutput reports an upgrade
type UpgradeOutput struct {
	Success  bool `json:"success"`
	NewLevel int  `json:"newLevel"`
	Cost     int  `json:"cost"`
}

// SellOutput reports a sale
type SellOutput struct {
	Success bool `json:"success"`
	Earned  int  `json:"earned"`
}

// BulkSellOutput reports a bulk sale; Skipped holds equipped or unknown ids
type BulkSellOutput struct {
	Success bool     `json:"success"`
	Sold    int      `json:"sold"`
	Earned  int      `json:"earned"`
	Skipped []string `json:"skipped"`
}

// BulkUpgradeOutput reports a bulk upgrade; Skipped holds ids that were not upgraded
type BulkUpgradeOutput struct {
	Success  bool     `json:"success"`
	Upgraded int      `json:"upgraded"`
	Spent    int      `json:"spent"`
	Skipped  []string `json:"skipped"`
}

// OpenChestInput is the price paid for the chest
type OpenChestInput struct {
	Cost int `json:"cost"`
}

// PurchaseMythicalInput chooses the item kind to buy
type PurchaseMythicalInput struct {
	Kind entities.ItemKind `json:"kind"`
}

// OpenChestOutput carries the generated reward
type OpenChestOutput struct {
	Success bool                  `json:"success"`
	Reward  *entities.ChestReward `json:"reward,omitempty"`
	Rarity  entities.Rarity       `json:"rarity"`
	// NewDiscovery is true when the item name entered the collection book
	NewDiscovery bool `json:"newDiscovery"`
}

// MineOutput reports a mining yield
type MineOutput struct {
	Success   bool `json:"success"`
	Gems      int  `json:"gems"`
	ShinyGems int  `json:"shinyGems"`
}

// ExchangeShinyGemsInput is the number of shiny gems to convert
type ExchangeShinyGemsInput struct {
	Amount int `json:"amount"`
}

// ExchangeShinyGemsOutput reports the gems gained
type ExchangeShinyGemsOutput struct {
	Success    bool `json:"success"`
	GemsGained int  `json:"gemsGained"`
}

// PrestigeOutput reports a prestige reset
type PrestigeOutput struct {
	Success      bool `json:"success"`
	PointsGained int  `json:"pointsGained"`
	NewLevel     int  `json:"newLevel"`
}

// RefreshYojefMarketInput forces a refresh before the timer elapses
type RefreshYojefMarketInput struct {
	Force bool `json:"force"`
}

// ClaimDailyRewardOutput reports a daily claim
type ClaimDailyRewardOutput struct {
	Success bool `json:"success"`
	// Day is the 1-based position in the reward cycle
	Day    int                `json:"day"`
	Streak int                `json:"streak"`
	Reward config.DailyReward `json:"reward,omitempty"`
}

// ClaimOfflineRewardsOutput reports idle earnings
type ClaimOfflineRewardsOutput struct {
	Success bool          `json:"success"`
	Coins   int           `json:"coins"`
	Elapsed time.Duration `json:"elapsed"`
}

// WaterPlantInput is the number of hours of water to buy
type WaterPlantInput struct {
	Hours int `json:"hours"`
}

// GardenOutput reports garden growth
type GardenOutput struct {
	Success             bool    `json:"success"`
	GrowthCm            float64 `json:"growthCm"`
	TotalGrowthBonus    float64 `json:"totalGrowthBonus"`
	WaterHoursRemaining float64 `json:"waterHoursRemaining"`
}

// RollMenuSkillOutput carries the rolled buff
type RollMenuSkillOutput struct {
	Success bool                `json:"success"`
	Skill   *entities.MenuSkill `json:"skill,omitempty"`
}

// UpdateSettingsInput patches settings; nil fields are left unchanged
type UpdateSettingsInput struct {
	ColorblindMode *bool   `json:"colorblindMode"`
	DarkMode       *bool   `json:"darkMode"`
	Language       *string `json:"language"`
	SoundEnabled   *bool   `json:"soundEnabled"`
}

// UpdateCheatsInput patches cheat toggles; nil fields are left unchanged
type UpdateCheatsInput struct {
	InfiniteCoins     *bool `json:"infiniteCoins"`
	InfiniteGems      *bool `json:"infiniteGems"`
	InfiniteShinyGems *bool `json:"infiniteShinyGems"`
}

// CheatAddItemInput grants an item without paying for it
type CheatAddItemInput struct {
	Kind   entities.ItemKind `json:"kind"`
	Rarity entities.Rarity   `json:"rarity"`
}
