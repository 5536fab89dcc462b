package entities

import "time"

// Research is the permanent stat research track
type Research struct {
	Level      int `json:"level"`
	TotalSpent int `json:"totalSpent"`
}

// CollectionBook records the first discovery of every item name
type CollectionBook struct {
	Weapons           map[string]bool `json:"weapons"`
	Armor             map[string]bool `json:"armor"`
	TotalWeaponsFound int             `json:"totalWeaponsFound"`
	TotalArmorFound   int             `json:"totalArmorFound"`
	RarityStats       map[Rarity]int  `json:"rarityStats"`
}

// CategoryAccuracy counts answers per quiz category
type CategoryAccuracy struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Statistics are monotonic counters
type Statistics struct {
	TotalQuestionsAnswered int                          `json:"totalQuestionsAnswered"`
	CorrectAnswers         int                          `json:"correctAnswers"`
	CoinsEarned            int                          `json:"coinsEarned"`
	GemsEarned             int                          `json:"gemsEarned"`
	ShinyGemsEarned        int                          `json:"shinyGemsEarned"`
	ChestsOpened           int                          `json:"chestsOpened"`
	ItemsCollected         int                          `json:"itemsCollected"`
	ItemsSold              int                          `json:"itemsSold"`
	ItemsUpgraded          int                          `json:"itemsUpgraded"`
	TotalVictories         int                          `json:"totalVictories"`
	TotalDeaths            int                          `json:"totalDeaths"`
	ZonesReached           int                          `json:"zonesReached"`
	GemsMined              int                          `json:"gemsMined"`
	AccuracyByCategory     map[string]*CategoryAccuracy `json:"accuracyByCategory"`
	SessionStartTime       time.Time                    `json:"sessionStartTime"`
}

// GardenOfGrowth is the idle plant that grows while it has water
type GardenOfGrowth struct {
	IsPlanted           bool      `json:"isPlanted"`
	PlantedAt           time.Time `json:"plantedAt"`
	LastUpdated         time.Time `json:"lastUpdated"`
	WaterHoursRemaining float64   `json:"waterHoursRemaining"`
	GrowthCm            float64   `json:"growthCm"`
	TotalGrowthBonus    float64   `json:"totalGrowthBonus"`
}

// YojefMarket is the rotating relic shop
type YojefMarket struct {
	Items       []*Relic  `json:"items"`
	LastRefresh time.Time `json:"lastRefresh"`
	NextRefresh time.Time `json:"nextRefresh"`
}

// DailyRewards tracks the daily login reward streak
type DailyRewards struct {
	LastClaimDate string `json:"lastClaimDate"`
	CurrentStreak int    `json:"currentStreak"`
	MaxStreak     int    `json:"maxStreak"`
	TotalClaimed  int    `json:"totalClaimed"`
}

// Progression is the player level and prestige track
type Progression struct {
	Level          int `json:"level"`
	Experience     int `json:"experience"`
	PrestigeLevel  int `json:"prestigeLevel"`
	PrestigePoints int `json:"prestigePoints"`
}

// MenuSkillType enumerates timed menu skill buffs
type MenuSkillType string

// Menu skill types
const (
	MenuSkillCoinVortex     MenuSkillType = "coin_vortex"
	MenuSkillGemMagnet      MenuSkillType = "gem_magnet"
	MenuSkillScholarsFocus  MenuSkillType = "scholars_focus"
	MenuSkillTreasureHunter MenuSkillType = "treasure_hunter"
)

// MenuSkill is a rolled, time-limited buff
type MenuSkill struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Type      MenuSkillType `json:"type"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// MenuSkills is the menu-skill timer state
type MenuSkills struct {
	ActiveMenuSkill *MenuSkill `json:"activeMenuSkill"`
	LastRollTime    time.Time  `json:"lastRollTime"`
	TotalRolls      int        `json:"totalRolls"`
}

// Active returns the active skill when it has not expired at now
func (m *MenuSkills) Active(now time.Time) *MenuSkill {
	if m.ActiveMenuSkill == nil || !now.Before(m.ActiveMenuSkill.ExpiresAt) {
		return nil
	}
	return m.ActiveMenuSkill
}

// Settings are player preferences
type Settings struct {
	ColorblindMode bool   `json:"colorblindMode"`
	DarkMode       bool   `json:"darkMode"`
	Language       string `json:"language"`
	SoundEnabled   bool   `json:"soundEnabled"`
}

// Cheats are debug toggles
type Cheats struct {
	InfiniteCoins     bool `json:"infiniteCoins"`
	InfiniteGems      bool `json:"infiniteGems"`
	InfiniteShinyGems bool `json:"infiniteShinyGems"`
}

// Achievement is a one-time goal with a currency reward
type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Unlocked    bool      `json:"unlocked"`
	UnlockedAt  time.Time `json:"unlockedAt,omitempty"`
	RewardCoins int       `json:"rewardCoins"`
	RewardGems  int       `json:"rewardGems"`
}

// PlayerTag is a cosmetic title earned by play style
type PlayerTag struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Unlocked   bool      `json:"unlocked"`
	UnlockedAt time.Time `json:"unlockedAt,omitempty"`
}
