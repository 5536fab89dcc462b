package config

import (
	_ "embed"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
)

//go:embed balance.yaml
var defaultBalanceYAML []byte

// Balance holds every tunable gameplay number
type Balance struct {
	Player       PlayerBalance                 `yaml:"player"`
	Progression  ProgressionBalance            `yaml:"progression"`
	Chests       []ChestTier                   `yaml:"chests"`
	RarityStats  map[entities.Rarity]ItemStats `yaml:"rarity_stats"`
	Enemies      EnemyBalance                  `yaml:"enemies"`
	Research     ResearchBalance               `yaml:"research"`
	Mining       MiningBalance                 `yaml:"mining"`
	Exchange     ExchangeBalance               `yaml:"exchange"`
	Shop         ShopBalance                   `yaml:"shop"`
	Market       MarketBalance                 `yaml:"market"`
	DailyRewards []DailyReward                 `yaml:"daily_rewards"`
	Offline      OfflineBalance                `yaml:"offline"`
	Garden       GardenBalance                 `yaml:"garden"`
	MenuSkills   MenuSkillBalance              `yaml:"menu_skills"`
	Prestige     PrestigeBalance               `yaml:"prestige"`
}

// PlayerBalance seeds a new game
type PlayerBalance struct {
	BaseAtk       int `yaml:"base_atk"`
	BaseDef       int `yaml:"base_def"`
	BaseHP        int `yaml:"base_hp"`
	StartingCoins int `yaml:"starting_coins"`
	StartingGems  int `yaml:"starting_gems"`
}

// ProgressionBalance drives experience and levels
type ProgressionBalance struct {
	XPPerZone  int `yaml:"xp_per_zone"`
	XPPerLevel int `yaml:"xp_per_level"`
}

// ChestTier maps a chest price band to rarity weights in entities.Rarities order
type ChestTier struct {
	MaxCost int    `yaml:"max_cost"`
	Weights [5]int `yaml:"weights"`
}

// ItemStats are the generated stats for a rarity
type ItemStats struct {
	Atk         int `yaml:"atk"`
	Def         int `yaml:"def"`
	UpgradeCost int `yaml:"upgrade_cost"`
	SellPrice   int `yaml:"sell_price"`
}

// EnemyBalance scales enemies linearly by zone
type EnemyBalance struct {
	BaseHP     int `yaml:"base_hp"`
	HPPerZone  int `yaml:"hp_per_zone"`
	BaseAtk    int `yaml:"base_atk"`
	AtkPerZone int `yaml:"atk_per_zone"`
	BaseDef    int `yaml:"base_def"`
	DefPerZone int `yaml:"def_per_zone"`
}

// ResearchBalance is the research cost and bonus curve
type ResearchBalance struct {
	BaseCost      int     `yaml:"base_cost"`
	CostGrowth    float64 `yaml:"cost_growth"`
	BonusPerLevel int     `yaml:"bonus_per_level"`
}

// MiningBalance is the yield of one mine action
type MiningBalance struct {
	GemsPerMine        int `yaml:"gems_per_mine"`
	ShinyChancePercent int `yaml:"shiny_chance_percent"`
}

// ExchangeBalance is the shiny gem to gem rate
type ExchangeBalance struct {
	GemsPerShinyGem int `yaml:"gems_per_shiny_gem"`
}

// ShopBalance prices direct purchases
type ShopBalance struct {
	MythicalCostGems int `yaml:"mythical_cost_gems"`
}

// MarketBalance configures the Yojef relic market
type MarketBalance struct {
	Size          int `yaml:"size"`
	RefreshHours  int `yaml:"refresh_hours"`
	RelicCostGems int `yaml:"relic_cost_gems"`
}

// RefreshInterval is the market rotation period
func (m MarketBalance) RefreshInterval() time.Duration {
	return time.Duration(m.RefreshHours) * time.Hour
}

// DailyReward is one day of the daily reward cycle
type DailyReward struct {
	Coins     int `yaml:"coins" json:"coins"`
	Gems      int `yaml:"gems" json:"gems"`
	ShinyGems int `yaml:"shiny_gems" json:"shinyGems"`
}

// OfflineBalance is the idle earning rate
type OfflineBalance struct {
	CoinsPerMinute int `yaml:"coins_per_minute"`
	CapHours       int `yaml:"cap_hours"`
}

// Cap is the longest offline period that earns coins
func (o OfflineBalance) Cap() time.Duration {
	return time.Duration(o.CapHours) * time.Hour
}

// GardenBalance prices and grows the garden
type GardenBalance struct {
	SeedCost          int     `yaml:"seed_cost"`
	WaterCostPerHour  int     `yaml:"water_cost_per_hour"`
	InitialWaterHours float64 `yaml:"initial_water_hours"`
	GrowthPerHour     float64 `yaml:"growth_per_hour"`
	BonusPerCm        float64 `yaml:"bonus_per_cm"`
}

// MenuSkillDefinition is a rollable menu skill
type MenuSkillDefinition struct {
	ID   string                 `yaml:"id"`
	Name string                 `yaml:"name"`
	Type entities.MenuSkillType `yaml:"type"`
}

// MenuSkillBalance configures menu-skill rolls
type MenuSkillBalance struct {
	RollCost         int                   `yaml:"roll_cost"`
	DurationMinutes  int                   `yaml:"duration_minutes"`
	CoinBoostPercent int                   `yaml:"coin_boost_percent"`
	GemBoost         int                   `yaml:"gem_boost"`
	Catalog          []MenuSkillDefinition `yaml:"catalog"`
}

// Duration is how long a rolled skill stays active
func (m MenuSkillBalance) Duration() time.Duration {
	return time.Duration(m.DurationMinutes) * time.Minute
}

// PrestigeBalance gates prestige
type PrestigeBalance struct {
	MinZone int `yaml:"min_zone"`
}

// DefaultBalance returns the embedded balance tables
func DefaultBalance() *Balance {
	b := &Balance{}
	if err := yaml.Unmarshal(defaultBalanceYAML, b); err != nil {
		// the embedded file is part of the binary; failing here is a build defect
		panic("config: embedded balance.yaml is invalid: " + err.Error())
	}
	return b
}

// LoadBalance returns the embedded tables overlaid with the YAML file at path.
// An empty path returns the defaults.
func LoadBalance(path string) (*Balance, error) {
	b := DefaultBalance()
	if path == "" {
		return b, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- operator supplied path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read balance file %s", path)
	}

	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse balance file %s", path)
	}

	if err := b.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid balance file")
	}

	return b, nil
}

// Validate checks the invariants the engine relies on
func (b *Balance) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(b.Chests) == 0 {
		vb.RequiredField("chests")
	}
	for i, tier := range b.Chests {
		sum := 0
		for _, w := range tier.Weights {
			if w < 0 {
				vb.Fieldf("chests", "tier %d has a negative weight", i)
			}
			sum += w
		}
		if sum != 100 {
			vb.Fieldf("chests", "tier %d weights sum to %d, want 100", i, sum)
		}
	}
	for _, r := range entities.Rarities {
		if _, ok := b.RarityStats[r]; !ok {
			vb.Fieldf("rarity_stats", "missing rarity %s", r)
		}
	}
	if len(b.DailyRewards) == 0 {
		vb.RequiredField("daily_rewards")
	}
	if len(b.MenuSkills.Catalog) == 0 {
		vb.RequiredField("menu_skills.catalog")
	}
	if b.Market.Size < 0 {
		vb.Field("market.size", "must not be negative")
	}
	if b.Exchange.GemsPerShinyGem <= 0 {
		vb.Field("exchange.gems_per_shiny_gem", "must be positive")
	}

	return vb.Build()
}
