// Package procgen is the default engine.Generator. Stats come from the balance
// tables; names and rolls come from an injected dice.Roller.
package procgen

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/trivia-quest/internal/config"
	"github.com/KirkDiggler/trivia-quest/internal/engine"
	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/idgen"
)

var (
	weaponNouns = []string{"Sword", "Axe", "Spear", "Mace", "Dagger", "Staff", "Bow", "Hammer"}
	armorNouns  = []string{"Tunic", "Mail", "Plate", "Robe", "Vest", "Cuirass", "Cloak", "Brigandine"}
	relicNouns  = []string{"Amulet", "Idol", "Charm", "Sigil", "Totem", "Orb"}
	enemyNames  = []string{"Goblin", "Skeleton", "Wolf", "Bandit", "Troll", "Wraith", "Golem", "Drake", "Lich", "Hydra"}

	rarityPrefixes = map[entities.Rarity][]string{
		entities.RarityCommon:    {"Rusty", "Plain", "Worn", "Simple"},
		entities.RarityRare:      {"Sturdy", "Keen", "Polished", "Tempered"},
		entities.RarityEpic:      {"Runed", "Gleaming", "Storm", "Shadow"},
		entities.RarityLegendary: {"Ancient", "Dragon", "Sunforged", "Kingly"},
		entities.RarityMythical:  {"Celestial", "Eternal", "Voidborn", "Godslayer"},
	}

	// relic rarity odds in entities.Rarities order
	relicRarityWeights = [5]int{50, 30, 13, 5, 2}
)

// Config holds the dependencies for the generator
type Config struct {
	Balance     *config.Balance
	Roller      dice.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Balance == nil {
		vb.RequiredField("Balance")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Generator implements engine.Generator
type Generator struct {
	balance *config.Balance
	roller  dice.Roller
	idGen   idgen.Generator
}

// Ensure Generator implements engine.Generator
var _ engine.Generator = (*Generator)(nil)

// New creates a generator
func New(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Generator{
		balance: cfg.Balance,
		roller:  cfg.Roller,
		idGen:   cfg.IDGenerator,
	}, nil
}

// GenerateWeapon creates a level 1 weapon. Starter weapons are always common.
func (g *Generator) GenerateWeapon(isStarter bool, rarity entities.Rarity) *entities.Weapon {
	if isStarter {
		rarity = entities.RarityCommon
	}
	stats := g.balance.RarityStats[rarity]

	name := "Wooden Sword"
	if !isStarter {
		name = g.itemName(rarity, weaponNouns)
	}

	return &entities.Weapon{
		ID:          g.idGen.Generate(),
		Name:        name,
		Rarity:      rarity,
		Level:       1,
		BaseAtk:     stats.Atk,
		UpgradeCost: stats.UpgradeCost,
		SellPrice:   stats.SellPrice,
	}
}

// GenerateArmor creates a level 1 armor. Starter armor is always common.
func (g *Generator) GenerateArmor(isStarter bool, rarity entities.Rarity) *entities.Armor {
	if isStarter {
		rarity = entities.RarityCommon
	}
	stats := g.balance.RarityStats[rarity]

	name := "Cloth Tunic"
	if !isStarter {
		name = g.itemName(rarity, armorNouns)
	}

	return &entities.Armor{
		ID:          g.idGen.Generate(),
		Name:        name,
		Rarity:      rarity,
		Level:       1,
		BaseDef:     stats.Def,
		UpgradeCost: stats.UpgradeCost,
		SellPrice:   stats.SellPrice,
	}
}

// GenerateEnemy scales an enemy linearly with zone
func (g *Generator) GenerateEnemy(zone int) *entities.Enemy {
	if zone < 1 {
		zone = 1
	}
	b := g.balance.Enemies
	steps := zone - 1
	hp := b.BaseHP + b.HPPerZone*steps

	return &entities.Enemy{
		Name:  fmt.Sprintf("%s of Zone %d", enemyNames[engine.Index(g.roller, len(enemyNames))], zone),
		HP:    hp,
		MaxHP: hp,
		Atk:   b.BaseAtk + b.AtkPerZone*steps,
		Def:   b.BaseDef + b.DefPerZone*steps,
		Zone:  zone,
	}
}

// GenerateRelicItem creates a market relic of random rarity and slot
func (g *Generator) GenerateRelicItem() *entities.Relic {
	rarityIdx := engine.PickRarity(relicRarityWeights, engine.Percent(g.roller))
	rarity := entities.Rarities[rarityIdx]
	stats := g.balance.RarityStats[rarity]
	cost := g.balance.Market.RelicCostGems * (rarityIdx + 1)

	relic := &entities.Relic{
		ID:          g.idGen.Generate(),
		Name:        g.itemName(rarity, relicNouns),
		Rarity:      rarity,
		Type:        entities.ItemKindWeapon,
		Level:       1,
		UpgradeCost: stats.UpgradeCost / 2,
		SellPrice:   cost / 2,
		Cost:        cost,
	}
	if engine.Roll(g.roller, 2) == 1 {
		relic.BaseAtk = stats.Atk / 2
	} else {
		relic.Type = entities.ItemKindArmor
		relic.BaseDef = stats.Def / 2
	}

	return relic
}

// ChestRarityWeights returns the weights of the first tier the cost fits in
func (g *Generator) ChestRarityWeights(cost int) [5]int {
	for _, tier := range g.balance.Chests {
		if tier.MaxCost == 0 || cost <= tier.MaxCost {
			return tier.Weights
		}
	}
	return [5]int{100, 0, 0, 0, 0}
}

// ResearchCost grows geometrically from the base cost
func (g *Generator) ResearchCost(level int) int {
	r := g.balance.Research
	return int(math.Floor(float64(r.BaseCost) * math.Pow(r.CostGrowth, float64(level))))
}

// ResearchBonus is linear in level
func (g *Generator) ResearchBonus(level int) int {
	return level * g.balance.Research.BonusPerLevel
}

func (g *Generator) itemName(rarity entities.Rarity, nouns []string) string {
	prefixes := rarityPrefixes[rarity]
	if len(prefixes) == 0 {
		prefixes = rarityPrefixes[entities.RarityCommon]
	}
	return fmt.Sprintf("%s %s",
		prefixes[engine.Index(g.roller, len(prefixes))],
		nouns[engine.Index(g.roller, len(nouns))],
	)
}
