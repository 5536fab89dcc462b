package testutils

import (
	"time"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
)

// Fixture ids and values shared by handler and entity tests
const (
	TestWeaponID = "weapon-test-001"
	TestArmorID  = "armor-test-001"
	TestEnemy    = "Goblin of Zone 1"
)

// FixtureTime is the fixed instant fixtures are stamped with
var FixtureTime = time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

// CreateTestWeapon creates a level 1 weapon
func CreateTestWeapon(id string, rarity entities.Rarity, baseAtk int) *entities.Weapon {
	return &entities.Weapon{
		ID:          id,
		Name:        "Test Blade",
		Rarity:      rarity,
		Level:       1,
		BaseAtk:     baseAtk,
		UpgradeCost: 50,
		SellPrice:   25,
	}
}

// CreateTestArmor creates a level 1 piece of armor
func CreateTestArmor(id string, rarity entities.Rarity, baseDef int) *entities.Armor {
	return &entities.Armor{
		ID:          id,
		Name:        "Test Vest",
		Rarity:      rarity,
		Level:       1,
		BaseDef:     baseDef,
		UpgradeCost: 50,
		SellPrice:   25,
	}
}

// CreateTestEnemy creates an enemy at full health
func CreateTestEnemy(zone, hp int) *entities.Enemy {
	return &entities.Enemy{
		Name:  TestEnemy,
		HP:    hp,
		MaxHP: hp,
		Atk:   20,
		Def:   5,
		Zone:  zone,
	}
}

// CreateTestGameState creates an idle, internally consistent state with a
// starter weapon and armor equipped
func CreateTestGameState() *entities.GameState {
	return &entities.GameState{
		Version: entities.SchemaVersion,
		Coins:   500,
		Zone:    1,
		PlayerStats: entities.PlayerStats{
			HP: 200, MaxHP: 200,
			Atk: 62, Def: 16,
			BaseAtk: 50, BaseDef: 10, BaseHP: 200,
		},
		Inventory: entities.Inventory{
			Weapons:          []*entities.Weapon{CreateTestWeapon(TestWeaponID, entities.RarityCommon, 12)},
			Armor:            []*entities.Armor{CreateTestArmor(TestArmorID, entities.RarityCommon, 6)},
			Relics:           []*entities.Relic{},
			CurrentWeaponID:  TestWeaponID,
			CurrentArmorID:   TestArmorID,
			EquippedRelicIDs: []string{},
		},
		CombatLog:       []string{},
		KnowledgeStreak: entities.KnowledgeStreak{Multiplier: 1},
		CollectionBook: entities.CollectionBook{
			Weapons:     map[string]bool{},
			Armor:       map[string]bool{},
			RarityStats: map[entities.Rarity]int{},
		},
		Statistics: entities.Statistics{
			AccuracyByCategory: map[string]*entities.CategoryAccuracy{},
			SessionStartTime:   FixtureTime,
		},
		AdventureSkills: entities.AdventureSkillsState{
			AvailableSkills: []entities.AdventureSkill{},
		},
		Progression: entities.Progression{Level: 1},
		Settings:    entities.Settings{Language: "en", SoundEnabled: true},
		LastActive:  FixtureTime,
	}
}

// CreateTestGameStateInCombat creates a state fighting the given enemy
func CreateTestGameStateInCombat(enemy *entities.Enemy) *entities.GameState {
	st := CreateTestGameState()
	st.InCombat = true
	st.CurrentEnemy = enemy
	st.CombatLog = []string{"A wild " + enemy.Name + " appears!"}
	return st
}
