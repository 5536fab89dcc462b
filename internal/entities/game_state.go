// Package entities holds the game state and the value objects it owns
package entities

import "time"

// SchemaVersion is written into every save
const SchemaVersion = 3

// GameState is the single source of truth for a player's progress
type GameState struct {
	Version int `json:"version"`

	Coins     int  `json:"coins"`
	Gems      int  `json:"gems"`
	ShinyGems int  `json:"shinyGems"`
	Zone      int  `json:"zone"`
	IsPremium bool `json:"isPremium"`

	PlayerStats PlayerStats `json:"playerStats"`
	Inventory   Inventory   `json:"inventory"`

	InCombat     bool     `json:"inCombat"`
	CurrentEnemy *Enemy   `json:"currentEnemy"`
	CombatLog    []string `json:"combatLog"`

	Research        Research             `json:"research"`
	KnowledgeStreak KnowledgeStreak      `json:"knowledgeStreak"`
	CollectionBook  CollectionBook       `json:"collectionBook"`
	Statistics      Statistics           `json:"statistics"`
	AdventureSkills AdventureSkillsState `json:"adventureSkills"`
	GardenOfGrowth  GardenOfGrowth       `json:"gardenOfGrowth"`
	YojefMarket     YojefMarket          `json:"yojefMarket"`
	DailyRewards    DailyRewards         `json:"dailyRewards"`
	Progression     Progression          `json:"progression"`
	Skills          MenuSkills           `json:"skills"`
	Settings        Settings             `json:"settings"`
	Cheats          Cheats               `json:"cheats"`
	Achievements    []Achievement        `json:"achievements"`
	PlayerTags      []PlayerTag          `json:"playerTags"`

	// HasUsedRevival is the lifetime free revival flag; only a full reset clears it
	HasUsedRevival bool `json:"hasUsedRevival"`

	LastActive time.Time `json:"lastActive"`
}

// Phase derives the combat state machine phase
func (s *GameState) Phase() CombatPhase {
	switch {
	case s.InCombat && s.CurrentEnemy != nil:
		return CombatPhaseInCombat
	case s.AdventureSkills.ShowSelectionModal:
		return CombatPhaseAwaitingSkillChoice
	default:
		return CombatPhaseIdle
	}
}

// Clone returns a deep copy that shares no mutable memory with s
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	c := *s

	c.Inventory = s.Inventory.clone()
	if s.CurrentEnemy != nil {
		enemy := *s.CurrentEnemy
		c.CurrentEnemy = &enemy
	}
	c.CombatLog = cloneSlice(s.CombatLog)

	c.CollectionBook.Weapons = cloneMap(s.CollectionBook.Weapons)
	c.CollectionBook.Armor = cloneMap(s.CollectionBook.Armor)
	c.CollectionBook.RarityStats = cloneMap(s.CollectionBook.RarityStats)

	if s.Statistics.AccuracyByCategory != nil {
		c.Statistics.AccuracyByCategory = make(map[string]*CategoryAccuracy, len(s.Statistics.AccuracyByCategory))
		for k, v := range s.Statistics.AccuracyByCategory {
			acc := *v
			c.Statistics.AccuracyByCategory[k] = &acc
		}
	}

	c.AdventureSkills = s.AdventureSkills.Clone()
	c.YojefMarket.Items = clonePointers(s.YojefMarket.Items)

	if s.Skills.ActiveMenuSkill != nil {
		active := *s.Skills.ActiveMenuSkill
		c.Skills.ActiveMenuSkill = &active
	}

	c.Achievements = cloneSlice(s.Achievements)
	c.PlayerTags = cloneSlice(s.PlayerTags)

	return &c
}

// Clone returns a deep copy of the skill selection state
func (a AdventureSkillsState) Clone() AdventureSkillsState {
	c := a
	if a.SelectedSkill != nil {
		selected := *a.SelectedSkill
		c.SelectedSkill = &selected
	}
	c.AvailableSkills = cloneSlice(a.AvailableSkills)
	return c
}

func (inv Inventory) clone() Inventory {
	c := inv
	c.Weapons = clonePointers(inv.Weapons)
	c.Armor = clonePointers(inv.Armor)
	c.Relics = clonePointers(inv.Relics)
	c.EquippedRelicIDs = cloneSlice(inv.EquippedRelicIDs)
	return c
}

// cloneSlice keeps nil and empty distinct so JSON output is stable
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}

func clonePointers[T any](in []*T) []*T {
	if in == nil {
		return nil
	}
	out := make([]*T, len(in))
	for i, v := range in {
		if v == nil {
			continue
		}
		item := *v
		out[i] = &item
	}
	return out
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
