package game

import (
	"encoding/json"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/KirkDiggler/trivia-quest/internal/config"
	"github.com/KirkDiggler/trivia-quest/internal/engine"
	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
)

// nestedOverlays are top-level keys whose objects have grown fields over
// time. They are decoded over the default value instead of replacing it.
var nestedOverlays = map[string]bool{
	"skills":          true,
	"adventureSkills": true,
	"settings":        true,
	"statistics":      true,
	"progression":     true,
}

// stateFields maps each GameState JSON key to its struct field index
var stateFields = func() map[string]int {
	t := reflect.TypeOf(entities.GameState{})
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			fields[name] = i
		}
	}
	return fields
}()

// NewDefaultState builds the state of a brand new game
func NewDefaultState(b *config.Balance, gen engine.Generator, eval engine.Evaluator, now time.Time) *entities.GameState {
	weapon := gen.GenerateWeapon(true, entities.RarityCommon)
	armor := gen.GenerateArmor(true, entities.RarityCommon)

	state := &entities.GameState{
		Version: entities.SchemaVersion,
		Coins:   b.Player.StartingCoins,
		Gems:    b.Player.StartingGems,
		Zone:    1,
		PlayerStats: entities.PlayerStats{
			HP:      b.Player.BaseHP,
			MaxHP:   b.Player.BaseHP,
			Atk:     b.Player.BaseAtk,
			Def:     b.Player.BaseDef,
			BaseAtk: b.Player.BaseAtk,
			BaseDef: b.Player.BaseDef,
			BaseHP:  b.Player.BaseHP,
		},
		Inventory: entities.Inventory{
			Weapons:          []*entities.Weapon{weapon},
			Armor:            []*entities.Armor{armor},
			Relics:           []*entities.Relic{},
			CurrentWeaponID:  weapon.ID,
			CurrentArmorID:   armor.ID,
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
			ZonesReached:       1,
			AccuracyByCategory: map[string]*entities.CategoryAccuracy{},
			SessionStartTime:   now,
		},
		AdventureSkills: defaultAdventureSkills(),
		YojefMarket:     entities.YojefMarket{Items: []*entities.Relic{}},
		Progression:     entities.Progression{Level: 1},
		Settings:        entities.Settings{Language: "en", SoundEnabled: true},
		Achievements:    eval.InitializeAchievements(),
		PlayerTags:      eval.InitializePlayerTags(),
		LastActive:      now,
	}

	refreshStats(state, gen)
	state.PlayerStats.HP = state.PlayerStats.MaxHP
	return state
}

func defaultAdventureSkills() entities.AdventureSkillsState {
	return entities.AdventureSkillsState{AvailableSkills: []entities.AdventureSkill{}}
}

// Hydrate merges a persisted snapshot over defaults. Each top-level key in
// the snapshot replaces the default value, except nestedOverlays which are
// merged field by field. Keys the snapshot lacks keep their defaults, so
// saves written before a field existed still load complete.
func Hydrate(defaults *entities.GameState, payload []byte) (*entities.GameState, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "save is not a JSON object")
	}
	if raw == nil {
		return nil, errors.DataLoss("save is empty")
	}

	state := defaults.Clone()
	target := reflect.ValueOf(state).Elem()

	for key, value := range raw {
		idx, ok := stateFields[key]
		if !ok {
			slog.Debug("Dropping unknown save field", "field", key)
			continue
		}
		field := target.Field(idx)

		if nestedOverlays[key] {
			if err := json.Unmarshal(value, field.Addr().Interface()); err != nil {
				return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to decode %s", key)
			}
			continue
		}

		fresh := reflect.New(field.Type())
		if err := json.Unmarshal(value, fresh.Interface()); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to decode %s", key)
		}
		field.Set(fresh.Elem())
	}

	if state.Version < entities.SchemaVersion {
		slog.Info("Upgrading save", "from_version", state.Version, "to_version", entities.SchemaVersion)
	}
	normalize(state, defaults)

	return state, nil
}

// normalize repairs whatever an older or hand-edited save may violate
func normalize(s *entities.GameState, defaults *entities.GameState) {
	s.Version = entities.SchemaVersion

	s.Coins = max(0, s.Coins)
	s.Gems = max(0, s.Gems)
	s.ShinyGems = max(0, s.ShinyGems)
	s.Zone = max(1, s.Zone)
	s.Progression.Level = max(1, s.Progression.Level)

	normalizeInventory(&s.Inventory)

	if s.CombatLog == nil {
		s.CombatLog = []string{}
	}
	if s.CollectionBook.Weapons == nil {
		s.CollectionBook.Weapons = map[string]bool{}
	}
	if s.CollectionBook.Armor == nil {
		s.CollectionBook.Armor = map[string]bool{}
	}
	if s.CollectionBook.RarityStats == nil {
		s.CollectionBook.RarityStats = map[entities.Rarity]int{}
	}
	if s.Statistics.AccuracyByCategory == nil {
		s.Statistics.AccuracyByCategory = map[string]*entities.CategoryAccuracy{}
	}
	for category, acc := range s.Statistics.AccuracyByCategory {
		if acc == nil {
			delete(s.Statistics.AccuracyByCategory, category)
		}
	}
	if s.AdventureSkills.AvailableSkills == nil {
		s.AdventureSkills.AvailableSkills = []entities.AdventureSkill{}
	}
	s.YojefMarket.Items = compact(s.YojefMarket.Items)

	s.KnowledgeStreak.Current = max(0, s.KnowledgeStreak.Current)
	s.KnowledgeStreak.Best = max(s.KnowledgeStreak.Best, s.KnowledgeStreak.Current)
	s.KnowledgeStreak.Multiplier = streakMultiplier(s.KnowledgeStreak.Current)

	// currentEnemy is present iff inCombat
	if s.InCombat != (s.CurrentEnemy != nil) {
		slog.Warn("Save has inconsistent combat state, leaving combat",
			"in_combat", s.InCombat,
			"has_enemy", s.CurrentEnemy != nil,
		)
		s.InCombat = false
		s.CurrentEnemy = nil
		s.AdventureSkills = defaultAdventureSkills()
	}
	if s.AdventureSkills.ShowSelectionModal && len(s.AdventureSkills.AvailableSkills) == 0 {
		s.AdventureSkills.ShowSelectionModal = false
	}

	s.Achievements = mergeAchievements(defaults.Achievements, s.Achievements)
	s.PlayerTags = mergePlayerTags(defaults.PlayerTags, s.PlayerTags)
}

func normalizeInventory(inv *entities.Inventory) {
	inv.Weapons = compact(inv.Weapons)
	inv.Armor = compact(inv.Armor)
	inv.Relics = compact(inv.Relics)

	if inv.CurrentWeaponID != "" && inv.CurrentWeapon() == nil {
		slog.Warn("Equipped weapon is not owned, unequipping", "weapon_id", inv.CurrentWeaponID)
		inv.CurrentWeaponID = ""
	}
	if inv.CurrentArmorID != "" && inv.CurrentArmor() == nil {
		slog.Warn("Equipped armor is not owned, unequipping", "armor_id", inv.CurrentArmorID)
		inv.CurrentArmorID = ""
	}

	equipped := make([]string, 0, len(inv.EquippedRelicIDs))
	seen := make(map[string]bool, len(inv.EquippedRelicIDs))
	for _, id := range inv.EquippedRelicIDs {
		if seen[id] || len(equipped) == entities.MaxEquippedRelics {
			continue
		}
		if r, _ := inv.FindRelic(id); r == nil {
			continue
		}
		seen[id] = true
		equipped = append(equipped, id)
	}
	inv.EquippedRelicIDs = equipped
}

// compact drops nil entries and never returns nil
func compact[T any](items []*T) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if item != nil {
			out = append(out, item)
		}
	}
	return out
}

// mergeAchievements keeps the current definitions and the saved unlock state
func mergeAchievements(defaults, saved []entities.Achievement) []entities.Achievement {
	byID := make(map[string]entities.Achievement, len(saved))
	for _, a := range saved {
		byID[a.ID] = a
	}

	out := make([]entities.Achievement, len(defaults))
	for i, def := range defaults {
		out[i] = def
		if prev, ok := byID[def.ID]; ok && prev.Unlocked {
			out[i].Unlocked = true
			out[i].UnlockedAt = prev.UnlockedAt
		}
	}
	return out
}

func mergePlayerTags(defaults, saved []entities.PlayerTag) []entities.PlayerTag {
	byID := make(map[string]entities.PlayerTag, len(saved))
	for _, t := range saved {
		byID[t.ID] = t
	}

	out := make([]entities.PlayerTag, len(defaults))
	for i, def := range defaults {
		out[i] = def
		if prev, ok := byID[def.ID]; ok && prev.Unlocked {
			out[i].Unlocked = true
			out[i].UnlockedAt = prev.UnlockedAt
		}
	}
	return out
}
