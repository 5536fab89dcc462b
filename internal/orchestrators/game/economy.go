package game

import (
	"context"
	"log/slog"
	"math"
	"slices"

	"github.com/KirkDiggler/trivia-quest/internal/engine"
	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
)

// weaponChancePercent is the share of chests that hold a weapon rather than armor
const weaponChancePercent = 70

// UpgradeResearch buys the next research level
func (o *orchestrator) UpgradeResearch(ctx context.Context) (*UpgradeOutput, error) {
	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *UpgradeOutput) {
		cost := o.generator.ResearchCost(s.Research.Level)
		if !payCoins(s, cost) {
			return s, &UpgradeOutput{}
		}

		s.Research.Level++
		s.Research.TotalSpent += cost
		refreshStats(s, o.generator)

		return s, &UpgradeOutput{Success: true, NewLevel: s.Research.Level, Cost: cost}
	})
}

// OpenChest pays cost coins for a random weapon or armor. Rarity is drawn
// from the weights for that price; the kind is a 70/30 weapon/armor split.
func (o *orchestrator) OpenChest(ctx context.Context, input *OpenChestInput) (*OpenChestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *OpenChestOutput) {
		if input.Cost <= 0 || !payCoins(s, input.Cost) {
			return s, &OpenChestOutput{}
		}

		weights := o.generator.ChestRarityWeights(input.Cost)
		rarity := entities.Rarities[engine.PickRarity(weights, engine.Percent(o.roller))]

		kind := entities.ItemKindArmor
		if engine.Percent(o.roller) <= weaponChancePercent {
			kind = entities.ItemKindWeapon
		}

		out := o.grantItem(s, kind, rarity)
		s.Statistics.ChestsOpened++

		slog.Info("Chest opened",
			"cost", input.Cost,
			"rarity", rarity,
			"kind", kind,
			"new_discovery", out.NewDiscovery,
		)
		return s, out
	})
	if err != nil {
		return nil, err
	}

	o.publishChest(ctx, out)
	return out, nil
}

// PurchaseMythical buys a mythical item of the chosen kind with gems
func (o *orchestrator) PurchaseMythical(ctx context.Context, input *PurchaseMythicalInput) (*OpenChestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !validKind(input.Kind) {
		return nil, errors.InvalidArgumentf("unknown item kind %q", input.Kind)
	}

	out, err := mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *OpenChestOutput) {
		if !payGems(s, o.balance.Shop.MythicalCostGems) {
			return s, &OpenChestOutput{}
		}
		return s, o.grantItem(s, input.Kind, entities.RarityMythical)
	})
	if err != nil {
		return nil, err
	}

	o.publishChest(ctx, out)
	return out, nil
}

// CheatAddItem grants an item of any kind and rarity for free
func (o *orchestrator) CheatAddItem(ctx context.Context, input *CheatAddItemInput) (*OpenChestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !validKind(input.Kind) {
		return nil, errors.InvalidArgumentf("unknown item kind %q", input.Kind)
	}
	if !slices.Contains(entities.Rarities, input.Rarity) {
		return nil, errors.InvalidArgumentf("unknown rarity %q", input.Rarity)
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *OpenChestOutput) {
		slog.Warn("Cheat item granted", "kind", input.Kind, "rarity", input.Rarity)
		return s, o.grantItem(s, input.Kind, input.Rarity)
	})
}

func validKind(kind entities.ItemKind) bool {
	return kind == entities.ItemKindWeapon || kind == entities.ItemKindArmor
}

// grantItem generates an item into the inventory and records it in the
// collection book. The reward holds copies so it never aliases state.
func (o *orchestrator) grantItem(s *entities.GameState, kind entities.ItemKind, rarity entities.Rarity) *OpenChestOutput {
	out := &OpenChestOutput{
		Success: true,
		Rarity:  rarity,
		Reward:  &entities.ChestReward{Type: kind},
	}

	book := &s.CollectionBook
	switch kind {
	case entities.ItemKindWeapon:
		w := o.generator.GenerateWeapon(false, rarity)
		s.Inventory.Weapons = append(s.Inventory.Weapons, w)
		if !book.Weapons[w.Name] {
			book.Weapons[w.Name] = true
			book.TotalWeaponsFound++
			out.NewDiscovery = true
		}
		reward := *w
		out.Reward.Weapons = []*entities.Weapon{&reward}
	default:
		a := o.generator.GenerateArmor(false, rarity)
		s.Inventory.Armor = append(s.Inventory.Armor, a)
		if !book.Armor[a.Name] {
			book.Armor[a.Name] = true
			book.TotalArmorFound++
			out.NewDiscovery = true
		}
		reward := *a
		out.Reward.Armor = []*entities.Armor{&reward}
	}

	book.RarityStats[rarity]++
	s.Statistics.ItemsCollected++
	return out
}

// Mine digs gems, with a small chance of a shiny gem. Treasure Hunter doubles the gems.
func (o *orchestrator) Mine(ctx context.Context) (*MineOutput, error) {
	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *MineOutput) {
		gems := o.balance.Mining.GemsPerMine
		if active := s.Skills.Active(o.clock.Now()); active != nil && active.Type == entities.MenuSkillTreasureHunter {
			gems *= 2
		}
		earnGems(s, gems)
		s.Statistics.GemsMined += gems

		out := &MineOutput{Success: true, Gems: gems}
		if engine.Percent(o.roller) <= o.balance.Mining.ShinyChancePercent {
			earnShinyGems(s, 1)
			out.ShinyGems = 1
		}
		return s, out
	})
}

// ExchangeShinyGems converts shiny gems into gems at the balance rate
func (o *orchestrator) ExchangeShinyGems(ctx context.Context, input *ExchangeShinyGemsInput) (*ExchangeShinyGemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ExchangeShinyGemsOutput) {
		rate := o.balance.Exchange.GemsPerShinyGem
		if input.Amount <= 0 || input.Amount > gemHeadroom(s)/rate {
			return s, &ExchangeShinyGemsOutput{}
		}
		if !payShinyGems(s, input.Amount) {
			return s, &ExchangeShinyGemsOutput{}
		}

		gained := input.Amount * rate
		earnGems(s, gained)
		return s, &ExchangeShinyGemsOutput{Success: true, GemsGained: gained}
	})
}

// gemHeadroom is how many gems can still be earned before the balance or the
// lifetime statistic would overflow
func gemHeadroom(s *entities.GameState) int {
	return math.MaxInt - max(s.Gems, s.Statistics.GemsEarned)
}

// Prestige trades the current zone for prestige points and restarts at zone 1
func (o *orchestrator) Prestige(ctx context.Context) (*PrestigeOutput, error) {
	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *PrestigeOutput) {
		if s.InCombat || s.Zone < o.balance.Prestige.MinZone {
			return s, &PrestigeOutput{}
		}

		points := s.Zone / 10
		p := &s.Progression
		p.PrestigePoints += points
		p.PrestigeLevel++

		slog.Info("Prestige", "from_zone", s.Zone, "points", points, "level", p.PrestigeLevel)
		s.Zone = 1
		s.AdventureSkills = defaultAdventureSkills()

		return s, &PrestigeOutput{Success: true, PointsGained: points, NewLevel: p.PrestigeLevel}
	})
}

func (o *orchestrator) publishChest(ctx context.Context, out *OpenChestOutput) {
	if out == nil || !out.Success {
		return
	}
	o.publish(ctx, EventChestOpened, playerEntity, map[string]any{
		"rarity":        string(out.Rarity),
		"kind":          string(out.Reward.Type),
		"items":         out.Reward.ItemNames(),
		"new_discovery": out.NewDiscovery,
	})
}
