package game

import (
	"context"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
)

// RefreshYojefMarket restocks the relic market once its timer has elapsed,
// or immediately when forced
func (o *orchestrator) RefreshYojefMarket(ctx context.Context, input *RefreshYojefMarketInput) (*ActionOutput, error) {
	force := input != nil && input.Force

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ActionOutput) {
		now := o.clock.Now()
		market := &s.YojefMarket
		if !force && now.Before(market.NextRefresh) {
			return s, &ActionOutput{}
		}

		items := make([]*entities.Relic, 0, o.balance.Market.Size)
		for i := 0; i < o.balance.Market.Size; i++ {
			items = append(items, o.generator.GenerateRelicItem())
		}
		market.Items = items
		market.LastRefresh = now
		market.NextRefresh = now.Add(o.balance.Market.RefreshInterval())

		slog.Info("Yojef market refreshed", "items", len(items), "next_refresh", market.NextRefresh)
		return s, &ActionOutput{Success: true}
	})
}

// PurchaseRelic moves a market relic into the inventory for its gem cost
func (o *orchestrator) PurchaseRelic(ctx context.Context, input *ItemInput) (*ActionOutput, error) {
	if err := requireItem(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ActionOutput) {
		market := &s.YojefMarket
		idx := slices.IndexFunc(market.Items, func(r *entities.Relic) bool { return r.ID == input.ID })
		if idx < 0 {
			return s, &ActionOutput{}
		}
		relic := market.Items[idx]
		if !payGems(s, relic.Cost) {
			return s, &ActionOutput{}
		}

		market.Items = slices.Delete(market.Items, idx, idx+1)
		s.Inventory.Relics = append(s.Inventory.Relics, relic)
		s.Statistics.ItemsCollected++

		return s, &ActionOutput{Success: true}
	})
}

// UpgradeRelic pays the relic's upgrade cost in gems and levels it up
func (o *orchestrator) UpgradeRelic(ctx context.Context, input *ItemInput) (*UpgradeOutput, error) {
	if err := requireItem(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *UpgradeOutput) {
		r, _ := s.Inventory.FindRelic(input.ID)
		if r == nil {
			return s, &UpgradeOutput{}
		}
		cost := r.UpgradeCost
		if !payGems(s, cost) {
			return s, &UpgradeOutput{}
		}

		r.Level++
		if r.Type == entities.ItemKindWeapon {
			r.BaseAtk += statGain(r.BaseAtk)
		} else {
			r.BaseDef += statGain(r.BaseDef)
		}
		r.SellPrice += cost / 2
		r.UpgradeCost = nextUpgradeCost(cost)
		s.Statistics.ItemsUpgraded++
		refreshStats(s, o.generator)

		return s, &UpgradeOutput{Success: true, NewLevel: r.Level, Cost: cost}
	})
}

// EquipRelic puts an owned relic into a free relic slot
func (o *orchestrator) EquipRelic(ctx context.Context, input *ItemInput) (*ActionOutput, error) {
	if err := requireItem(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ActionOutput) {
		inv := &s.Inventory
		if r, _ := inv.FindRelic(input.ID); r == nil {
			return s, &ActionOutput{}
		}
		if inv.IsRelicEquipped(input.ID) || len(inv.EquippedRelicIDs) >= entities.MaxEquippedRelics {
			return s, &ActionOutput{}
		}

		inv.EquippedRelicIDs = append(inv.EquippedRelicIDs, input.ID)
		refreshStats(s, o.generator)
		return s, &ActionOutput{Success: true}
	})
}

// UnequipRelic frees the slot of an equipped relic
func (o *orchestrator) UnequipRelic(ctx context.Context, input *ItemInput) (*ActionOutput, error) {
	if err := requireItem(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ActionOutput) {
		if !unequipRelic(&s.Inventory, input.ID) {
			return s, &ActionOutput{}
		}
		refreshStats(s, o.generator)
		return s, &ActionOutput{Success: true}
	})
}

// SellRelic sells an owned relic for gems, unequipping it first
func (o *orchestrator) SellRelic(ctx context.Context, input *ItemInput) (*SellOutput, error) {
	if err := requireItem(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *SellOutput) {
		inv := &s.Inventory
		r, idx := inv.FindRelic(input.ID)
		if r == nil {
			return s, &SellOutput{}
		}

		unequipRelic(inv, input.ID)
		inv.Relics = slices.Delete(inv.Relics, idx, idx+1)
		earnGems(s, r.SellPrice)
		s.Statistics.ItemsSold++
		refreshStats(s, o.generator)

		return s, &SellOutput{Success: true, Earned: r.SellPrice}
	})
}

func unequipRelic(inv *entities.Inventory, id string) bool {
	idx := slices.Index(inv.EquippedRelicIDs, id)
	if idx < 0 {
		return false
	}
	inv.EquippedRelicIDs = slices.Delete(inv.EquippedRelicIDs, idx, idx+1)
	return true
}
