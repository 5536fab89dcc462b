package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
)

// nextUpgradeCost compounds the upgrade price one level, flooring each step
func nextUpgradeCost(cost int) int {
	return floorMul(cost, 1.5)
}

// statGain is what one upgrade adds to a weapon's attack or an armor's defense
func statGain(stat int) int {
	return max(1, stat/10)
}

func upgradeWeapon(w *entities.Weapon) {
	oldCost := w.UpgradeCost
	w.Level++
	w.BaseAtk += statGain(w.BaseAtk)
	w.SellPrice += oldCost / 2
	w.UpgradeCost = nextUpgradeCost(oldCost)
}

func upgradeArmor(a *entities.Armor) {
	oldCost := a.UpgradeCost
	a.Level++
	a.BaseDef += statGain(a.BaseDef)
	a.SellPrice += oldCost / 2
	a.UpgradeCost = nextUpgradeCost(oldCost)
}

func requireItem(input *ItemInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	return nil
}

func requireBulk(input *BulkInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	return nil
}

// EquipWeapon makes an owned weapon the current weapon
func (o *orchestrator) EquipWeapon(ctx context.Context, input *ItemInput) (*ActionOutput, error) {
	if err := requireItem(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ActionOutput) {
		if w, _ := s.Inventory.FindWeapon(input.ID); w == nil {
			return s, &ActionOutput{}
		}
		s.Inventory.CurrentWeaponID = input.ID
		refreshStats(s, o.generator)
		return s, &ActionOutput{Success: true}
	})
}

// EquipArmor makes an owned armor the current armor
func (o *orchestrator) EquipArmor(ctx context.Context, input *ItemInput) (*ActionOutput, error) {
	if err := requireItem(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ActionOutput) {
		if a, _ := s.Inventory.FindArmor(input.ID); a == nil {
			return s, &ActionOutput{}
		}
		s.Inventory.CurrentArmorID = input.ID
		refreshStats(s, o.generator)
		return s, &ActionOutput{Success: true}
	})
}

// UpgradeWeapon pays the weapon's upgrade cost in coins and levels it up
func (o *orchestrator) UpgradeWeapon(ctx context.Context, input *ItemInput) (*UpgradeOutput, error) {
	if err := requireItem(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *UpgradeOutput) {
		w, _ := s.Inventory.FindWeapon(input.ID)
		if w == nil {
			return s, &UpgradeOutput{}
		}
		cost := w.UpgradeCost
		if !payCoins(s, cost) {
			return s, &UpgradeOutput{}
		}

		upgradeWeapon(w)
		s.Statistics.ItemsUpgraded++
		refreshStats(s, o.generator)

		return s, &UpgradeOutput{Success: true, NewLevel: w.Level, Cost: cost}
	})
}

// UpgradeArmor pays the armor's upgrade cost in coins and levels it up
func (o *orchestrator) UpgradeArmor(ctx context.Context, input *ItemInput) (*UpgradeOutput, error) {
	if err := requireItem(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *UpgradeOutput) {
		a, _ := s.Inventory.FindArmor(input.ID)
		if a == nil {
			return s, &UpgradeOutput{}
		}
		cost := a.UpgradeCost
		if !payCoins(s, cost) {
			return s, &UpgradeOutput{}
		}

		upgradeArmor(a)
		s.Statistics.ItemsUpgraded++
		refreshStats(s, o.generator)

		return s, &UpgradeOutput{Success: true, NewLevel: a.Level, Cost: cost}
	})
}

// SellWeapon sells an owned weapon that is not equipped
func (o *orchestrator) SellWeapon(ctx context.Context, input *ItemInput) (*SellOutput, error) {
	if err := requireItem(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *SellOutput) {
		earned, ok := sellWeapon(s, input.ID)
		return s, &SellOutput{Success: ok, Earned: earned}
	})
}

// SellArmor sells an owned armor that is not equipped
func (o *orchestrator) SellArmor(ctx context.Context, input *ItemInput) (*SellOutput, error) {
	if err := requireItem(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *SellOutput) {
		earned, ok := sellArmor(s, input.ID)
		return s, &SellOutput{Success: ok, Earned: earned}
	})
}

// BulkSellWeapons sells every listed weapon, skipping the equipped one and unknown ids
func (o *orchestrator) BulkSellWeapons(ctx context.Context, input *BulkInput) (*BulkSellOutput, error) {
	if err := requireBulk(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *BulkSellOutput) {
		return s, bulkSell(input.IDs, func(id string) (int, bool) { return sellWeapon(s, id) })
	})
}

// BulkSellArmor sells every listed armor, skipping the equipped one and unknown ids
func (o *orchestrator) BulkSellArmor(ctx context.Context, input *BulkInput) (*BulkSellOutput, error) {
	if err := requireBulk(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *BulkSellOutput) {
		return s, bulkSell(input.IDs, func(id string) (int, bool) { return sellArmor(s, id) })
	})
}

// BulkUpgradeWeapons upgrades the listed weapons in order while coins last.
// The equipped weapon is excluded.
func (o *orchestrator) BulkUpgradeWeapons(ctx context.Context, input *BulkInput) (*BulkUpgradeOutput, error) {
	if err := requireBulk(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *BulkUpgradeOutput) {
		out := bulkUpgrade(input.IDs, func(id string) (int, bool) {
			w, _ := s.Inventory.FindWeapon(id)
			if w == nil || id == s.Inventory.CurrentWeaponID {
				return 0, false
			}
			cost := w.UpgradeCost
			if !payCoins(s, cost) {
				return 0, false
			}
			upgradeWeapon(w)
			s.Statistics.ItemsUpgraded++
			return cost, true
		})
		return s, out
	})
}

// BulkUpgradeArmor upgrades the listed armor in order while coins last.
// The equipped armor is excluded.
func (o *orchestrator) BulkUpgradeArmor(ctx context.Context, input *BulkInput) (*BulkUpgradeOutput, error) {
	if err := requireBulk(input); err != nil {
		return nil, err
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *BulkUpgradeOutput) {
		out := bulkUpgrade(input.IDs, func(id string) (int, bool) {
			a, _ := s.Inventory.FindArmor(id)
			if a == nil || id == s.Inventory.CurrentArmorID {
				return 0, false
			}
			cost := a.UpgradeCost
			if !payCoins(s, cost) {
				return 0, false
			}
			upgradeArmor(a)
			s.Statistics.ItemsUpgraded++
			return cost, true
		})
		return s, out
	})
}

// sellWeapon removes an unequipped weapon and pays its sell price
func sellWeapon(s *entities.GameState, id string) (int, bool) {
	inv := &s.Inventory
	w, idx := inv.FindWeapon(id)
	if w == nil || id == inv.CurrentWeaponID {
		return 0, false
	}

	inv.Weapons = append(inv.Weapons[:idx], inv.Weapons[idx+1:]...)
	earnCoins(s, w.SellPrice)
	s.Statistics.ItemsSold++
	return w.SellPrice, true
}

// sellArmor removes an unequipped armor and pays its sell price
func sellArmor(s *entities.GameState, id string) (int, bool) {
	inv := &s.Inventory
	a, idx := inv.FindArmor(id)
	if a == nil || id == inv.CurrentArmorID {
		return 0, false
	}

	inv.Armor = append(inv.Armor[:idx], inv.Armor[idx+1:]...)
	earnCoins(s, a.SellPrice)
	s.Statistics.ItemsSold++
	return a.SellPrice, true
}

func bulkSell(ids []string, sell func(id string) (int, bool)) *BulkSellOutput {
	out := &BulkSellOutput{Skipped: []string{}}
	for _, id := range ids {
		earned, ok := sell(id)
		if !ok {
			out.Skipped = append(out.Skipped, id)
			continue
		}
		out.Sold++
		out.Earned += earned
	}
	out.Success = out.Sold > 0

	slog.Info("Bulk sell", "sold", out.Sold, "earned", out.Earned, "skipped", len(out.Skipped))
	return out
}

func bulkUpgrade(ids []string, upgrade func(id string) (int, bool)) *BulkUpgradeOutput {
	out := &BulkUpgradeOutput{Skipped: []string{}}
	for _, id := range ids {
		spent, ok := upgrade(id)
		if !ok {
			out.Skipped = append(out.Skipped, id)
			continue
		}
		out.Upgraded++
		out.Spent += spent
	}
	out.Success = out.Upgraded > 0

	slog.Info("Bulk upgrade", "upgraded", out.Upgraded, "spent", out.Spent, "skipped", len(out.Skipped))
	return out
}
