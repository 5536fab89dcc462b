package game

import (
	"context"
	"time"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
)

// PlantSeed plants the garden with its initial water supply
func (o *orchestrator) PlantSeed(ctx context.Context) (*ActionOutput, error) {
	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ActionOutput) {
		g := &s.GardenOfGrowth
		if g.IsPlanted || !payCoins(s, o.balance.Garden.SeedCost) {
			return s, &ActionOutput{}
		}

		now := o.clock.Now()
		*g = entities.GardenOfGrowth{
			IsPlanted:           true,
			PlantedAt:           now,
			LastUpdated:         now,
			WaterHoursRemaining: o.balance.Garden.InitialWaterHours,
		}
		refreshStats(s, o.generator)
		return s, &ActionOutput{Success: true}
	})
}

// WaterPlant buys hours of water, settling growth up to now first
func (o *orchestrator) WaterPlant(ctx context.Context, input *WaterPlantInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ActionOutput) {
		g := &s.GardenOfGrowth
		if !g.IsPlanted || input.Hours <= 0 || !payCoins(s, input.Hours*o.balance.Garden.WaterCostPerHour) {
			return s, &ActionOutput{}
		}

		o.growGarden(g, o.clock.Now())
		g.WaterHoursRemaining += float64(input.Hours)
		refreshStats(s, o.generator)
		return s, &ActionOutput{Success: true}
	})
}

// UpdateGardenGrowth settles growth for the time elapsed since the last update
func (o *orchestrator) UpdateGardenGrowth(ctx context.Context) (*GardenOutput, error) {
	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *GardenOutput) {
		g := &s.GardenOfGrowth
		if !g.IsPlanted {
			return s, &GardenOutput{}
		}

		o.growGarden(g, o.clock.Now())
		refreshStats(s, o.generator)
		return s, &GardenOutput{
			Success:             true,
			GrowthCm:            g.GrowthCm,
			TotalGrowthBonus:    g.TotalGrowthBonus,
			WaterHoursRemaining: g.WaterHoursRemaining,
		}
	})
}

// growGarden grows the plant only for the hours it had water
func (o *orchestrator) growGarden(g *entities.GardenOfGrowth, now time.Time) {
	hours := now.Sub(g.LastUpdated).Hours()
	if hours <= 0 {
		return
	}

	watered := min(hours, g.WaterHoursRemaining)
	g.GrowthCm += watered * o.balance.Garden.GrowthPerHour
	g.WaterHoursRemaining -= watered
	g.TotalGrowthBonus = g.GrowthCm * o.balance.Garden.BonusPerCm
	g.LastUpdated = now
}
