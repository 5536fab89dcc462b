package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
)

// UpdateSettings applies the non-nil fields of the patch
func (o *orchestrator) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Language != nil && *input.Language == "" {
		return nil, errors.InvalidArgument("language cannot be empty")
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ActionOutput) {
		settings := &s.Settings
		if input.ColorblindMode != nil {
			settings.ColorblindMode = *input.ColorblindMode
		}
		if input.DarkMode != nil {
			settings.DarkMode = *input.DarkMode
		}
		if input.Language != nil {
			settings.Language = *input.Language
		}
		if input.SoundEnabled != nil {
			settings.SoundEnabled = *input.SoundEnabled
		}
		return s, &ActionOutput{Success: true}
	})
}

// UpdateCheats applies the non-nil fields of the patch
func (o *orchestrator) UpdateCheats(ctx context.Context, input *UpdateCheatsInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ActionOutput) {
		cheats := &s.Cheats
		if input.InfiniteCoins != nil {
			cheats.InfiniteCoins = *input.InfiniteCoins
		}
		if input.InfiniteGems != nil {
			cheats.InfiniteGems = *input.InfiniteGems
		}
		if input.InfiniteShinyGems != nil {
			cheats.InfiniteShinyGems = *input.InfiniteShinyGems
		}

		slog.Warn("Cheats updated",
			"infinite_coins", cheats.InfiniteCoins,
			"infinite_gems", cheats.InfiniteGems,
			"infinite_shiny_gems", cheats.InfiniteShinyGems,
		)
		return s, &ActionOutput{Success: true}
	})
}
