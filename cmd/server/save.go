package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trivia-quest/internal/config"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/orchestrators/game"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/clock"
	saveslot "github.com/KirkDiggler/trivia-quest/internal/repositories/save_slot"
)

var (
	saveStore string
	saveFull  bool
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Inspect or reset the configured save slot",
}

var saveInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Hydrate the save slot and print a summary",
	Long: `Reads the save slot directly from the store, runs it through hydration and
prints what the server would load. Nothing is written.`,
	RunE: inspectSave,
}

var saveResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the save slot with a new game",
	RunE:  resetSave,
}

func init() {
	saveCmd.PersistentFlags().StringVar(&saveStore, "store", "", "save store: memory, redis or sqlite (overrides TQ_STORE)")
	saveInspectCmd.Flags().BoolVar(&saveFull, "full", false, "print the full hydrated state")

	saveCmd.AddCommand(saveInspectCmd)
	saveCmd.AddCommand(saveResetCmd)
}

func saveConfig() (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if saveStore != "" {
		cfg.Store = saveStore
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	setupLogging(cfg)
	return cfg, nil
}

type saveSummary struct {
	Key         string    `json:"key"`
	Store       string    `json:"store"`
	Found       bool      `json:"found"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
	Version     int       `json:"version"`
	Zone        int       `json:"zone"`
	Coins       int       `json:"coins"`
	Gems        int       `json:"gems"`
	ShinyGems   int       `json:"shinyGems"`
	Phase       string    `json:"phase"`
	Weapons     int       `json:"weapons"`
	Armor       int       `json:"armor"`
	Relics      int       `json:"relics"`
	LastActive  time.Time `json:"lastActive"`
	HydrateNote string    `json:"hydrateNote,omitempty"`
}

func inspectSave(_ *cobra.Command, _ []string) error {
	cfg, err := saveConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	clk := clock.New()
	repo, closeStore, err := openStore(ctx, cfg, clk)
	if err != nil {
		return err
	}
	defer closeStore()

	deps, err := newEngineDeps(cfg, clk)
	if err != nil {
		return err
	}

	summary := saveSummary{Key: cfg.SaveKey, Store: cfg.Store}
	defaults := game.NewDefaultState(deps.balance, deps.generator, deps.evaluator, clk.Now())
	state := defaults

	out, err := repo.Get(ctx, saveslot.GetInput{Key: cfg.SaveKey})
	switch {
	case errors.IsNotFound(err):
		summary.HydrateNote = "no save found; the server would start a new game"
	case err != nil:
		return fmt.Errorf("failed to read save: %w", err)
	default:
		summary.Found = true
		summary.UpdatedAt = out.UpdatedAt
		hydrated, err := game.Hydrate(defaults, out.Payload)
		if err != nil {
			summary.HydrateNote = fmt.Sprintf("unreadable save, the server would start from defaults: %v", err)
		} else {
			state = hydrated
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if saveFull {
		return enc.Encode(state)
	}

	summary.Version = state.Version
	summary.Zone = state.Zone
	summary.Coins = state.Coins
	summary.Gems = state.Gems
	summary.ShinyGems = state.ShinyGems
	summary.Phase = string(state.Phase())
	summary.Weapons = len(state.Inventory.Weapons)
	summary.Armor = len(state.Inventory.Armor)
	summary.Relics = len(state.Inventory.Relics)
	summary.LastActive = state.LastActive

	return enc.Encode(summary)
}

func resetSave(_ *cobra.Command, _ []string) error {
	cfg, err := saveConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	svc, closeStore, err := buildService(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if _, err := svc.ResetGame(ctx); err != nil {
		_ = svc.Close(ctx)
		return fmt.Errorf("failed to reset game: %w", err)
	}

	if err := svc.Close(ctx); err != nil {
		return fmt.Errorf("failed to write new save: %w", err)
	}
	if diag, ok := svc.(game.Diagnostics); ok && diag.PersistFailures() > 0 {
		return fmt.Errorf("failed to write new save to %s store", cfg.Store)
	}

	fmt.Printf("Save %q reset to a new game\n", cfg.SaveKey)
	return nil
}
