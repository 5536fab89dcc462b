package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/trivia-quest/internal/config"
	"github.com/KirkDiggler/trivia-quest/internal/engine/achievements"
	"github.com/KirkDiggler/trivia-quest/internal/engine/procgen"
	"github.com/KirkDiggler/trivia-quest/internal/orchestrators/game"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/clock"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/trivia-quest/internal/redis"
	saveslot "github.com/KirkDiggler/trivia-quest/internal/repositories/save_slot"
)

const storeTimeout = 5 * time.Second

// loadConfig reads the environment and validates it
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}

// openStore returns the configured save-slot backend and a func releasing it
func openStore(ctx context.Context, cfg *config.Config, clk clock.Clock) (saveslot.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			PoolSize:    10,
			MaxRetries:  3,
			DialTimeout: storeTimeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := redisclient.Ping(ctx, client, storeTimeout); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis at %s is unreachable: %w", cfg.RedisAddr, err)
		}

		repo, err := saveslot.NewRedis(&saveslot.RedisConfig{Client: client, Clock: clk})
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("failed to create redis store: %w", err)
		}
		return repo, func() { _ = client.Close() }, nil

	case config.StoreSQLite:
		db, err := saveslot.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite: %w", err)
		}

		repo, err := saveslot.NewSQLite(ctx, &saveslot.SQLiteConfig{DB: db, Clock: clk})
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to create sqlite store: %w", err)
		}
		return repo, func() { _ = db.Close() }, nil

	default:
		slog.Warn("Using the in-memory store; progress is lost on exit")
		return saveslot.NewInMemory(clk), func() {}, nil
	}
}

// engineDeps are the collaborators both the service and offline tooling need
type engineDeps struct {
	balance   *config.Balance
	generator *procgen.Generator
	evaluator *achievements.Evaluator
}

func newEngineDeps(cfg *config.Config, clk clock.Clock) (*engineDeps, error) {
	balance, err := config.LoadBalance(cfg.BalanceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load balance: %w", err)
	}

	generator, err := procgen.New(&procgen.Config{
		Balance:     balance,
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID("item"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	evaluator, err := achievements.New(clk)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluator: %w", err)
	}

	return &engineDeps{
		balance:   balance,
		generator: generator,
		evaluator: evaluator,
	}, nil
}

// newEventBus returns a bus that logs every domain event the engine publishes
func newEventBus() events.EventBus {
	bus := events.NewBus()

	for _, eventType := range []string{
		game.EventCombatStarted,
		game.EventCombatVictory,
		game.EventCombatDefeat,
		game.EventPlayerRevived,
		game.EventMetalShieldConsumed,
		game.EventChestOpened,
		game.EventAchievementUnlocked,
	} {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			slog.Debug("Game event", "type", e.Type())
			return nil
		})
	}

	return bus
}

// buildService wires and loads the game service. The returned cleanup
// releases the store and must run after the service is closed.
func buildService(ctx context.Context, cfg *config.Config) (game.Service, func(), error) {
	clk := clock.New()

	repo, closeStore, err := openStore(ctx, cfg, clk)
	if err != nil {
		return nil, nil, err
	}

	deps, err := newEngineDeps(cfg, clk)
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	svc, err := game.NewOrchestrator(&game.Config{
		Repository: repo,
		Generator:  deps.generator,
		Evaluator:  deps.evaluator,
		Roller:     dice.DefaultRoller,
		Clock:      clk,
		Balance:    deps.balance,
		SaveKey:    cfg.SaveKey,
		EventBus:   newEventBus(),
	})
	if err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("failed to create game service: %w", err)
	}

	if err := svc.Load(ctx); err != nil {
		_ = svc.Close(ctx)
		closeStore()
		return nil, nil, fmt.Errorf("failed to load game: %w", err)
	}

	return svc, closeStore, nil
}
