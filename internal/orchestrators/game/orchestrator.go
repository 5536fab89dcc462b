// Package game is the authoritative game-state engine. Every operation is a
// guarded transform applied through a single serialized dispatcher; committed
// states are snapshotted to a save slot in the background.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/trivia-quest/internal/orchestrators/game Service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/trivia-quest/internal/config"
	"github.com/KirkDiggler/trivia-quest/internal/engine"
	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/clock"
	saveslot "github.com/KirkDiggler/trivia-quest/internal/repositories/save_slot"
)

const defaultWriteTimeout = 5 * time.Second

// Service defines the operations the presentation layer may invoke.
// Guard failures are reported through Success=false, never as errors.
// Every operation returns errors.FailedPrecondition before Load.
type Service interface {
	// Load hydrates the game state from the save slot, or builds defaults
	Load(ctx context.Context) error
	GetState(ctx context.Context) (*GetStateOutput, error)
	ResetGame(ctx context.Context) (*ResetGameOutput, error)

	// Combat lifecycle
	StartCombat(ctx context.Context) (*StartCombatOutput, error)
	SelectAdventureSkill(ctx context.Context, input *SelectAdventureSkillInput) (*BeginCombatOutput, error)
	SkipAdventureSkills(ctx context.Context) (*BeginCombatOutput, error)
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
	UseSkipCard(ctx context.Context) (*ActionOutput, error)
	Retreat(ctx context.Context) (*ActionOutput, error)

	// Weapons and armor
	EquipWeapon(ctx context.Context, input *ItemInput) (*ActionOutput, error)
	EquipArmor(ctx context.Context, input *ItemInput) (*ActionOutput, error)
	UpgradeWeapon(ctx context.Context, input *ItemInput) (*UpgradeOutput, error)
	UpgradeArmor(ctx context.Context, input *ItemInput) (*UpgradeOutput, error)
	SellWeapon(ctx context.Context, input *ItemInput) (*SellOutput, error)
	SellArmor(ctx context.Context, input *ItemInput) (*SellOutput, error)
	BulkSellWeapons(ctx context.Context, input *BulkInput) (*BulkSellOutput, error)
	BulkSellArmor(ctx context.Context, input *BulkInput) (*BulkSellOutput, error)
	BulkUpgradeWeapons(ctx context.Context, input *BulkInput) (*BulkUpgradeOutput, error)
	BulkUpgradeArmor(ctx context.Context, input *BulkInput) (*BulkUpgradeOutput, error)

	// Economy
	UpgradeResearch(ctx context.Context) (*UpgradeOutput, error)
	OpenChest(ctx context.Context, input *OpenChestInput) (*OpenChestOutput, error)
	PurchaseMythical(ctx context.Context, input *PurchaseMythicalInput) (*OpenChestOutput, error)
	Mine(ctx context.Context) (*MineOutput, error)
	ExchangeShinyGems(ctx context.Context, input *ExchangeShinyGemsInput) (*ExchangeShinyGemsOutput, error)
	Prestige(ctx context.Context) (*PrestigeOutput, error)

	// Relics and the Yojef market
	RefreshYojefMarket(ctx context.Context, input *RefreshYojefMarketInput) (*ActionOutput, error)
	PurchaseRelic(ctx context.Context, input *ItemInput) (*ActionOutput, error)
	UpgradeRelic(ctx context.Context, input *ItemInput) (*UpgradeOutput, error)
	EquipRelic(ctx context.Context, input *ItemInput) (*ActionOutput, error)
	UnequipRelic(ctx context.Context, input *ItemInput) (*ActionOutput, error)
	SellRelic(ctx context.Context, input *ItemInput) (*SellOutput, error)

	// Rewards and idle systems
	ClaimDailyReward(ctx context.Context) (*ClaimDailyRewardOutput, error)
	ClaimOfflineRewards(ctx context.Context) (*ClaimOfflineRewardsOutput, error)
	PlantSeed(ctx context.Context) (*ActionOutput, error)
	WaterPlant(ctx context.Context, input *WaterPlantInput) (*ActionOutput, error)
	UpdateGardenGrowth(ctx context.Context) (*GardenOutput, error)
	RollMenuSkill(ctx context.Context) (*RollMenuSkillOutput, error)
	ExpireMenuSkill(ctx context.Context) (*ActionOutput, error)

	// Settings and debug
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*ActionOutput, error)
	UpdateCheats(ctx context.Context, input *UpdateCheatsInput) (*ActionOutput, error)
	CheatAddItem(ctx context.Context, input *CheatAddItemInput) (*OpenChestOutput, error)

	// Flush waits until every committed state has been handed to the save slot
	Flush(ctx context.Context) error
	// Close flushes and stops the background writer
	Close(ctx context.Context) error
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Repository saveslot.Repository
	Generator  engine.Generator
	Evaluator  engine.Evaluator
	Roller     dice.Roller
	Clock      clock.Clock
	Balance    *config.Balance
	SaveKey    string

	// EventBus receives domain events after commit; nil disables events
	EventBus events.EventBus
	// WriteTimeout bounds each background save; zero means five seconds
	WriteTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Evaluator == nil {
		vb.RequiredField("Evaluator")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Balance == nil {
		vb.RequiredField("Balance")
	}
	errors.ValidateRequired("SaveKey", c.SaveKey, vb)

	return vb.Build()
}

type orchestrator struct {
	repo      saveslot.Repository
	generator engine.Generator
	evaluator engine.Evaluator
	roller    dice.Roller
	clock     clock.Clock
	balance   *config.Balance
	eventBus  events.EventBus
	saveKey   string

	dispatcher *dispatcher
}

// Ensure orchestrator implements Service
var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a game orchestrator. The state is empty until Load.
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	timeout := cfg.WriteTimeout
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}

	return &orchestrator{
		repo:       cfg.Repository,
		generator:  cfg.Generator,
		evaluator:  cfg.Evaluator,
		roller:     cfg.Roller,
		clock:      cfg.Clock,
		balance:    cfg.Balance,
		eventBus:   cfg.EventBus,
		saveKey:    cfg.SaveKey,
		dispatcher: newDispatcher(cfg.Clock, newPersister(cfg.Repository, cfg.SaveKey, timeout)),
	}, nil
}

// Load reads the save slot and installs the hydrated state. A missing save
// starts a new game; an unreadable save falls back to defaults. A storage
// failure is returned so a transient outage cannot overwrite the real save.
func (o *orchestrator) Load(ctx context.Context) error {
	now := o.clock.Now()
	defaults := NewDefaultState(o.balance, o.generator, o.evaluator, now)

	out, err := o.repo.Get(ctx, saveslot.GetInput{Key: o.saveKey})
	switch {
	case errors.IsNotFound(err):
		slog.Info("No save found, starting a new game", "key", o.saveKey)
		o.dispatcher.install(defaults)
		return nil
	case err != nil:
		return errors.Wrap(err, "failed to load save")
	}

	state, err := Hydrate(defaults, out.Payload)
	if err != nil {
		slog.Error("Save is unreadable, starting from defaults",
			"key", o.saveKey,
			"error", err,
		)
		o.dispatcher.install(defaults)
		return nil
	}

	refreshStats(state, o.generator)
	o.dispatcher.install(state)

	slog.Info("Game loaded",
		"key", o.saveKey,
		"zone", state.Zone,
		"coins", state.Coins,
		"saved_at", out.UpdatedAt,
	)
	return nil
}

// GetState returns a deep copy of the committed state
func (o *orchestrator) GetState(_ context.Context) (*GetStateOutput, error) {
	state := o.dispatcher.snapshot()
	if state == nil {
		return nil, errNotLoaded()
	}
	return &GetStateOutput{State: state, Phase: state.Phase()}, nil
}

// ResetGame replaces the state with a brand new game, clearing the lifetime revival
func (o *orchestrator) ResetGame(ctx context.Context) (*ResetGameOutput, error) {
	now := o.clock.Now()
	_, ok := dispatch(o.dispatcher, func(_ *entities.GameState) (*entities.GameState, struct{}) {
		return NewDefaultState(o.balance, o.generator, o.evaluator, now), struct{}{}
	})
	if !ok {
		return nil, errNotLoaded()
	}

	slog.Info("Game reset", "key", o.saveKey)
	return &ResetGameOutput{Success: true}, nil
}

// Flush waits for pending background saves
func (o *orchestrator) Flush(ctx context.Context) error {
	return o.dispatcher.persister.flush(ctx)
}

// Close flushes pending saves and stops the background writer
func (o *orchestrator) Close(ctx context.Context) error {
	o.dispatcher.stop()
	return o.dispatcher.persister.close(ctx)
}

// Diagnostics is implemented by the default Service
type Diagnostics interface {
	// PersistFailures reports how many background saves have failed
	PersistFailures() int64
}

var _ Diagnostics = (*orchestrator)(nil)

func (o *orchestrator) PersistFailures() int64 {
	return o.dispatcher.persister.failures.Load()
}

func errNotLoaded() error {
	return errors.FailedPrecondition("game state not loaded")
}

// encodeState is the save payload format
func encodeState(state *entities.GameState) ([]byte, error) {
	return json.Marshal(state)
}
