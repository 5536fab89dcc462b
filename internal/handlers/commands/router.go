// Package commands maps operation names and JSON arguments onto the game
// service. Both transports route through it so an operation behaves the same
// whether it arrives over gRPC or REST.
package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/orchestrators/game"
)

// Operation names accepted by Execute
const (
	OpResetGame            = "reset_game"
	OpStartCombat          = "start_combat"
	OpSelectAdventureSkill = "select_adventure_skill"
	OpSkipAdventureSkills  = "skip_adventure_skills"
	OpAttack               = "attack"
	OpUseSkipCard          = "use_skip_card"
	OpRetreat              = "retreat"
	OpEquipWeapon          = "equip_weapon"
	OpEquipArmor           = "equip_armor"
	OpUpgradeWeapon        = "upgrade_weapon"
	OpUpgradeArmor         = "upgrade_armor"
	OpSellWeapon           = "sell_weapon"
	OpSellArmor            = "sell_armor"
	OpBulkSellWeapons      = "bulk_sell_weapons"
	OpBulkSellArmor        = "bulk_sell_armor"
	OpBulkUpgradeWeapons   = "bulk_upgrade_weapons"
	OpBulkUpgradeArmor     = "bulk_upgrade_armor"
	OpUpgradeResearch      = "upgrade_research"
	OpOpenChest            = "open_chest"
	OpPurchaseMythical     = "purchase_mythical"
	OpMine                 = "mine"
	OpExchangeShinyGems    = "exchange_shiny_gems"
	OpPrestige             = "prestige"
	OpRefreshYojefMarket   = "refresh_yojef_market"
	OpPurchaseRelic        = "purchase_relic"
	OpUpgradeRelic         = "upgrade_relic"
	OpEquipRelic           = "equip_relic"
	OpUnequipRelic         = "unequip_relic"
	OpSellRelic            = "sell_relic"
	OpClaimDailyReward     = "claim_daily_reward"
	OpClaimOfflineRewards  = "claim_offline_rewards"
	OpPlantSeed            = "plant_seed"
	OpWaterPlant           = "water_plant"
	OpUpdateGardenGrowth   = "update_garden_growth"
	OpRollMenuSkill        = "roll_menu_skill"
	OpExpireMenuSkill      = "expire_menu_skill"
	OpUpdateSettings       = "update_settings"
	OpUpdateCheats         = "update_cheats"
	OpCheatAddItem         = "cheat_add_item"
)

// Router executes named operations
type Router interface {
	// Execute decodes the arguments for the operation and invokes it
	Execute(ctx context.Context, input *ExecuteInput) (*ExecuteOutput, error)
	// State returns the committed game state
	State(ctx context.Context) (*game.GetStateOutput, error)
	// Operations lists every operation name in sorted order
	Operations() []string
}

// ExecuteInput names an operation and carries its JSON arguments
type ExecuteInput struct {
	Op   string
	Args json.RawMessage
}

// ExecuteOutput carries the operation result, always a pointer to a game output struct
type ExecuteOutput struct {
	Op     string
	Result any
}

// Config holds dependencies for the router
type Config struct {
	Service game.Service
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c.Service == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

type operation func(ctx context.Context, svc game.Service, args json.RawMessage) (any, error)

type router struct {
	svc game.Service
	ops map[string]operation
}

// Ensure router implements Router
var _ Router = (*router)(nil)

// NewRouter creates a router over the game service
func NewRouter(cfg *Config) (Router, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &router{
		svc: cfg.Service,
		ops: map[string]operation{
			OpResetGame:            bare(game.Service.ResetGame),
			OpStartCombat:          bare(game.Service.StartCombat),
			OpSelectAdventureSkill: withArgs(game.Service.SelectAdventureSkill),
			OpSkipAdventureSkills:  bare(game.Service.SkipAdventureSkills),
			OpAttack:               withArgs(game.Service.Attack),
			OpUseSkipCard:          bare(game.Service.UseSkipCard),
			OpRetreat:              bare(game.Service.Retreat),
			OpEquipWeapon:          withArgs(game.Service.EquipWeapon),
			OpEquipArmor:           withArgs(game.Service.EquipArmor),
			OpUpgradeWeapon:        withArgs(game.Service.UpgradeWeapon),
			OpUpgradeArmor:         withArgs(game.Service.UpgradeArmor),
			OpSellWeapon:           withArgs(game.Service.SellWeapon),
			OpSellArmor:            withArgs(game.Service.SellArmor),
			OpBulkSellWeapons:      withArgs(game.Service.BulkSellWeapons),
			OpBulkSellArmor:        withArgs(game.Service.BulkSellArmor),
			OpBulkUpgradeWeapons:   withArgs(game.Service.BulkUpgradeWeapons),
			OpBulkUpgradeArmor:     withArgs(game.Service.BulkUpgradeArmor),
			OpUpgradeResearch:      bare(game.Service.UpgradeResearch),
			OpOpenChest:            withArgs(game.Service.OpenChest),
			OpPurchaseMythical:     withArgs(game.Service.PurchaseMythical),
			OpMine:                 bare(game.Service.Mine),
			OpExchangeShinyGems:    withArgs(game.Service.ExchangeShinyGems),
			OpPrestige:             bare(game.Service.Prestige),
			OpRefreshYojefMarket:   withArgs(game.Service.RefreshYojefMarket),
			OpPurchaseRelic:        withArgs(game.Service.PurchaseRelic),
			OpUpgradeRelic:         withArgs(game.Service.UpgradeRelic),
			OpEquipRelic:           withArgs(game.Service.EquipRelic),
			OpUnequipRelic:         withArgs(game.Service.UnequipRelic),
			OpSellRelic:            withArgs(game.Service.SellRelic),
			OpClaimDailyReward:     bare(game.Service.ClaimDailyReward),
			OpClaimOfflineRewards:  bare(game.Service.ClaimOfflineRewards),
			OpPlantSeed:            bare(game.Service.PlantSeed),
			OpWaterPlant:           withArgs(game.Service.WaterPlant),
			OpUpdateGardenGrowth:   bare(game.Service.UpdateGardenGrowth),
			OpRollMenuSkill:        bare(game.Service.RollMenuSkill),
			OpExpireMenuSkill:      bare(game.Service.ExpireMenuSkill),
			OpUpdateSettings:       withArgs(game.Service.UpdateSettings),
			OpUpdateCheats:         withArgs(game.Service.UpdateCheats),
			OpCheatAddItem:         withArgs(game.Service.CheatAddItem),
		},
	}, nil
}

func (r *router) Execute(ctx context.Context, input *ExecuteInput) (*ExecuteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Op == "" {
		return nil, errors.InvalidArgument("op is required")
	}

	op, ok := r.ops[input.Op]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown op %q", input.Op).WithMeta("op", input.Op)
	}

	result, err := op(ctx, r.svc, input.Args)
	if err != nil {
		return nil, errors.Wrapf(err, "op %s failed", input.Op).WithMeta("op", input.Op)
	}

	slog.Debug("Executed op", "op", input.Op)

	return &ExecuteOutput{Op: input.Op, Result: result}, nil
}

func (r *router) State(ctx context.Context) (*game.GetStateOutput, error) {
	return r.svc.GetState(ctx)
}

func (r *router) Operations() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// bare adapts an operation that takes no arguments; any supplied are ignored
func bare[O any](call func(game.Service, context.Context) (*O, error)) operation {
	return func(ctx context.Context, svc game.Service, _ json.RawMessage) (any, error) {
		out, err := call(svc, ctx)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

func withArgs[I, O any](call func(game.Service, context.Context, *I) (*O, error)) operation {
	return func(ctx context.Context, svc game.Service, args json.RawMessage) (any, error) {
		in := new(I)
		if err := decodeArgs(args, in); err != nil {
			return nil, err
		}
		out, err := call(svc, ctx, in)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// decodeArgs rejects unknown fields; empty or null args leave the input zeroed
func decodeArgs(args json.RawMessage, into any) error {
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid args").WithMeta("reason", err.Error())
	}
	return nil
}
