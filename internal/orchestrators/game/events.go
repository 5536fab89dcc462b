package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Domain event types published on the configured event bus
const (
	EventCombatStarted       = "trivia.combat.started"
	EventCombatVictory       = "trivia.combat.victory"
	EventCombatDefeat        = "trivia.combat.defeat"
	EventPlayerRevived       = "trivia.combat.revived"
	EventMetalShieldConsumed = "trivia.combat.shielded"
	EventChestOpened         = "trivia.chest.opened"
	EventAchievementUnlocked = "trivia.achievement.unlocked"
)

// gameEntity implements core.Entity for event sources and targets
type gameEntity struct {
	id         string
	entityType string
}

func (e *gameEntity) GetID() string {
	return e.id
}

func (e *gameEntity) GetType() string {
	return e.entityType
}

var playerEntity core.Entity = &gameEntity{id: "player", entityType: "player"}

func enemyEntity(name string) core.Entity {
	return &gameEntity{id: name, entityType: "enemy"}
}

// publish sends an event after commit. Handler errors are logged and never
// affect the committed state.
func (o *orchestrator) publish(ctx context.Context, eventType string, target core.Entity, data map[string]any) {
	if o.eventBus == nil {
		return
	}

	event := events.NewGameEvent(eventType, playerEntity, target)
	for key, value := range data {
		event.Context().Set(key, value)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Event handler failed",
			"event_type", eventType,
			"error", err,
		)
	}
}

func (o *orchestrator) publishCombatStarted(ctx context.Context, out *BeginCombatOutput) {
	if out == nil || !out.Success {
		return
	}

	data := map[string]any{
		"zone":     out.Enemy.Zone,
		"enemy_hp": out.Enemy.HP,
	}
	if out.Skill != nil {
		data["skill"] = string(out.Skill.Type)
	}
	o.publish(ctx, EventCombatStarted, enemyEntity(out.Enemy.Name), data)
}

func (o *orchestrator) publishAttack(ctx context.Context, out *AttackOutput) {
	switch out.Outcome {
	case AttackOutcomeVictory:
		o.publish(ctx, EventCombatVictory, nil, map[string]any{
			"coins":    out.Reward.Coins,
			"gems":     out.Reward.Gems,
			"new_zone": out.Reward.NewZone,
		})
	case AttackOutcomeDefeat:
		o.publish(ctx, EventCombatDefeat, nil, nil)
	case AttackOutcomeRevived:
		o.publish(ctx, EventPlayerRevived, playerEntity, nil)
	case AttackOutcomeShielded:
		o.publish(ctx, EventMetalShieldConsumed, playerEntity, nil)
	}
}
