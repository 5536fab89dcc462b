package game_test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/trivia-quest/internal/config"
	"github.com/KirkDiggler/trivia-quest/internal/engine/achievements"
	"github.com/KirkDiggler/trivia-quest/internal/engine/procgen"
	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/orchestrators/game"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/clock"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/idgen"
	saveslot "github.com/KirkDiggler/trivia-quest/internal/repositories/save_slot"
	"github.com/KirkDiggler/trivia-quest/internal/testutils"
)

const testSaveKey = "test:save"

var testStart = time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

// gameSuite wires a real orchestrator over an in-memory save slot, a manual
// clock and a scripted roller. Suites embed it and seed state through load.
type gameSuite struct {
	suite.Suite
	ctx       context.Context
	clock     *clock.Manual
	roller    *testutils.ScriptedRoller
	repo      *saveslot.InMemoryRepository
	balance   *config.Balance
	generator *procgen.Generator
	evaluator *achievements.Evaluator
	bus       *recordingBus
	service   game.Service
}

func (s *gameSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewManual(testStart)
	s.roller = testutils.NewScriptedRoller()
	s.repo = saveslot.NewInMemory(s.clock)
	s.balance = config.DefaultBalance()
	s.bus = &recordingBus{}

	gen, err := procgen.New(&procgen.Config{
		Balance:     s.balance,
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("item"),
	})
	s.Require().NoError(err)
	s.generator = gen

	eval, err := achievements.New(s.clock)
	s.Require().NoError(err)
	s.evaluator = eval

	s.service, err = game.NewOrchestrator(&game.Config{
		Repository: s.repo,
		Generator:  s.generator,
		Evaluator:  s.evaluator,
		Roller:     s.roller,
		Clock:      s.clock,
		Balance:    s.balance,
		SaveKey:    testSaveKey,
		EventBus:   s.bus,
	})
	s.Require().NoError(err)
}

func (s *gameSuite) TearDownTest() {
	s.Require().NoError(s.service.Close(s.ctx))
}

// load seeds the save slot with a default state shaped by edit and loads it.
// A nil edit starts from an empty save slot.
func (s *gameSuite) load(edit func(*entities.GameState)) {
	// a pending background save must not land on top of the seeded one
	s.Require().NoError(s.service.Flush(s.ctx))

	if edit != nil {
		state := game.NewDefaultState(s.balance, s.generator, s.evaluator, s.clock.Now())
		edit(state)

		payload, err := json.Marshal(state)
		s.Require().NoError(err)
		_, err = s.repo.Set(s.ctx, saveslot.SetInput{Key: testSaveKey, Payload: payload})
		s.Require().NoError(err)
	}

	s.Require().NoError(s.service.Load(s.ctx))
}

func (s *gameSuite) state() *entities.GameState {
	out, err := s.service.GetState(s.ctx)
	s.Require().NoError(err)
	return out.State
}

// savedState decodes what the background writer last stored
func (s *gameSuite) savedState() *entities.GameState {
	s.Require().NoError(s.service.Flush(s.ctx))

	out, err := s.repo.Get(s.ctx, saveslot.GetInput{Key: testSaveKey})
	s.Require().NoError(err)

	var state entities.GameState
	s.Require().NoError(json.Unmarshal(out.Payload, &state))
	return &state
}

// unlockAll marks every achievement unlocked so rewards do not skew currency checks
func unlockAll(st *entities.GameState) {
	for i := range st.Achievements {
		st.Achievements[i].Unlocked = true
	}
}

// inCombatWith puts st into combat against enemy with an optional skill
func inCombatWith(st *entities.GameState, enemy entities.Enemy, skill entities.AdventureSkillType) {
	st.InCombat = true
	st.CurrentEnemy = &enemy
	st.AdventureSkills = entities.AdventureSkillsState{AvailableSkills: []entities.AdventureSkill{}}
	for _, def := range game.AdventureSkillCatalog() {
		if def.Type == skill {
			selected := def
			st.AdventureSkills.SelectedSkill = &selected
		}
	}
}

func skillIDs(skills []entities.AdventureSkill) []string {
	ids := make([]string, 0, len(skills))
	for _, sk := range skills {
		ids = append(ids, sk.ID)
	}
	return ids
}

// recordingBus satisfies events.EventBus and keeps every published event
type recordingBus struct {
	mu        sync.Mutex
	published []events.Event
	err       error
}

func (b *recordingBus) Publish(_ context.Context, e events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, e)
	return b.err
}

func (b *recordingBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *recordingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *recordingBus) Unsubscribe(_ string) error { return nil }
func (b *recordingBus) Clear(_ string)             {}
func (b *recordingBus) ClearAll()                  {}

func (b *recordingBus) types() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	types := make([]string, 0, len(b.published))
	for _, e := range b.published {
		types = append(types, e.Type())
	}
	return types
}
