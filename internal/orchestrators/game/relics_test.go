package game_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/orchestrators/game"
)

type RelicTestSuite struct {
	gameSuite
}

func TestRelicTestSuite(t *testing.T) {
	suite.Run(t, new(RelicTestSuite))
}

func (s *RelicTestSuite) TestRefreshYojefMarket() {
	s.load(nil)

	first, err := s.service.RefreshYojefMarket(s.ctx, &game.RefreshYojefMarketInput{})
	s.Require().NoError(err)
	s.True(first.Success)

	market := s.state().YojefMarket
	s.Require().Len(market.Items, 3)
	s.Equal("Rusty Amulet", market.Items[0].Name)
	s.Equal(50, market.Items[0].Cost)
	s.Equal(entities.ItemKindWeapon, market.Items[0].Type)
	s.Equal(6, market.Items[0].BaseAtk)
	s.Equal(testStart, market.LastRefresh)
	s.Equal(testStart.Add(8*time.Hour), market.NextRefresh)

	early, err := s.service.RefreshYojefMarket(s.ctx, &game.RefreshYojefMarketInput{})
	s.Require().NoError(err)
	s.False(early.Success)

	forced, err := s.service.RefreshYojefMarket(s.ctx, &game.RefreshYojefMarketInput{Force: true})
	s.Require().NoError(err)
	s.True(forced.Success)

	s.clock.Advance(8 * time.Hour)
	due, err := s.service.RefreshYojefMarket(s.ctx, nil)
	s.Require().NoError(err)
	s.True(due.Success)
	s.Equal(testStart.Add(16*time.Hour), s.state().YojefMarket.NextRefresh)
}

func (s *RelicTestSuite) TestRelicLifecycle() {
	s.load(func(st *entities.GameState) {
		st.Gems = 1000
	})
	_, err := s.service.RefreshYojefMarket(s.ctx, &game.RefreshYojefMarketInput{Force: true})
	s.Require().NoError(err)
	relicID := s.state().YojefMarket.Items[0].ID
	input := &game.ItemInput{ID: relicID}

	bought, err := s.service.PurchaseRelic(s.ctx, input)
	s.Require().NoError(err)
	s.Require().True(bought.Success)
	st := s.state()
	s.Equal(950, st.Gems)
	s.Len(st.Inventory.Relics, 1)
	s.Len(st.YojefMarket.Items, 2)

	again, err := s.service.PurchaseRelic(s.ctx, input)
	s.Require().NoError(err)
	s.False(again.Success, "a bought relic leaves the market")

	equipped, err := s.service.EquipRelic(s.ctx, input)
	s.Require().NoError(err)
	s.True(equipped.Success)
	s.Equal(68, s.state().PlayerStats.Atk)

	twice, err := s.service.EquipRelic(s.ctx, input)
	s.Require().NoError(err)
	s.False(twice.Success)
	s.Equal([]string{relicID}, s.state().Inventory.EquippedRelicIDs)

	upgraded, err := s.service.UpgradeRelic(s.ctx, input)
	s.Require().NoError(err)
	s.True(upgraded.Success)
	s.Equal(25, upgraded.Cost)
	s.Equal(2, upgraded.NewLevel)
	st = s.state()
	r, _ := st.Inventory.FindRelic(relicID)
	s.Equal(7, r.BaseAtk)
	s.Equal(37, r.SellPrice)
	s.Equal(37, r.UpgradeCost)
	s.Equal(925, st.Gems)
	s.Equal(69, st.PlayerStats.Atk)

	sold, err := s.service.SellRelic(s.ctx, input)
	s.Require().NoError(err)
	s.True(sold.Success)
	s.Equal(37, sold.Earned)
	st = s.state()
	s.Empty(st.Inventory.Relics)
	s.Empty(st.Inventory.EquippedRelicIDs)
	s.Equal(962, st.Gems)
	s.Equal(62, st.PlayerStats.Atk)
	s.Equal(1, st.Statistics.ItemsSold)
}

func (s *RelicTestSuite) TestPurchaseRelicWithoutGems() {
	s.load(nil)
	_, err := s.service.RefreshYojefMarket(s.ctx, &game.RefreshYojefMarketInput{Force: true})
	s.Require().NoError(err)

	out, err := s.service.PurchaseRelic(s.ctx, &game.ItemInput{ID: s.state().YojefMarket.Items[0].ID})
	s.Require().NoError(err)
	s.False(out.Success)
	s.Equal(0, s.state().Gems)
	s.Len(s.state().YojefMarket.Items, 3)
}

func (s *RelicTestSuite) TestEquipRelicSlotCap() {
	s.load(func(st *entities.GameState) {
		for i := 1; i <= 6; i++ {
			st.Inventory.Relics = append(st.Inventory.Relics, &entities.Relic{
				ID:      fmt.Sprintf("relic-%d", i),
				Name:    "Plain Charm",
				Rarity:  entities.RarityCommon,
				Type:    entities.ItemKindArmor,
				Level:   1,
				BaseDef: 2,
			})
		}
	})

	for i := 1; i <= entities.MaxEquippedRelics; i++ {
		out, err := s.service.EquipRelic(s.ctx, &game.ItemInput{ID: fmt.Sprintf("relic-%d", i)})
		s.Require().NoError(err)
		s.True(out.Success)
	}

	full, err := s.service.EquipRelic(s.ctx, &game.ItemInput{ID: "relic-6"})
	s.Require().NoError(err)
	s.False(full.Success)

	st := s.state()
	s.Len(st.Inventory.EquippedRelicIDs, entities.MaxEquippedRelics)
	s.Equal(26, st.PlayerStats.Def)

	freed, err := s.service.UnequipRelic(s.ctx, &game.ItemInput{ID: "relic-1"})
	s.Require().NoError(err)
	s.True(freed.Success)
	s.Equal(24, s.state().PlayerStats.Def)

	out, err := s.service.EquipRelic(s.ctx, &game.ItemInput{ID: "relic-6"})
	s.Require().NoError(err)
	s.True(out.Success)

	notEquipped, err := s.service.UnequipRelic(s.ctx, &game.ItemInput{ID: "relic-1"})
	s.Require().NoError(err)
	s.False(notEquipped.Success)
}
