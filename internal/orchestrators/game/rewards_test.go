package game_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/errors"
	"github.com/KirkDiggler/trivia-quest/internal/orchestrators/game"
)

type RewardsTestSuite struct {
	gameSuite
}

func TestRewardsTestSuite(t *testing.T) {
	suite.Run(t, new(RewardsTestSuite))
}

func (s *RewardsTestSuite) TestDailyRewardStreak() {
	s.load(nil)

	day1, err := s.service.ClaimDailyReward(s.ctx)
	s.Require().NoError(err)
	s.True(day1.Success)
	s.Equal(1, day1.Day)
	s.Equal(100, day1.Reward.Coins)

	sameDay, err := s.service.ClaimDailyReward(s.ctx)
	s.Require().NoError(err)
	s.False(sameDay.Success)

	s.clock.Advance(24 * time.Hour)
	day2, err := s.service.ClaimDailyReward(s.ctx)
	s.Require().NoError(err)
	s.True(day2.Success)
	s.Equal(2, day2.Day)
	s.Equal(2, day2.Streak)

	st := s.state()
	s.Equal(750, st.Coins)
	s.Equal(3, st.Gems)

	s.clock.Advance(48 * time.Hour)
	broken, err := s.service.ClaimDailyReward(s.ctx)
	s.Require().NoError(err)
	s.True(broken.Success)
	s.Equal(1, broken.Day)
	s.Equal(1, broken.Streak)

	daily := s.state().DailyRewards
	s.Equal(2, daily.MaxStreak)
	s.Equal(3, daily.TotalClaimed)
	s.Equal(testStart.Add(72*time.Hour).Format("2006-01-02"), daily.LastClaimDate)
}

func (s *RewardsTestSuite) TestDailyRewardCycles() {
	s.load(func(st *entities.GameState) {
		st.DailyRewards = entities.DailyRewards{
			LastClaimDate: testStart.AddDate(0, 0, -1).Format("2006-01-02"),
			CurrentStreak: 7,
			MaxStreak:     7,
			TotalClaimed:  7,
		}
	})

	out, err := s.service.ClaimDailyReward(s.ctx)
	s.Require().NoError(err)
	s.True(out.Success)
	s.Equal(8, out.Streak)
	s.Equal(1, out.Day)
}

func (s *RewardsTestSuite) TestOfflineRewards() {
	testCases := []struct {
		name    string
		away    time.Duration
		zone    int
		success bool
		coins   int
	}{
		{name: "ninety minutes", away: 90 * time.Minute, zone: 1, success: true, coins: 90},
		{name: "scaled by zone", away: 90 * time.Minute, zone: 3, success: true, coins: 270},
		{name: "capped", away: 20 * time.Hour, zone: 1, success: true, coins: 480},
		{name: "under a minute", away: 30 * time.Second, zone: 1, success: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.load(func(st *entities.GameState) {
				st.Zone = tc.zone
				st.LastActive = testStart.Add(-tc.away)
			})

			out, err := s.service.ClaimOfflineRewards(s.ctx)
			s.Require().NoError(err)
			s.Equal(tc.success, out.Success)
			s.Equal(tc.coins, out.Coins)
			s.Equal(500+tc.coins, s.state().Coins)
		})
	}
}

func (s *RewardsTestSuite) TestGardenGrowsOnlyWhileWatered() {
	s.load(func(st *entities.GameState) {
		unlockAll(st)
		st.Coins = 2000
	})

	unplanted, err := s.service.UpdateGardenGrowth(s.ctx)
	s.Require().NoError(err)
	s.False(unplanted.Success)

	planted, err := s.service.PlantSeed(s.ctx)
	s.Require().NoError(err)
	s.True(planted.Success)

	replant, err := s.service.PlantSeed(s.ctx)
	s.Require().NoError(err)
	s.False(replant.Success)

	st := s.state()
	s.Equal(1000, st.Coins)
	s.InDelta(24.0, st.GardenOfGrowth.WaterHoursRemaining, 1e-9)

	s.clock.Advance(10 * time.Hour)
	grown, err := s.service.UpdateGardenGrowth(s.ctx)
	s.Require().NoError(err)
	s.True(grown.Success)
	s.InDelta(5.0, grown.GrowthCm, 1e-9)
	s.InDelta(14.0, grown.WaterHoursRemaining, 1e-9)
	s.InDelta(0.5, grown.TotalGrowthBonus, 1e-9)

	s.clock.Advance(20 * time.Hour)
	dry, err := s.service.UpdateGardenGrowth(s.ctx)
	s.Require().NoError(err)
	s.InDelta(12.0, dry.GrowthCm, 1e-9)
	s.InDelta(0.0, dry.WaterHoursRemaining, 1e-9)

	st = s.state()
	s.Equal(202, st.PlayerStats.MaxHP)
	for _, tag := range st.PlayerTags {
		if tag.ID == "gardener" {
			s.True(tag.Unlocked)
		}
	}

	s.clock.Advance(5 * time.Hour)
	watered, err := s.service.WaterPlant(s.ctx, &game.WaterPlantInput{Hours: 2})
	s.Require().NoError(err)
	s.True(watered.Success)

	st = s.state()
	s.InDelta(12.0, st.GardenOfGrowth.GrowthCm, 1e-9)
	s.InDelta(2.0, st.GardenOfGrowth.WaterHoursRemaining, 1e-9)
	s.Equal(900, st.Coins)
}

func (s *RewardsTestSuite) TestWaterPlantGuards() {
	s.load(nil)

	out, err := s.service.WaterPlant(s.ctx, &game.WaterPlantInput{Hours: 2})
	s.Require().NoError(err)
	s.False(out.Success)

	_, err = s.service.WaterPlant(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RewardsTestSuite) TestMenuSkillRollAndExpiry() {
	s.load(nil)

	rolled, err := s.service.RollMenuSkill(s.ctx)
	s.Require().NoError(err)
	s.Require().True(rolled.Success)
	s.Equal(entities.MenuSkillCoinVortex, rolled.Skill.Type)
	s.Equal(testStart.Add(30*time.Minute), rolled.Skill.ExpiresAt)

	busy, err := s.service.RollMenuSkill(s.ctx)
	s.Require().NoError(err)
	s.False(busy.Success)

	early, err := s.service.ExpireMenuSkill(s.ctx)
	s.Require().NoError(err)
	s.False(early.Success)

	s.clock.Advance(30 * time.Minute)
	expired, err := s.service.ExpireMenuSkill(s.ctx)
	s.Require().NoError(err)
	s.True(expired.Success)

	st := s.state()
	s.Nil(st.Skills.ActiveMenuSkill)
	s.Equal(1, st.Skills.TotalRolls)
	s.Equal(300, st.Coins)
}

func (s *RewardsTestSuite) TestMenuSkillsBoostVictory() {
	testCases := []struct {
		name   string
		skill  entities.MenuSkillType
		coins  int
		gems   int
		xp     int
		levels int
	}{
		{name: "coin vortex", skill: entities.MenuSkillCoinVortex, coins: 41, gems: 3, xp: 100, levels: 1},
		{name: "gem magnet", skill: entities.MenuSkillGemMagnet, coins: 33, gems: 4, xp: 100, levels: 1},
		{name: "scholars focus", skill: entities.MenuSkillScholarsFocus, coins: 33, gems: 3, xp: 200, levels: 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.load(func(st *entities.GameState) {
				unlockAll(st)
				st.Zone = 10
				st.Skills.ActiveMenuSkill = &entities.MenuSkill{ID: string(tc.skill), Type: tc.skill, ExpiresAt: testStart.Add(time.Hour)}
				inCombatWith(st, entities.Enemy{Name: "Training Dummy", HP: 1, MaxHP: 1, Zone: 10}, "")
			})

			out, err := s.service.Attack(s.ctx, &game.AttackInput{Hit: true})
			s.Require().NoError(err)
			s.Require().Equal(game.AttackOutcomeVictory, out.Outcome)
			s.Equal(tc.coins, out.Reward.Coins)
			s.Equal(tc.gems, out.Reward.Gems)
			s.Equal(tc.xp, out.Reward.Experience)
			s.Equal(tc.levels, out.Reward.LevelsUp)
		})
	}
}

func (s *RewardsTestSuite) TestUpdateSettings() {
	s.load(nil)
	dark := true
	lang := "fr"

	out, err := s.service.UpdateSettings(s.ctx, &game.UpdateSettingsInput{DarkMode: &dark, Language: &lang})
	s.Require().NoError(err)
	s.True(out.Success)
	s.Equal(entities.Settings{DarkMode: true, Language: "fr", SoundEnabled: true}, s.state().Settings)

	empty := ""
	_, err = s.service.UpdateSettings(s.ctx, &game.UpdateSettingsInput{Language: &empty})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RewardsTestSuite) TestInfiniteCoinsCheat() {
	s.load(func(st *entities.GameState) {
		st.Coins = 0
	})
	on := true

	out, err := s.service.UpdateCheats(s.ctx, &game.UpdateCheatsInput{InfiniteCoins: &on})
	s.Require().NoError(err)
	s.True(out.Success)

	upgraded, err := s.service.UpgradeWeapon(s.ctx, &game.ItemInput{ID: s.state().Inventory.CurrentWeaponID})
	s.Require().NoError(err)
	s.True(upgraded.Success)
	s.Equal(0, s.state().Coins)
}

func (s *RewardsTestSuite) TestResetGame() {
	s.load(func(st *entities.GameState) {
		st.Coins = 9000
		st.Zone = 42
		st.HasUsedRevival = true
	})

	out, err := s.service.ResetGame(s.ctx)
	s.Require().NoError(err)
	s.True(out.Success)

	st := s.state()
	s.Equal(500, st.Coins)
	s.Equal(1, st.Zone)
	s.False(st.HasUsedRevival)
	s.Equal(500, s.savedState().Coins)
}
