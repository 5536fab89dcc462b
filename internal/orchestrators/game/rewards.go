package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
)

const dateLayout = "2006-01-02"

// ClaimDailyReward pays today's reward once per calendar day. The streak
// continues only when yesterday was claimed; rewards cycle through the table.
func (o *orchestrator) ClaimDailyReward(ctx context.Context) (*ClaimDailyRewardOutput, error) {
	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ClaimDailyRewardOutput) {
		table := o.balance.DailyRewards
		now := o.clock.Now()
		today := now.Format(dateLayout)
		daily := &s.DailyRewards

		if len(table) == 0 || daily.LastClaimDate == today {
			return s, &ClaimDailyRewardOutput{}
		}

		if daily.LastClaimDate == now.AddDate(0, 0, -1).Format(dateLayout) {
			daily.CurrentStreak++
		} else {
			daily.CurrentStreak = 1
		}
		daily.MaxStreak = max(daily.MaxStreak, daily.CurrentStreak)
		daily.TotalClaimed++
		daily.LastClaimDate = today

		day := (daily.CurrentStreak-1)%len(table) + 1
		reward := table[day-1]
		earnCoins(s, reward.Coins)
		earnGems(s, reward.Gems)
		earnShinyGems(s, reward.ShinyGems)

		slog.Info("Daily reward claimed", "day", day, "streak", daily.CurrentStreak)
		return s, &ClaimDailyRewardOutput{
			Success: true,
			Day:     day,
			Streak:  daily.CurrentStreak,
			Reward:  reward,
		}
	})
}

// ClaimOfflineRewards pays coins for the whole minutes since the last commit,
// up to the offline cap, scaled by zone
func (o *orchestrator) ClaimOfflineRewards(ctx context.Context) (*ClaimOfflineRewardsOutput, error) {
	return mutate(ctx, o, func(s *entities.GameState) (*entities.GameState, *ClaimOfflineRewardsOutput) {
		if s.LastActive.IsZero() {
			return s, &ClaimOfflineRewardsOutput{}
		}

		elapsed := min(o.clock.Now().Sub(s.LastActive), o.balance.Offline.Cap())
		minutes := int(elapsed / time.Minute)
		coins := minutes * o.balance.Offline.CoinsPerMinute * s.Zone
		if coins <= 0 {
			return s, &ClaimOfflineRewardsOutput{}
		}

		earnCoins(s, coins)

		slog.Info("Offline rewards claimed", "minutes", minutes, "coins", coins)
		return s, &ClaimOfflineRewardsOutput{Success: true, Coins: coins, Elapsed: elapsed}
	})
}
