package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/trivia-quest/internal/entities"
	"github.com/KirkDiggler/trivia-quest/internal/orchestrators/game"
	"github.com/KirkDiggler/trivia-quest/internal/pkg/clock"
	saveslot "github.com/KirkDiggler/trivia-quest/internal/repositories/save_slot"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	repo, err := saveslot.NewRedis(&saveslot.RedisConfig{Client: client, Clock: clock.New()})
	if err != nil {
		log.Fatal("Failed to create save repository:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning save slots...")

	iter := client.Scan(ctx, 0, saveslot.KeyPrefix+"*", 0).Iterator()

	var unreadable []string
	var checkedCount int

	for iter.Next(ctx) {
		redisKey := iter.Val()
		saveKey := strings.TrimPrefix(redisKey, saveslot.KeyPrefix)
		checkedCount++

		out, err := repo.Get(ctx, saveslot.GetInput{Key: saveKey})
		if err != nil {
			fmt.Printf("✗ Error reading %s: %v\n", saveKey, err)
			unreadable = append(unreadable, redisKey)
			continue
		}

		// Hydrating over an empty state exercises decoding without balance data
		state, err := game.Hydrate(&entities.GameState{}, out.Payload)
		if err != nil {
			fmt.Printf("✗ Unreadable save %s: %v\n", saveKey, err)
			unreadable = append(unreadable, redisKey)
			continue
		}

		fmt.Printf("✓ %s  updated=%s zone=%d coins=%d gems=%d phase=%s\n",
			saveKey, out.UpdatedAt.Format("2006-01-02 15:04"), state.Zone, state.Coins, state.Gems, state.Phase())
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d saves, found %d unreadable\n", checkedCount, len(unreadable))

	if len(unreadable) == 0 {
		return
	}

	fmt.Println("\nUnreadable keys (the server would start these from defaults):")
	for _, key := range unreadable {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these saves? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range unreadable {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
}
