// Command settle-stuck-battles finds battles that completed without a
// successful settlement and retries them through the gRPC API.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	v1alpha1 "github.com/KirkDiggler/rpg-arena/internal/handlers/arena/v1alpha1"
	redisclient "github.com/KirkDiggler/rpg-arena/internal/redis"
)

func main() {
	serverAddr := flag.String("server", "localhost:50051", "gRPC server address")
	yes := flag.Bool("yes", false, "Settle without asking")
	flag.Parse()

	redisURL := os.Getenv("ARENA_REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	client, err := redisclient.NewClientFromURL(redisURL, nil)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := redisclient.Ping(ctx, client, 5*time.Second); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for unsettled battles...")

	iter := client.Scan(ctx, 0, "battle:*", 0).Iterator()

	var stuck []string
	var checkedCount, corruptCount int

	for iter.Next(ctx) {
		key := iter.Val()
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var b entities.Battle
		if err := json.Unmarshal([]byte(data), &b); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptCount++
			continue
		}

		if b.Status == entities.StatusCompleted && !b.Settled {
			fmt.Printf("✗ %s completed at round %d but is not settled\n", b.ID, b.RoundNumber)
			stuck = append(stuck, b.ID)
		}
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d battles: %d corrupted, %d unsettled\n", checkedCount, corruptCount, len(stuck))
	if len(stuck) == 0 {
		return
	}

	if !*yes {
		fmt.Print("\nRetry settlement for these battles? (yes/no): ")
		var response string
		_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input means no
		if strings.TrimSpace(response) != "yes" {
			fmt.Println("Aborted - no changes made")
			return
		}
	}

	conn, err := grpc.NewClient(*serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to server:", err)
	}
	defer conn.Close()
	arena := v1alpha1.NewClient(conn)

	for _, id := range stuck {
		callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		resp, err := arena.SettleBattle(callCtx, &v1alpha1.BattleRequest{BattleID: id})
		cancel()
		if err != nil {
			fmt.Printf("Failed to settle %s: %v\n", id, err)
			continue
		}
		fmt.Printf("Settled %s (credited: %v)\n", id, resp.Credited)
	}
}
