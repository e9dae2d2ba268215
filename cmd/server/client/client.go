// Package client provides test commands for the arena gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	v1alpha1 "github.com/KirkDiggler/rpg-arena/internal/handlers/arena/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	playerID string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the arena",
	Long:  `Client commands allow you to test the arena by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&playerID, "player-id", "player1", "Player making the requests")

	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(joinCmd)
	ClientCmd.AddCommand(moveCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(settleCmd)
	ClientCmd.AddCommand(opponentsCmd)
	ClientCmd.AddCommand(lastErrorCmd)
	ClientCmd.AddCommand(playCmd)
}

// createBattleClient creates a battle service client
func createBattleClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

func printBattle(b *entities.Battle) {
	if b == nil {
		return
	}
	local, opponent := b.Local(), b.Opponent()

	fmt.Printf("Battle %s (round %d, %s)\n", b.ID, b.RoundNumber, b.Status)
	fmt.Printf("  You:      %-16s %-14s %3d/%d HP\n",
		local.Player.Username, local.Character.Name, local.CurrentHealth, local.Character.MaxHealth)
	fmt.Printf("  Opponent: %-16s %-14s %3d/%d HP\n",
		opponent.Player.Username, opponent.Character.Name, opponent.CurrentHealth, opponent.Character.MaxHealth)

	if b.IsActive() {
		fmt.Printf("  Turn: %s\n", b.CurrentTurn)
		return
	}
	if b.LocalWon() {
		fmt.Printf("  🏆 You won %d tokens (settled: %v)\n", b.RewardAmount, b.Settled)
	} else {
		fmt.Printf("  💀 You lost (settled: %v)\n", b.Settled)
	}
}

func printMoves(label string, moves []entities.MoveRecord) {
	for _, m := range moves {
		fmt.Printf("  %s round %d side %s: %-12s %3d damage\n", label, m.Round, m.Side, m.Move, m.Damage)
	}
}

func printResponse(resp *v1alpha1.BattleResponse) {
	if resp.Record != nil {
		printMoves("you     ", []entities.MoveRecord{*resp.Record})
	}
	printMoves("opponent", resp.OpponentMoves)
	printBattle(resp.Battle)
}
