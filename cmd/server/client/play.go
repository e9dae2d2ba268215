package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	v1alpha1 "github.com/KirkDiggler/rpg-arena/internal/handlers/arena/v1alpha1"
)

var (
	playStrategy string
	playMaxMoves int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Create a battle and play it to the end",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&opponentID, "opponent-id", "1", "Opponent player ID")
	playCmd.Flags().StringVar(&playStrategy, "strategy", "attack", "Move to repeat: attack, special or item:<id>")
	playCmd.Flags().IntVar(&playMaxMoves, "max-moves", 50, "Give up after this many moves")
}

func parseStrategy(s string) (entities.Move, error) {
	if len(s) > 5 && s[:5] == "item:" {
		return entities.UseItem(s[5:]), nil
	}
	kind, err := entities.ParseMoveKind(s)
	if err != nil {
		return entities.Move{}, err
	}
	move := entities.Move{Kind: kind}
	return move, move.Validate()
}

func runPlay(_ *cobra.Command, _ []string) error {
	move, err := parseStrategy(playStrategy)
	if err != nil {
		return err
	}

	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()

	created, err := call(ctx, func(ctx context.Context) (*v1alpha1.BattleResponse, error) {
		return client.CreateBattle(ctx, &v1alpha1.CreateBattleRequest{PlayerID: playerID, OpponentID: opponentID})
	})
	if err != nil {
		return fmt.Errorf("failed to create battle: %w", err)
	}
	printBattle(created.Battle)

	battleID := created.Battle.ID
	for i := 0; i < playMaxMoves; i++ {
		resp, err := call(ctx, func(ctx context.Context) (*v1alpha1.BattleResponse, error) {
			return client.MakeMove(ctx, &v1alpha1.MakeMoveRequest{BattleID: battleID, PlayerID: playerID, Move: move})
		})
		if err != nil {
			return fmt.Errorf("failed to make move %d: %w", i+1, err)
		}

		fmt.Println()
		printResponse(resp)
		if !resp.Battle.IsActive() {
			return nil
		}
	}

	return fmt.Errorf("battle %s still active after %d moves", battleID, playMaxMoves)
}

func call(ctx context.Context, fn func(context.Context) (*v1alpha1.BattleResponse, error)) (*v1alpha1.BattleResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(ctx)
}
