package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-arena/internal/entities"
	v1alpha1 "github.com/KirkDiggler/rpg-arena/internal/handlers/arena/v1alpha1"
)

var (
	opponentID          string
	characterID         string
	opponentCharacterID string
	itemID              string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Start a battle against an opponent",
	RunE:  runCreate,
}

var joinCmd = &cobra.Command{
	Use:   "join [battle-id]",
	Short: "Join a battle under a chosen ID; the opponent moves first",
	Args:  cobra.ExactArgs(1),
	RunE:  runJoin,
}

var moveCmd = &cobra.Command{
	Use:   "move [battle-id] [attack|defend|special|item]",
	Short: "Make a move in a battle",
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

var getCmd = &cobra.Command{
	Use:   "get [battle-id]",
	Short: "Show a battle",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var settleCmd = &cobra.Command{
	Use:   "settle [battle-id]",
	Short: "Retry settlement of a completed battle",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettle,
}

func init() {
	for _, cmd := range []*cobra.Command{createCmd, joinCmd} {
		cmd.Flags().StringVar(&opponentID, "opponent-id", "1", "Opponent player ID")
		cmd.Flags().StringVar(&characterID, "character-id", "", "Your character (defaults to your first)")
		cmd.Flags().StringVar(&opponentCharacterID, "opponent-character-id", "", "Opponent character")
	}
	moveCmd.Flags().StringVar(&itemID, "item-id", "", "Item to use with the item move")
}

func runCreate(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Creating battle for player %s against %s...", playerID, opponentID)

	resp, err := client.CreateBattle(ctx, &v1alpha1.CreateBattleRequest{
		PlayerID:            playerID,
		OpponentID:          opponentID,
		CharacterID:         characterID,
		OpponentCharacterID: opponentCharacterID,
	})
	if err != nil {
		return fmt.Errorf("failed to create battle: %w", err)
	}

	fmt.Printf("✅ Battle created!\n\n")
	printBattle(resp.Battle)
	fmt.Printf("\n💡 Next: rpg-arena client move %s attack\n", resp.Battle.ID)
	return nil
}

func runJoin(_ *cobra.Command, args []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.JoinBattle(ctx, &v1alpha1.JoinBattleRequest{
		BattleID:            args[0],
		PlayerID:            playerID,
		OpponentID:          opponentID,
		CharacterID:         characterID,
		OpponentCharacterID: opponentCharacterID,
	})
	if err != nil {
		return fmt.Errorf("failed to join battle: %w", err)
	}

	printResponse(resp)
	return nil
}

func runMove(_ *cobra.Command, args []string) error {
	kind, err := entities.ParseMoveKind(args[1])
	if err != nil {
		return err
	}
	move := entities.Move{Kind: kind, ItemID: itemID}
	if err := move.Validate(); err != nil {
		return err
	}

	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.MakeMove(ctx, &v1alpha1.MakeMoveRequest{
		BattleID: args[0],
		PlayerID: playerID,
		Move:     move,
	})
	if err != nil {
		return fmt.Errorf("failed to make move: %w", err)
	}

	printResponse(resp)
	return nil
}

func runGet(_ *cobra.Command, args []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetBattle(ctx, &v1alpha1.BattleRequest{BattleID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get battle: %w", err)
	}

	printBattle(resp.Battle)
	printMoves("history ", resp.Battle.History)
	return nil
}

func runSettle(_ *cobra.Command, args []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SettleBattle(ctx, &v1alpha1.BattleRequest{BattleID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to settle battle: %w", err)
	}

	printBattle(resp.Battle)
	fmt.Printf("  Credited by this call: %v\n", resp.Credited)
	return nil
}
