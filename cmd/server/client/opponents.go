package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-arena/internal/handlers/arena/v1alpha1"
)

var opponentsCmd = &cobra.Command{
	Use:   "opponents",
	Short: "List opponents",
	RunE:  runOpponents,
}

var lastErrorCmd = &cobra.Command{
	Use:   "last-error",
	Short: "Show the last failure recorded for the player",
	RunE:  runLastError,
}

func runOpponents(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListOpponents(ctx)
	if err != nil {
		return fmt.Errorf("failed to list opponents: %w", err)
	}

	fmt.Printf("Found %d opponents:\n\n", len(resp.Opponents))
	for _, o := range resp.Opponents {
		fmt.Printf("  %-3s %-18s level %-3d %5d tokens\n", o.ID, o.Username, o.Level, o.Tokens)
	}
	return nil
}

func runLastError(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetLastError(ctx, &v1alpha1.PlayerRequest{PlayerID: playerID})
	if err != nil {
		return fmt.Errorf("failed to get last error: %w", err)
	}

	if resp.Message == "" {
		fmt.Println("No errors recorded")
		return nil
	}
	fmt.Println(resp.Message)
	return nil
}
