// Package main is the entry point for the arena server and its test client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-arena/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-arena",
	Short: "RPG Arena battle server",
	Long:  `RPG Arena resolves turn-based battles between players and auto-played opponents over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
