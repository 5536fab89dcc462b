// Package main is the entry point for the trivia-quest game server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trivia-quest/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "trivia-quest",
	Short: "Trivia Quest game-state server",
	Long: `Trivia Quest runs the authoritative game-state engine for a single save slot
and exposes it to the presentation layer over gRPC and REST.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
