// Package main is the entry point for the cligame server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cligame",
	Short: "A multiplayer terminal RPG served over TCP",
	Long: `cligame hosts a terminal role-playing game. Players connect with nc or
telnet, authenticate with the shared password, and each get their own
session: character creation, exploration, NPC dialogue, and turn-based
combat against a shared, read-only world.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
