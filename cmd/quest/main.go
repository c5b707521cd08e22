// Package main is the entry point for the quest CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/quest/internal/cli"
	"github.com/jacksmith/quest/internal/store"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quest",
	Short: "quest - a quest log for your terminal",
	Long: `quest tracks a list of named quests, each with a description, a
priority (high, medium, or low), and a completion flag, persisted to a
local JSON file.

Quests are added, listed, completed, and removed by exact name.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	// Invoking with no action is a usage error
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Help()
		return fmt.Errorf("an action is required: add, list, complete, or remove")
	},
}

var rootFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFile, "file", "",
		"quest file path (default from .questconfig.yaml, else quests.json)")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("quest version {{.Version}}\n")
}

// openStore resolves the quest file path (--file, then config, then the
// default) and opens it.
func openStore() (*store.Store, error) {
	path := rootFile
	if path == "" {
		cfg, err := store.LoadConfig(".")
		if err != nil {
			return nil, err
		}
		path = cfg.DataFile
	}
	return store.Open(path)
}
