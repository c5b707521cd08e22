package main

import (
	"fmt"

	"github.com/jacksmith/quest/internal/model"
	"github.com/jacksmith/quest/internal/store"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new quest",
	Long: `Add a new quest to the log.

Quest names are unique; adding a name that already exists is an error.
If --priority is not specified, the default_priority from
.questconfig.yaml is used (medium when no config exists).

Examples:
  quest add --name "Slay Dragon" --description "Defeat the dragon in the cave"
  quest add --name "Buy torches" --description "Ten should do" --priority high`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addName        string
	addDescription string
	addPriority    string
)

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "quest name (required)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "quest description (required)")
	addCmd.Flags().StringVar(&addPriority, "priority", "", "quest priority (high, medium, or low)")
	addCmd.MarkFlagRequired("name")
	addCmd.MarkFlagRequired("description")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	var priority model.Priority
	if addPriority != "" {
		priority, err = model.ParsePriority(addPriority)
		if err != nil {
			return err
		}
	} else {
		// Use default priority from config if not specified
		cfg, err := store.LoadConfig(".")
		if err != nil {
			return err
		}
		priority = model.Priority(cfg.DefaultPriority)
	}

	q, err := s.Add(addName, addDescription, priority)
	if err != nil {
		return err
	}

	fmt.Printf("Added quest %q (priority: %s)\n", q.Name, q.Priority)
	return nil
}
