package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a quest",
	Long: `Remove a quest from the log by exact name.

Examples:
  quest remove --name "Slay Dragon"`,
	Args: cobra.NoArgs,
	RunE: runRemove,
}

var removeName string

func init() {
	removeCmd.Flags().StringVar(&removeName, "name", "", "quest name (required)")
	removeCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	q, err := s.Remove(removeName)
	if err != nil {
		return err
	}

	fmt.Printf("Quest %q removed.\n", q.Name)
	return nil
}
