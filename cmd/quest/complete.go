package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark a quest as done",
	Long: `Mark a quest as done by exact name.

Examples:
  quest complete --name "Slay Dragon"`,
	Args: cobra.NoArgs,
	RunE: runComplete,
}

var completeName string

func init() {
	completeCmd.Flags().StringVar(&completeName, "name", "", "quest name (required)")
	completeCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	q, err := s.Complete(completeName)
	if err != nil {
		return err
	}

	fmt.Printf("Quest %q marked as done.\n", q.Name)
	return nil
}
