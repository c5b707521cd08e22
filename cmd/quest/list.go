package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/quest/internal/cli"
	"github.com/jacksmith/quest/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List quests",
	Long: `List quests with optional filtering.

By default, lists all quests in the order they were added.

Filter flags:
  --filter-status    Show only pending or done quests
  --filter-priority  Show only quests with the given priority

When both filters are given, only quests matching both are shown.
--by-priority sorts the full log high to low instead of insertion
order and cannot be combined with filters.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listFilterStatus   string
	listFilterPriority string
	listByPriority     bool
)

func init() {
	listCmd.Flags().StringVar(&listFilterStatus, "filter-status", "", "filter by status (pending or done)")
	listCmd.Flags().StringVar(&listFilterPriority, "filter-priority", "", "filter by priority (high, medium, or low)")
	listCmd.Flags().BoolVar(&listByPriority, "by-priority", false, "sort by priority instead of insertion order")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listByPriority && (listFilterStatus != "" || listFilterPriority != "") {
		return fmt.Errorf("--by-priority cannot be combined with filter flags")
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	var quests []model.Quest
	if listByPriority {
		quests = s.ListByPriority()
	} else {
		quests, err = s.ListFiltered(listFilterStatus, listFilterPriority)
		if err != nil {
			return err
		}
	}

	if len(quests) == 0 {
		fmt.Println("No quests found.")
		return nil
	}

	table := cli.NewTable()
	table.SetMaxWidth(3, cli.DefaultMaxDescWidth)
	for _, q := range quests {
		table.AddRow(
			formatStatus(q.Status()),
			formatPriority(q.Priority),
			q.Name,
			q.Description,
		)
	}
	table.Render(os.Stdout)
	return nil
}

func formatStatus(st model.Status) string {
	if st == model.StatusDone {
		return cli.Green("[done]")
	}
	return cli.Yellow("[pending]")
}

func formatPriority(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return cli.Red(string(p))
	case model.PriorityLow:
		return cli.Gray(string(p))
	default:
		return string(p)
	}
}
