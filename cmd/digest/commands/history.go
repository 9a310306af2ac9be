package commands

import "github.com/spf13/cobra"

const defaultHistoryLimit = 20

func (c *CLI) newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recent report executions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			return c.app.History(cmd.Context(), limit)
		},
	}
	cmd.Flags().IntP("limit", "l", defaultHistoryLimit, "Number of executions to show")
	return cmd
}
