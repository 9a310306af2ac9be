package commands

import "github.com/spf13/cobra"

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or refresh the local source cache",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List cache files with their age, size and digest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.CacheStatus(cmd.Context())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Force a full cache refresh for every active project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.RefreshCache(cmd.Context())
		},
	})
	return cmd
}
