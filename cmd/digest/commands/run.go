package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/digest/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate reports for one project or every active project",
		Long: "Without --project, run generates reports for every active project after one shared " +
			"cache refresh. Scheduled runs only proceed on the configured weekday unless --force is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectID, _ := cmd.Flags().GetString("project")
			force, _ := cmd.Flags().GetBool("force")
			noNotify, _ := cmd.Flags().GetBool("no-notify")
			cacheStatus, _ := cmd.Flags().GetBool("cache-status")
			refreshCache, _ := cmd.Flags().GetBool("refresh-cache")

			return c.app.Run(cmd.Context(), app.RunOptions{
				ProjectID:    projectID,
				Force:        force,
				NoNotify:     noNotify,
				CacheStatus:  cacheStatus,
				RefreshCache: refreshCache,
			})
		},
	}
	cmd.Flags().StringP("project", "p", "", "Run a single project by its tracker ID")
	cmd.Flags().BoolP("force", "f", false, "Ignore the weekday gate and refresh the cache unconditionally")
	cmd.Flags().Bool("no-notify", false, "Do not send chat notifications")
	cmd.Flags().Bool("cache-status", false, "Print the cache status and exit")
	cmd.Flags().Bool("refresh-cache", false, "Refresh the cache for every active project and exit")
	cmd.MarkFlagsMutuallyExclusive("cache-status", "refresh-cache")
	return cmd
}
