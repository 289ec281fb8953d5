package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kapral18/ytsurf/internal/app"
)

// NewCacheCommand creates the cache command with its subcommands
func NewCacheCommand(container *app.Container) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the search-result cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), container.CacheStore(container.FileConfig).Dir())
			return nil
		},
	}

	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all cached result sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return container.CacheStore(container.FileConfig).Clear()
		},
	})

	return cacheCmd
}
