package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kapral18/ytsurf/internal/app"
	"github.com/kapral18/ytsurf/internal/domain"
)

const msgNoHistory = "No playback history yet."

// NewHistoryCommand creates the history command with its subcommands
func NewHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or clear playback history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHistory(cmd.OutOrStdout(), container)
		},
	}

	historyCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all history entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return container.HistoryStore(container.FileConfig).Clear()
		},
	})

	return historyCmd
}

func listHistory(out io.Writer, container *app.Container) error {
	records, err := container.HistoryStore(container.FileConfig).List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, msgNoHistory)
		return nil
	}
	for _, rec := range records {
		renderHistoryRecord(out, rec)
	}
	return nil
}

func renderHistoryRecord(out io.Writer, rec domain.VideoRecord) {
	when := ""
	if !rec.AddedAt.IsZero() {
		when = rec.AddedAt.Format("2006-01-02 15:04")
	}
	fmt.Fprintf(out, "%-16s  %s\n", when, rec.DisplayLine())
}
