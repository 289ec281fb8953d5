package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kapral18/ytsurf/internal/app"
	"github.com/kapral18/ytsurf/internal/application/doctor"
	"github.com/kapral18/ytsurf/internal/domain"
	"github.com/kapral18/ytsurf/internal/infrastructure/cli/commands"
	"github.com/kapral18/ytsurf/internal/pkg/scratch"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	var (
		audioOnly    bool
		download     bool
		chooseFormat bool
		historyView  bool
		menuName     string
		limit        int
		noThumbs     bool
	)

	root := &cobra.Command{
		Use:   "ytsurf [query]",
		Short: "Search, pick, and play videos from the terminal",
		Long: "ytsurf searches a video platform, lets you pick a result with fzf,\n" +
			"rofi, or a plain prompt, and streams or downloads the pick.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !historyView {
				return cmd.Help()
			}

			cfg := container.FileConfig
			if err := applyFlags(cmd, &cfg, audioOnly, download, chooseFormat,
				historyView, menuName, limit, noThumbs); err != nil {
				return err
			}
			if err := doctor.EnsureTools(cfg); err != nil {
				return err
			}

			scratchDir, cleanup, err := scratch.New()
			if err != nil {
				return fmt.Errorf("create scratch dir: %w", err)
			}
			defer cleanup()

			svc := container.SurfService(cfg, scratchDir)
			return report(cmd, svc.Run(cmd.Context(), strings.Join(args, " ")))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().BoolVarP(&audioOnly, "audio", "a", false, "Play audio only")
	root.Flags().BoolVarP(&download, "download", "d", false, "Download instead of streaming")
	root.Flags().BoolVarP(&chooseFormat, "formats", "f", false, "Prompt for a format/resolution")
	root.Flags().BoolVarP(&historyView, "history", "H", false, "Pick from playback history")
	root.Flags().StringVarP(&menuName, "menu", "m", "", "Menu backend: fzf, rofi, or plain")
	root.Flags().IntVarP(&limit, "limit", "l", 0, "Number of search results (1-50)")
	root.Flags().BoolVar(&noThumbs, "no-thumbnails", false, "Disable thumbnail previews")

	root.AddCommand(commands.NewVersionCommand())
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewCacheCommand(container))
	return root, nil
}

// applyFlags overlays explicit CLI choices on the file configuration. An
// out-of-range limit given on the command line is explicit user intent and a
// hard error, unlike config-file values which fall back with a warning.
func applyFlags(cmd *cobra.Command, cfg *domain.Config, audioOnly, download,
	chooseFormat, historyView bool, menuName string, limit int, noThumbs bool) error {
	if audioOnly {
		cfg.AudioOnly = true
	}
	if download {
		cfg.Mode = domain.ModeDownload
	}
	if chooseFormat {
		cfg.ChooseFormat = true
	}
	if historyView {
		cfg.HistoryView = true
	}
	if noThumbs {
		cfg.ShowThumbnails = false
	}
	if menuName != "" {
		switch backend := domain.MenuBackend(menuName); backend {
		case domain.MenuFzf, domain.MenuRofi, domain.MenuPlain:
			cfg.Menu = backend
		default:
			return fmt.Errorf("unknown menu backend %q (want fzf, rofi, or plain)", menuName)
		}
	}
	if cmd.Flags().Changed("limit") {
		if !domain.ValidLimit(limit) {
			return fmt.Errorf("limit %d out of range %d-%d", limit, domain.LimitMin, domain.LimitMax)
		}
		cfg.Limit = limit
	}
	return nil
}

// report maps the outcome taxonomy onto user-facing output. Cancellation is
// a quiet zero exit; an empty result set explains itself; everything else
// propagates as a hard failure.
func report(cmd *cobra.Command, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrCancelled):
		return nil
	case errors.Is(err, domain.ErrNoResults):
		fmt.Fprintln(cmd.OutOrStdout(), "No results found.")
		return nil
	case errors.Is(err, domain.ErrNoHistory):
		fmt.Fprintln(cmd.OutOrStdout(), "No playback history yet.")
		return nil
	default:
		return err
	}
}
