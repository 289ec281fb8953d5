package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kapral18/ytsurf/internal/app"
	"github.com/kapral18/ytsurf/internal/domain"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external tools and paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService(container.FileConfig).Run(cmd.Context())
			if err != nil {
				return err
			}
			renderHealthReport(cmd.OutOrStdout(), report)
			if !report.Healthy() {
				return fmt.Errorf("environment checks failed")
			}
			return nil
		},
	}
}

func renderHealthReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "%-4s %-14s %s\n", marker(check.Status), check.Name, check.Detail)
	}
}

func marker(status domain.HealthStatus) string {
	switch status {
	case domain.HealthOK:
		return "[ok]"
	case domain.HealthWarn:
		return "[--]"
	default:
		return "[!!]"
	}
}
