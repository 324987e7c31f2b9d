package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/acpkit/agentscout/internal/errors"
	"github.com/acpkit/agentscout/internal/health"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for agents and installer tooling",
	Long: `Run health checks: probe every known agent and verify the tooling the
installers rely on (node, npm, curl) is available.

Exits non-zero when no agent is installed at all.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report := health.RunChecks(cmd.Context())
		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

		if !report.AnyAgent {
			return apperrors.NewPrerequisiteError(
				"no coding agent is installed",
				"run 'agentscout install <agent>' to install one")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
