package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/acpkit/agentscout/internal/agent"
	apperrors "github.com/acpkit/agentscout/internal/errors"
	"github.com/acpkit/agentscout/internal/install"
)

var infoOS string

var infoCmd = &cobra.Command{
	Use:   "info <agent>",
	Short: "Show how an agent would be installed",
	Long: `Show the installation recipe for an agent: the primary install command
for the platform, alternative methods, and any prerequisites.`,
	Example: `  agentscout info claude
  agentscout info codex --os windows`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().StringVar(&infoOS, "os", "", "Show the recipe for another platform (linux, darwin, windows)")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	kind, err := agent.ParseKind(args[0])
	if err != nil {
		return apperrors.UnknownAgent(args[0], agentNames())
	}

	hostOS := agent.CurrentOS()
	if infoOS != "" {
		hostOS = agent.HostOS(infoOS)
	}

	printInstallInfo(cmd.OutOrStdout(), install.Resolve(kind, hostOS))
	return nil
}

func printInstallInfo(w io.Writer, info install.Info) {
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s on %s\n\n", bold(info.Kind.DisplayName()), info.OS)

	if !info.Supported {
		fmt.Fprintf(w, "No automated installer for this platform.\n")
		fmt.Fprintf(w, "See %s for manual instructions.\n", info.DocsURL)
		return
	}

	fmt.Fprintf(w, "Install:\n  %s\n  %s\n", info.Primary.Description, bold(info.Primary.Raw))

	for _, alt := range info.Alternatives {
		fmt.Fprintf(w, "\nAlternative:\n  %s\n  %s\n", alt.Description, alt.Raw)
	}

	if len(info.Prerequisites) > 0 {
		fmt.Fprintf(w, "\nRequires:\n")
		for _, prereq := range info.Prerequisites {
			fmt.Fprintf(w, "  %s (%s)\n", prereq.Name, prereq.InstallURL)
		}
	}

	fmt.Fprintf(w, "\nVerify with: %s\n", info.Verification.Command)
	fmt.Fprintf(w, "Docs: %s\n", info.DocsURL)
}
