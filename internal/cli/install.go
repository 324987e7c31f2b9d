package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/acpkit/agentscout/internal/agent"
	"github.com/acpkit/agentscout/internal/detect"
	apperrors "github.com/acpkit/agentscout/internal/errors"
	"github.com/acpkit/agentscout/internal/install"
	"github.com/acpkit/agentscout/internal/progress"
)

var (
	installYes     bool
	installTimeout time.Duration
)

var installCmd = &cobra.Command{
	Use:   "install <agent>",
	Short: "Install a coding agent CLI",
	Long: `Install an agent using the platform's recipe. Prerequisites are checked
first and the installation is verified by re-detecting the agent.

The install command asks for confirmation before running the installer;
pass --yes to skip the prompt.`,
	Example: `  agentscout install opencode
  agentscout install codex --yes --timeout 20m`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Skip the confirmation prompt")
	installCmd.Flags().DurationVar(&installTimeout, "timeout", 0, "Installer timeout (default from config)")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	kind, err := agent.ParseKind(args[0])
	if err != nil {
		return apperrors.UnknownAgent(args[0], agentNames())
	}

	w := cmd.OutOrStdout()

	// Skip the installer when the agent is already present.
	if status := detect.Detect(cmd.Context(), kind); status.IsFound() {
		version := "version unknown"
		if status.Version != nil {
			version = status.Version.String()
		}
		fmt.Fprintf(w, "%s is already installed (%s)\n", kind.DisplayName(), version)
		return nil
	}

	info := install.Resolve(kind, agent.CurrentOS())
	if !info.Supported {
		return apperrors.NewPrerequisiteError(
			fmt.Sprintf("no automated installer for %s on %s", kind.DisplayName(), info.OS),
			fmt.Sprintf("see %s for manual instructions", info.DocsURL))
	}

	if !installYes {
		fmt.Fprintf(w, "About to run:\n  %s\n", info.Primary.Raw)
		if !confirm(cmd) {
			fmt.Fprintln(w, "Aborted.")
			return nil
		}
	}

	opts := install.Options{Timeout: cfg.InstallTimeoutDuration()}
	if installTimeout > 0 {
		opts.Timeout = installTimeout
	}

	display := newInstallDisplay(cfg.Plain)
	err = install.Install(cmd.Context(), kind, opts, display.onProgress)
	display.finish(err)

	if err != nil {
		return apperrors.InstallFailed(err, install.FixFor(err))
	}

	fmt.Fprintf(w, "%s installed successfully\n", kind.DisplayName())
	return nil
}

// confirm reads a y/N answer from the command's input.
func confirm(cmd *cobra.Command) bool {
	fmt.Fprint(cmd.OutOrStdout(), "Proceed? [y/N] ")
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// installDisplay adapts install progress events to the progress package's
// step display.
type installDisplay struct {
	display *progress.Display
	current *progress.StepInfo
}

func newInstallDisplay(plain bool) *installDisplay {
	caps := progress.DetectTerminalCapabilities()
	if plain {
		caps.IsTTY = false
	}
	return &installDisplay{display: progress.NewDisplay(caps)}
}

// stepForStage maps installer stages onto displayed steps. StageStarted
// and StageCompleted frame the flow and have no step of their own.
func stepForStage(stage install.Stage) (progress.StepInfo, bool) {
	switch stage {
	case install.StageCheckingPrereqs:
		return progress.StepInfo{Name: "checking prerequisites", Number: 1, TotalSteps: 3}, true
	case install.StageInstalling:
		return progress.StepInfo{Name: "running installer", Number: 2, TotalSteps: 3}, true
	case install.StageVerifying:
		return progress.StepInfo{Name: "verifying installation", Number: 3, TotalSteps: 3}, true
	default:
		return progress.StepInfo{}, false
	}
}

func (d *installDisplay) onProgress(p install.Progress) {
	d.completeCurrent()
	if p.Stage == install.StageCompleted {
		return
	}
	if step, ok := stepForStage(p.Stage); ok {
		d.current = &step
		d.display.StartStep(step)
	}
}

func (d *installDisplay) completeCurrent() {
	if d.current != nil {
		d.display.CompleteStep(*d.current)
		d.current = nil
	}
}

// finish closes out the display after Install returns, marking the step
// that was in flight as failed when err is non-nil.
func (d *installDisplay) finish(err error) {
	if err == nil {
		d.completeCurrent()
		return
	}
	if d.current != nil {
		d.display.FailStep(*d.current, err)
		d.current = nil
	}
	d.display.StopSpinner()
}
