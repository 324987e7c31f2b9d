package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/acpkit/agentscout/internal/agent"
	"github.com/acpkit/agentscout/internal/detect"
	apperrors "github.com/acpkit/agentscout/internal/errors"
)

var (
	detectJSON        bool
	detectSkipVersion bool
	detectTimeout     time.Duration
)

var detectCmd = &cobra.Command{
	Use:   "detect [agent...]",
	Short: "Detect installed coding agent CLIs",
	Long: `Probe the system for installed coding agent CLIs. With no arguments all
known agents are probed; otherwise only the named ones.

Each agent is reported as one of:
  found           installed and responding to its version flag
  not found       no executable on PATH or in fallback locations
  unresponsive    executable exists but its version command failed or hung
  probe failed    the probe itself could not run`,
	Example: `  agentscout detect
  agentscout detect claude gemini
  agentscout detect --json
  agentscout detect --skip-version --timeout 2s`,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Output in JSON format")
	detectCmd.Flags().BoolVar(&detectSkipVersion, "skip-version", false, "Check presence only, skip version probing")
	detectCmd.Flags().DurationVar(&detectTimeout, "timeout", 0, "Per-agent probe timeout (default from config)")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	kinds, err := parseKinds(args)
	if err != nil {
		return err
	}

	opts := detect.Options{
		Timeout:     cfg.ProbeTimeoutDuration(),
		SkipVersion: cfg.SkipVersion || detectSkipVersion,
	}
	if detectTimeout > 0 {
		opts.Timeout = detectTimeout
	}

	result := detect.New(opts).DetectKinds(cmd.Context(), kinds)

	if detectJSON {
		return printDetectJSON(cmd.OutOrStdout(), kinds, result)
	}
	printDetectTable(cmd.OutOrStdout(), kinds, result)

	// Explicitly requested agents that are absent make the command fail,
	// so scripts can gate on detection.
	if len(args) > 0 {
		var missing []string
		for _, kind := range kinds {
			if !result[kind].Present() {
				missing = append(missing, kind.String())
			}
		}
		if len(missing) > 0 {
			return apperrors.NewRuntimeError(
				fmt.Sprintf("not installed: %s", strings.Join(missing, ", ")),
				"run 'agentscout info <agent>' to see how to install it")
		}
	}
	return nil
}

// parseKinds maps agent name arguments to kinds. No arguments means all
// known agents.
func parseKinds(args []string) ([]agent.Kind, error) {
	if len(args) == 0 {
		return agent.All(), nil
	}

	seen := make(map[agent.Kind]bool, len(args))
	kinds := make([]agent.Kind, 0, len(args))
	for _, arg := range args {
		kind, err := agent.ParseKind(arg)
		if err != nil {
			return nil, apperrors.UnknownAgent(arg, agentNames())
		}
		if !seen[kind] {
			seen[kind] = true
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}

func agentNames() []string {
	names := make([]string, 0, len(agent.All()))
	for _, kind := range agent.All() {
		names = append(names, kind.String())
	}
	return names
}

func printDetectTable(w io.Writer, kinds []agent.Kind, result detect.Result) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, kind := range kinds {
		status := result[kind]
		name := fmt.Sprintf("%-12s", kind.DisplayName())

		switch status.State {
		case detect.StateFound:
			version := "version unknown"
			if status.Version != nil {
				version = status.Version.String()
			}
			line := fmt.Sprintf("%s %s  %s", green("✓"), name, version)
			if status.InstallMethod != "" {
				line += fmt.Sprintf(" (via %s)", status.InstallMethod)
			}
			fmt.Fprintln(w, line)
		case detect.StateUnresponsive:
			fmt.Fprintf(w, "%s %s  installed at %s but not responding\n", yellow("!"), name, status.Path)
		case detect.StateProbeFailed:
			fmt.Fprintf(w, "%s %s  probe failed: %v\n", red("✗"), name, status.Err)
		default:
			fmt.Fprintf(w, "%s %s  not found\n", red("✗"), name)
		}
	}
}

// detectEntry is the JSON output shape for one agent.
type detectEntry struct {
	Agent         string `json:"agent"`
	DisplayName   string `json:"display_name"`
	State         string `json:"state"`
	Path          string `json:"path,omitempty"`
	Version       string `json:"version,omitempty"`
	RawVersion    string `json:"raw_version,omitempty"`
	InstallMethod string `json:"install_method,omitempty"`
	Error         string `json:"error,omitempty"`
}

func printDetectJSON(w io.Writer, kinds []agent.Kind, result detect.Result) error {
	entries := make([]detectEntry, 0, len(kinds))
	for _, kind := range kinds {
		status := result[kind]
		entry := detectEntry{
			Agent:         kind.String(),
			DisplayName:   kind.DisplayName(),
			State:         status.State.String(),
			Path:          status.Path,
			RawVersion:    status.RawVersion,
			InstallMethod: status.InstallMethod,
		}
		if status.Version != nil {
			entry.Version = status.Version.String()
		}
		if status.Err != nil {
			entry.Error = status.Err.Error()
		}
		entries = append(entries, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
