// Package cli provides Cobra-based CLI commands for agentscout. It defines
// the user-facing commands for detecting installed coding agents (detect,
// list), inspecting installation recipes (info), and installing agents
// (install).
package cli

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/acpkit/agentscout/internal/config"
	apperrors "github.com/acpkit/agentscout/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "agentscout",
	Short: "Detect and install AI coding agent CLIs",
	Long: `agentscout detects which AI coding agent CLIs are installed on this
machine, normalizes their version strings, and knows how to install the
ones that are missing.

Supported agents: Claude Code, Codex, OpenCode, Gemini CLI.`,
	Example: `  # Probe all known agents
  agentscout detect

  # Probe specific agents
  agentscout detect claude gemini

  # Show how an agent would be installed on this platform
  agentscout info codex

  # Install an agent
  agentscout install opencode`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printCommandError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (JSON)")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable spinners and interactive output")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, apperrors.ConfigLoadFailed(err)
	}

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		cfg.Plain = true
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.NoColor = true
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	return cfg, nil
}

// printCommandError renders CLI errors with category and remediation,
// falling back to a plain runtime heading for everything else.
func printCommandError(err error) {
	apperrors.PrintError(toCLIError(err))
}

func toCLIError(err error) *apperrors.CLIError {
	var cliErr *apperrors.CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}
	return apperrors.Wrap(err, apperrors.Runtime)
}
