package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acpkit/agentscout/internal/agent"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the coding agents agentscout knows about",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-10s %-12s %s\n", "NAME", "EXECUTABLE", "AGENT")
		for _, kind := range agent.All() {
			fmt.Fprintf(w, "%-10s %-12s %s\n", kind.String(), kind.Executable(), kind.DisplayName())
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
