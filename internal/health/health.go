// Package health runs environment health checks for agentscout: which
// agents are installed and whether the tooling the installers rely on
// (node, npm, curl) is available.
package health

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/acpkit/agentscout/internal/agent"
	"github.com/acpkit/agentscout/internal/detect"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// Report contains all health check results
type Report struct {
	Agents   []CheckResult
	Tooling  []CheckResult
	AnyAgent bool // at least one agent is installed and responding
}

// RunChecks probes all agents and the installer tooling.
func RunChecks(ctx context.Context) *Report {
	report := &Report{}

	result := detect.DetectAll(ctx)
	for _, kind := range agent.All() {
		check := agentCheck(kind, result[kind])
		report.Agents = append(report.Agents, check)
		if check.Passed {
			report.AnyAgent = true
		}
	}

	report.Tooling = append(report.Tooling, lookPathCheck("node", "needed for npm-based installs"))
	report.Tooling = append(report.Tooling, lookPathCheck("npm", "needed for npm-based installs"))
	if runtime.GOOS != "windows" {
		report.Tooling = append(report.Tooling, lookPathCheck("curl", "needed for script-based installs"))
	}

	return report
}

func agentCheck(kind agent.Kind, status detect.Status) CheckResult {
	switch status.State {
	case detect.StateFound:
		version := "version unknown"
		if status.Version != nil {
			version = status.Version.String()
		}
		return CheckResult{Name: kind.DisplayName(), Passed: true, Message: version}
	case detect.StateUnresponsive:
		return CheckResult{
			Name:    kind.DisplayName(),
			Message: fmt.Sprintf("installed at %s but not responding", status.Path),
		}
	case detect.StateProbeFailed:
		return CheckResult{Name: kind.DisplayName(), Message: fmt.Sprintf("probe failed: %v", status.Err)}
	default:
		return CheckResult{Name: kind.DisplayName(), Message: "not installed"}
	}
}

func lookPathCheck(name, purpose string) CheckResult {
	if _, err := exec.LookPath(name); err != nil {
		return CheckResult{Name: name, Message: fmt.Sprintf("not found in PATH, %s", purpose)}
	}
	return CheckResult{Name: name, Passed: true, Message: "found"}
}

// FormatReport formats the health report for console output
func FormatReport(report *Report) string {
	output := "Agents:\n"
	output += formatChecks(report.Agents)
	output += "Installer tooling:\n"
	output += formatChecks(report.Tooling)
	return output
}

func formatChecks(checks []CheckResult) string {
	var output string
	for _, check := range checks {
		mark := "✗"
		if check.Passed {
			mark = "✓"
		}
		output += fmt.Sprintf("  %s %s: %s\n", mark, check.Name, check.Message)
	}
	return output
}
