package errors

import (
	"fmt"
	"strings"
)

// UnknownAgent is returned when a command receives an agent name that is
// not in the registry.
func UnknownAgent(name string, known []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unknown agent %q", name),
		"agentscout detect [agent...]",
		fmt.Sprintf("use one of: %s", strings.Join(known, ", ")),
	)
}

// InstallFailed wraps an installation failure, carrying the fix suggestion
// as a remediation step when one exists.
func InstallFailed(err error, fix string) *CLIError {
	remediation := []string{}
	if fix != "" {
		remediation = append(remediation, fix)
	}
	return WrapWithMessage(err, Runtime, "installation failed", remediation...)
}

// ConfigLoadFailed wraps a configuration loading failure.
func ConfigLoadFailed(err error) *CLIError {
	return WrapWithMessage(err, Configuration, "could not load configuration",
		"check the config file syntax",
		"unset any AGENTSCOUT_* environment variables with invalid values")
}
