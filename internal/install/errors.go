package install

import (
	"errors"
	"fmt"
	"time"

	"github.com/acpkit/agentscout/internal/agent"
)

// FixSuggester is implemented by install errors that carry an actionable
// next step for the user.
type FixSuggester interface {
	FixSuggestion() string
}

// FixFor extracts a fix suggestion from an error chain, or "" if none.
func FixFor(err error) string {
	var fs FixSuggester
	if errors.As(err, &fs) {
		return fs.FixSuggestion()
	}
	return ""
}

// UnsupportedError means no installer exists for the agent on this OS.
type UnsupportedError struct {
	Kind    agent.Kind
	OS      agent.HostOS
	DocsURL string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s has no installer for %s", e.Kind.DisplayName(), e.OS)
}

func (e *UnsupportedError) FixSuggestion() string {
	return fmt.Sprintf("install manually, see %s", e.DocsURL)
}

// PrerequisiteError means a required tool is missing or too old.
type PrerequisiteError struct {
	Name       string
	InstallURL string
	Found      string // version reported by the check command, "" if none
}

func (e *PrerequisiteError) Error() string {
	if e.Found != "" {
		return fmt.Sprintf("prerequisite %s not met (found %s)", e.Name, e.Found)
	}
	return fmt.Sprintf("prerequisite %s is missing", e.Name)
}

func (e *PrerequisiteError) FixSuggestion() string {
	url := e.InstallURL
	if url == "" {
		url = "the official website"
	}
	return fmt.Sprintf("install %s from %s", e.Name, url)
}

// PermissionError means the installer could not be started due to
// filesystem permissions.
type PermissionError struct {
	Err error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied running installer: %v", e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

func (e *PermissionError) FixSuggestion() string {
	return "re-run with appropriate permissions"
}

// TimeoutError means the installer exceeded its time budget.
type TimeoutError struct {
	Duration time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("installation timed out after %s", e.Duration)
}

func (e *TimeoutError) FixSuggestion() string {
	return "retry with a longer timeout or check your network"
}

// NetworkError means the installer failed in a way that looks like a
// connectivity problem.
type NetworkError struct {
	Stderr string
}

func (e *NetworkError) Error() string {
	return "network error during installation"
}

func (e *NetworkError) FixSuggestion() string {
	return "check your internet connection and try again"
}

// InstallerError means the installer process ran but failed.
type InstallerError struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *InstallerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("installer failed: %v", e.Err)
	}
	return fmt.Sprintf("installer exited with code %d", e.ExitCode)
}

func (e *InstallerError) Unwrap() error { return e.Err }

func (e *InstallerError) FixSuggestion() string {
	return "see the installer output for details"
}

// VerificationError means the installer reported success but the agent
// still cannot be detected.
type VerificationError struct {
	Kind agent.Kind
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s installed but could not be detected afterwards", e.Kind.DisplayName())
}

func (e *VerificationError) FixSuggestion() string {
	return "restart your terminal so PATH changes take effect"
}
