// Package install describes and executes agent installation.
//
// Resolve is a pure lookup from (agent kind, host OS) to an installation
// descriptor; it contains no execution logic and is total over its domain.
// Install consumes a descriptor, runs the primary command with progress
// reporting, and verifies the result by re-detecting the agent.
package install

import "github.com/acpkit/agentscout/internal/agent"

// Location indicates where an installation method places the binary and
// whether it may need elevated privileges.
type Location string

const (
	// LocationUserLocal installs without sudo/admin (~/.local/bin, npm
	// user prefix, scoop).
	LocationUserLocal Location = "user"
	// LocationSystem installs system-wide and may require sudo/admin.
	LocationSystem Location = "system"
)

// StructuredCommand is a command in ready-to-spawn form, separate from the
// human-readable string.
type StructuredCommand struct {
	// Program is the executable to spawn (e.g. "bash", "npm", "powershell").
	Program string
	// Args are passed to Program in order.
	Args []string
	// Env holds KEY=VALUE pairs appended to the inherited environment.
	Env []string
}

// Method is one way to install an agent.
type Method struct {
	// Command is the structured form for programmatic execution.
	Command StructuredCommand
	// Raw is the copy-pasteable command line for display.
	Raw string
	// Description is a short human-readable summary ("Install via npm").
	Description string
	// Location is where this method installs to.
	Location Location
}

// Prerequisite is software that must exist before an install can run.
type Prerequisite struct {
	// Name describes the requirement (e.g. "Node.js 18+").
	Name string
	// CheckCommand verifies the prerequisite (e.g. "node --version").
	// Empty means the prerequisite cannot be checked and is assumed met.
	CheckCommand string
	// MinMajor is the minimum acceptable major version reported by
	// CheckCommand. Zero means any version passes.
	MinMajor int
	// InstallURL points at where to obtain the prerequisite.
	InstallURL string
}

// Verification confirms a completed installation.
type Verification struct {
	// Command to run (e.g. "claude --version").
	Command string
	// ExpectedPattern is a regex the output should match.
	ExpectedPattern string
	// SuccessMessage is shown when verification passes.
	SuccessMessage string
}

// Info is the complete installation descriptor for one agent on one OS.
// It is purely derived data with no mutable state.
type Info struct {
	// Kind is the agent this descriptor installs.
	Kind agent.Kind
	// OS is the host OS the commands target.
	OS agent.HostOS
	// Primary is the recommended installation method for this platform.
	Primary Method
	// Alternatives are other workable methods (e.g. npm when a native
	// installer is primary).
	Alternatives []Method
	// Prerequisites must all pass before Primary can run.
	Prerequisites []Prerequisite
	// Verification confirms the install afterwards.
	Verification Verification
	// Supported is false when no installer exists for this (kind, OS);
	// Primary then carries a manual-installation placeholder so the
	// caller always has something to present.
	Supported bool
	// DocsURL is the agent's official documentation.
	DocsURL string
}

// versionPattern matches a semantic version in verification output.
const versionPattern = `\d+\.\d+\.\d+`
