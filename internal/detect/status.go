// Package detect probes the host for installed AI coding-agent CLIs.
//
// A probe locates an agent's executable, runs it with its version flag
// under a timeout, and classifies the outcome into a Status. DetectAll
// fans out one probe per registered kind; every failure mode is captured
// as data inside the status, never propagated as an error.
package detect

import (
	"time"

	"github.com/acpkit/agentscout/internal/agent"
	"github.com/acpkit/agentscout/internal/semver"
)

// State classifies the outcome of a single probe.
type State int

const (
	// StateNotFound means no candidate executable exists at the agent's
	// name on the search path or in fallback locations.
	StateNotFound State = iota

	// StateFound means the executable ran its version flag successfully.
	// The reported version may still be unparseable; that is a degraded
	// but valid detection, not an error.
	StateFound

	// StateUnresponsive means the executable exists but exited non-zero
	// or hung past the timeout. Distinct from absence: the caller may
	// want to suggest reinstall rather than install.
	StateUnresponsive

	// StateProbeFailed means a candidate exists but could not even be
	// started (permission denied, corrupt binary), or the probe itself
	// faulted.
	StateProbeFailed
)

// String returns the lowercase identifier for the state.
func (s State) String() string {
	switch s {
	case StateNotFound:
		return "not_found"
	case StateFound:
		return "found"
	case StateUnresponsive:
		return "unresponsive"
	case StateProbeFailed:
		return "probe_failed"
	default:
		return "unknown"
	}
}

// Status is the outcome of probing one agent. Exactly one state holds per
// probe; the remaining fields are populated according to the state.
type Status struct {
	// State classifies the probe outcome.
	State State

	// Path is the resolved executable path. Set for StateFound and
	// StateUnresponsive.
	Path string

	// RawVersion is the text the agent printed for its version flag
	// (stdout, falling back to stderr). Set for StateFound.
	RawVersion string

	// Version is the parsed, comparable version. Nil when RawVersion did
	// not match any known pattern.
	Version *semver.Version

	// InstallMethod is a best-effort guess at how the agent was installed
	// ("npm", "cargo", "brew", "mise"), derived from its path. Empty when
	// undetermined.
	InstallMethod string

	// CheckedAt records when the probe completed. Set for StateFound.
	CheckedAt time.Time

	// Err holds the underlying fault for StateUnresponsive and
	// StateProbeFailed.
	Err error
}

// IsFound reports whether the agent ran its version flag successfully.
func (s Status) IsFound() bool {
	return s.State == StateFound
}

// Present reports whether an executable exists on the host, regardless of
// whether it is usable.
func (s Status) Present() bool {
	return s.State == StateFound || s.State == StateUnresponsive
}

// Result maps every registered agent kind to its probe outcome. After
// DetectAll completes the key set is exactly agent.All(), regardless of
// which probes succeeded.
type Result map[agent.Kind]Status
