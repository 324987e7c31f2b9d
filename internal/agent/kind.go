// Package agent defines the closed set of supported AI coding-agent CLIs
// and the static metadata needed to probe them: executable name, version
// flag, and display name. The package is pure and side-effect free; every
// registered kind has an entry in each table, and a missing entry is a
// programming error surfaced by panic rather than a runtime condition.
package agent

import "fmt"

// Kind identifies a supported AI coding agent.
type Kind int

const (
	// ClaudeCode is Anthropic's Claude Code agent (claude CLI).
	ClaudeCode Kind = iota
	// Codex is OpenAI's Codex agent (codex CLI).
	Codex
	// OpenCode is the OpenCode agent (opencode CLI).
	OpenCode
	// Gemini is Google's Gemini agent (gemini CLI).
	Gemini
)

// All returns every supported agent kind in a fixed, stable order.
// The order is deterministic across calls so that iteration, display,
// and tests behave the same everywhere.
func All() []Kind {
	return []Kind{ClaudeCode, Codex, OpenCode, Gemini}
}

// String returns the lowercase identifier used on the command line
// (e.g. "claude", "codex").
func (k Kind) String() string {
	switch k {
	case ClaudeCode:
		return "claude"
	case Codex:
		return "codex"
	case OpenCode:
		return "opencode"
	case Gemini:
		return "gemini"
	default:
		panic(fmt.Sprintf("agent: unknown kind %d", int(k)))
	}
}

// Executable returns the command name to search for in PATH.
func (k Kind) Executable() string {
	switch k {
	case ClaudeCode:
		return "claude"
	case Codex:
		return "codex"
	case OpenCode:
		return "opencode"
	case Gemini:
		return "gemini"
	default:
		panic(fmt.Sprintf("agent: unknown kind %d", int(k)))
	}
}

// VersionFlag returns the flag that makes the agent print its version.
func (k Kind) VersionFlag() string {
	switch k {
	case ClaudeCode, Codex, OpenCode, Gemini:
		return "--version"
	default:
		panic(fmt.Sprintf("agent: unknown kind %d", int(k)))
	}
}

// DisplayName returns a human-readable name suitable for UIs and messages.
func (k Kind) DisplayName() string {
	switch k {
	case ClaudeCode:
		return "Claude Code"
	case Codex:
		return "Codex"
	case OpenCode:
		return "OpenCode"
	case Gemini:
		return "Gemini CLI"
	default:
		panic(fmt.Sprintf("agent: unknown kind %d", int(k)))
	}
}

// ParseKind converts a command-line identifier into a Kind.
// Accepted values are the String() forms of the supported kinds.
func ParseKind(s string) (Kind, error) {
	for _, k := range All() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown agent %q (supported: claude, codex, opencode, gemini)", s)
}
