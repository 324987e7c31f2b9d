package install

import (
	"fmt"

	"github.com/acpkit/agentscout/internal/agent"
)

// Resolve returns the installation descriptor for kind on os. It is a
// total function: unsupported (kind, os) combinations yield an explicit
// manual-installation descriptor rather than an error, so callers always
// have something to present to the user.
func Resolve(kind agent.Kind, os agent.HostOS) Info {
	if !os.Supported() {
		return manualInfo(kind, os)
	}

	switch kind {
	case agent.ClaudeCode:
		return claudeCodeInfo(os)
	case agent.Codex:
		return codexInfo(os)
	case agent.OpenCode:
		return openCodeInfo(os)
	case agent.Gemini:
		return geminiInfo(os)
	default:
		panic(fmt.Sprintf("install: unknown kind %d", int(kind)))
	}
}

// claudeCodeInfo: native installer script is primary on every platform,
// npm is the alternative (needs Node.js 18+ but we only list prerequisites
// for the primary method).
func claudeCodeInfo(os agent.HostOS) Info {
	var primary Method
	if os.IsWindows() {
		primary = Method{
			Command: StructuredCommand{
				Program: "powershell",
				Args:    []string{"-Command", "irm https://claude.ai/install.ps1 | iex"},
			},
			Raw:         "irm https://claude.ai/install.ps1 | iex",
			Description: "Install via PowerShell (native installer)",
			Location:    LocationUserLocal,
		}
	} else {
		primary = Method{
			Command: StructuredCommand{
				Program: "bash",
				Args:    []string{"-c", "curl -fsSL https://claude.ai/install.sh | bash"},
			},
			Raw:         "curl -fsSL https://claude.ai/install.sh | bash",
			Description: "Install via curl script (native installer)",
			Location:    LocationUserLocal,
		}
	}

	return Info{
		Kind:    agent.ClaudeCode,
		OS:      os,
		Primary: primary,
		Alternatives: []Method{npmMethod("@anthropic-ai/claude-code", "Install via npm (requires Node.js 18+)")},
		Verification: Verification{
			Command:         "claude --version",
			ExpectedPattern: versionPattern,
			SuccessMessage:  "Claude Code is installed",
		},
		Supported: true,
		DocsURL:   docsURL(agent.ClaudeCode),
	}
}

// codexInfo: npm on every platform, Node.js 18+ required.
func codexInfo(os agent.HostOS) Info {
	return Info{
		Kind:    agent.Codex,
		OS:      os,
		Primary: npmMethod("@openai/codex", "Install via npm (Node.js package manager)"),
		Prerequisites: []Prerequisite{{
			Name:         "Node.js 18+",
			CheckCommand: "node --version",
			MinMajor:     18,
			InstallURL:   "https://nodejs.org",
		}},
		Verification: Verification{
			Command:         "codex --version",
			ExpectedPattern: versionPattern,
			SuccessMessage:  "Codex is installed",
		},
		Supported: true,
		DocsURL:   docsURL(agent.Codex),
	}
}

// openCodeInfo: curl script on unix, scoop on windows, npm alternative.
func openCodeInfo(os agent.HostOS) Info {
	var primary Method
	if os.IsWindows() {
		primary = Method{
			Command: StructuredCommand{
				Program: "scoop",
				Args:    []string{"install", "opencode"},
			},
			Raw:         "scoop install opencode",
			Description: "Install via Scoop (Windows package manager)",
			Location:    LocationUserLocal,
		}
	} else {
		primary = Method{
			Command: StructuredCommand{
				Program: "bash",
				Args:    []string{"-c", "curl -fsSL https://opencode.ai/install | bash"},
			},
			Raw:         "curl -fsSL https://opencode.ai/install | bash",
			Description: "Install via curl script (native binary)",
			Location:    LocationUserLocal,
		}
	}

	return Info{
		Kind:         agent.OpenCode,
		OS:           os,
		Primary:      primary,
		Alternatives: []Method{npmMethod("opencode-ai@latest", "Install via npm (requires Node.js)")},
		Verification: Verification{
			Command:         "opencode --version",
			ExpectedPattern: versionPattern,
			SuccessMessage:  "OpenCode is installed",
		},
		Supported: true,
		DocsURL:   docsURL(agent.OpenCode),
	}
}

// geminiInfo: npm on every platform, Node.js 20+ required (higher than the
// other agents).
func geminiInfo(os agent.HostOS) Info {
	return Info{
		Kind:    agent.Gemini,
		OS:      os,
		Primary: npmMethod("@google/gemini-cli", "Install via npm (Node.js package manager)"),
		Prerequisites: []Prerequisite{{
			Name:         "Node.js 20+",
			CheckCommand: "node --version",
			MinMajor:     20,
			InstallURL:   "https://nodejs.org",
		}},
		Verification: Verification{
			Command:         "gemini --version",
			ExpectedPattern: versionPattern,
			SuccessMessage:  "Gemini CLI is installed",
		},
		Supported: true,
		DocsURL:   docsURL(agent.Gemini),
	}
}

// docsURL returns the official documentation for an agent.
func docsURL(kind agent.Kind) string {
	switch kind {
	case agent.ClaudeCode:
		return "https://docs.anthropic.com/en/docs/claude-code"
	case agent.Codex:
		return "https://github.com/openai/codex"
	case agent.OpenCode:
		return "https://github.com/sst/opencode"
	case agent.Gemini:
		return "https://github.com/google-gemini/gemini-cli"
	default:
		panic(fmt.Sprintf("install: unknown kind %d", int(kind)))
	}
}

// manualInfo is the total-function fallback for platforms without an
// installer recipe.
func manualInfo(kind agent.Kind, os agent.HostOS) Info {
	docs := docsURL(kind)
	return Info{
		Kind: kind,
		OS:   os,
		Primary: Method{
			Raw:         fmt.Sprintf("see %s", docs),
			Description: fmt.Sprintf("Manual installation required for %s on %s", kind.DisplayName(), os),
			Location:    LocationUserLocal,
		},
		Verification: Verification{
			Command:         kind.Executable() + " " + kind.VersionFlag(),
			ExpectedPattern: versionPattern,
			SuccessMessage:  kind.DisplayName() + " is installed",
		},
		Supported: false,
		DocsURL:   docs,
	}
}

func npmMethod(pkg, description string) Method {
	return Method{
		Command: StructuredCommand{
			Program: "npm",
			Args:    []string{"install", "-g", pkg},
		},
		Raw:         "npm install -g " + pkg,
		Description: description,
		Location:    LocationUserLocal,
	}
}
