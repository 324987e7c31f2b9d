package install

import (
	"strings"
	"testing"

	"github.com/acpkit/agentscout/internal/agent"
)

var allOSes = []agent.HostOS{agent.OSLinux, agent.OSDarwin, agent.OSWindows}

// TestResolve_Total verifies Resolve is a total function: every (kind, os)
// pair, including unsupported platforms, yields a usable descriptor.
func TestResolve_Total(t *testing.T) {
	t.Parallel()

	oses := append([]agent.HostOS{}, allOSes...)
	oses = append(oses, agent.HostOS("freebsd"), agent.HostOS(""))

	for _, kind := range agent.All() {
		for _, os := range oses {
			info := Resolve(kind, os)
			if info.Kind != kind {
				t.Errorf("Resolve(%v, %v).Kind = %v", kind, os, info.Kind)
			}
			if info.OS != os {
				t.Errorf("Resolve(%v, %v).OS = %v", kind, os, info.OS)
			}
			if info.Primary.Description == "" {
				t.Errorf("Resolve(%v, %v) has no primary description", kind, os)
			}
			if info.Primary.Raw == "" {
				t.Errorf("Resolve(%v, %v) has no raw command", kind, os)
			}
			if info.Verification.Command == "" {
				t.Errorf("Resolve(%v, %v) has no verification command", kind, os)
			}
			if info.DocsURL == "" {
				t.Errorf("Resolve(%v, %v) has no docs URL", kind, os)
			}
		}
	}
}

func TestResolve_UnsupportedOSIsManual(t *testing.T) {
	t.Parallel()

	info := Resolve(agent.ClaudeCode, agent.HostOS("freebsd"))
	if info.Supported {
		t.Error("freebsd descriptor should not be marked supported")
	}
	if !strings.Contains(info.Primary.Description, "Manual installation") {
		t.Errorf("primary description = %q, want manual-install placeholder", info.Primary.Description)
	}
	if info.Primary.Command.Program != "" {
		t.Errorf("manual descriptor should carry no spawnable program, got %q", info.Primary.Command.Program)
	}
}

func TestResolve_SupportedPlatforms(t *testing.T) {
	t.Parallel()

	for _, kind := range agent.All() {
		for _, os := range allOSes {
			if !Resolve(kind, os).Supported {
				t.Errorf("Resolve(%v, %v).Supported = false", kind, os)
			}
		}
	}
}

func TestResolve_Commands(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		kind        agent.Kind
		os          agent.HostOS
		wantProgram string
		wantInArgs  string
	}{
		"claude unix uses curl script": {
			kind: agent.ClaudeCode, os: agent.OSLinux,
			wantProgram: "bash", wantInArgs: "claude.ai/install.sh",
		},
		"claude windows uses powershell": {
			kind: agent.ClaudeCode, os: agent.OSWindows,
			wantProgram: "powershell", wantInArgs: "install.ps1",
		},
		"codex uses npm": {
			kind: agent.Codex, os: agent.OSLinux,
			wantProgram: "npm", wantInArgs: "@openai/codex",
		},
		"opencode unix uses curl script": {
			kind: agent.OpenCode, os: agent.OSDarwin,
			wantProgram: "bash", wantInArgs: "opencode.ai/install",
		},
		"opencode windows uses scoop": {
			kind: agent.OpenCode, os: agent.OSWindows,
			wantProgram: "scoop", wantInArgs: "opencode",
		},
		"gemini uses npm": {
			kind: agent.Gemini, os: agent.OSWindows,
			wantProgram: "npm", wantInArgs: "@google/gemini-cli",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cmd := Resolve(tt.kind, tt.os).Primary.Command
			if cmd.Program != tt.wantProgram {
				t.Errorf("Program = %q, want %q", cmd.Program, tt.wantProgram)
			}
			if !strings.Contains(strings.Join(cmd.Args, " "), tt.wantInArgs) {
				t.Errorf("Args %v missing %q", cmd.Args, tt.wantInArgs)
			}
		})
	}
}

func TestResolve_Prerequisites(t *testing.T) {
	t.Parallel()

	codex := Resolve(agent.Codex, agent.OSLinux)
	if len(codex.Prerequisites) != 1 || codex.Prerequisites[0].MinMajor != 18 {
		t.Errorf("codex prerequisites = %+v, want Node.js 18+", codex.Prerequisites)
	}

	gemini := Resolve(agent.Gemini, agent.OSLinux)
	if len(gemini.Prerequisites) != 1 || gemini.Prerequisites[0].MinMajor != 20 {
		t.Errorf("gemini prerequisites = %+v, want Node.js 20+", gemini.Prerequisites)
	}

	// Native installer scripts carry their own runtime.
	claude := Resolve(agent.ClaudeCode, agent.OSLinux)
	if len(claude.Prerequisites) != 0 {
		t.Errorf("claude prerequisites = %+v, want none", claude.Prerequisites)
	}
}
