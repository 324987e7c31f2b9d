package install

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
	"time"

	"github.com/acpkit/agentscout/internal/agent"
)

func TestFixFor(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err     error
		wantFix string
	}{
		"unsupported": {
			err:     &UnsupportedError{Kind: agent.ClaudeCode, OS: "plan9", DocsURL: "https://example.com/docs"},
			wantFix: "install manually, see https://example.com/docs",
		},
		"prerequisite with url": {
			err:     &PrerequisiteError{Name: "Node.js", InstallURL: "https://nodejs.org"},
			wantFix: "install Node.js from https://nodejs.org",
		},
		"prerequisite without url": {
			err:     &PrerequisiteError{Name: "Node.js"},
			wantFix: "install Node.js from the official website",
		},
		"permission": {
			err:     &PermissionError{Err: fs.ErrPermission},
			wantFix: "re-run with appropriate permissions",
		},
		"timeout": {
			err:     &TimeoutError{Duration: time.Minute},
			wantFix: "retry with a longer timeout or check your network",
		},
		"network": {
			err:     &NetworkError{Stderr: "ENOTFOUND registry.npmjs.org"},
			wantFix: "check your internet connection and try again",
		},
		"installer": {
			err:     &InstallerError{ExitCode: 1},
			wantFix: "see the installer output for details",
		},
		"verification": {
			err:     &VerificationError{Kind: agent.Gemini},
			wantFix: "restart your terminal so PATH changes take effect",
		},
		"wrapped": {
			err:     fmt.Errorf("installing: %w", &TimeoutError{Duration: time.Second}),
			wantFix: "retry with a longer timeout or check your network",
		},
		"plain error": {
			err:     errors.New("boom"),
			wantFix: "",
		},
		"nil": {
			err:     nil,
			wantFix: "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := FixFor(tt.err); got != tt.wantFix {
				t.Errorf("FixFor() = %q, want %q", got, tt.wantFix)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want string
	}{
		"unsupported": {
			err:  &UnsupportedError{Kind: agent.ClaudeCode, OS: agent.HostOS("plan9")},
			want: "Claude Code has no installer for plan9",
		},
		"prerequisite missing": {
			err:  &PrerequisiteError{Name: "Node.js"},
			want: "prerequisite Node.js is missing",
		},
		"prerequisite too old": {
			err:  &PrerequisiteError{Name: "Node.js", Found: "16.20"},
			want: "prerequisite Node.js not met (found 16.20)",
		},
		"timeout": {
			err:  &TimeoutError{Duration: 30 * time.Second},
			want: "installation timed out after 30s",
		},
		"installer exit": {
			err:  &InstallerError{ExitCode: 2},
			want: "installer exited with code 2",
		},
		"verification": {
			err:  &VerificationError{Kind: agent.OpenCode},
			want: "OpenCode installed but could not be detected afterwards",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	permErr := &PermissionError{Err: fs.ErrPermission}
	if !errors.Is(permErr, fs.ErrPermission) {
		t.Error("PermissionError should unwrap to its cause")
	}

	cause := errors.New("spawn failed")
	instErr := &InstallerError{Err: cause}
	if !errors.Is(instErr, cause) {
		t.Error("InstallerError should unwrap to its cause")
	}
}
