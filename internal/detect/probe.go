package detect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/acpkit/agentscout/internal/agent"
	"github.com/acpkit/agentscout/internal/semver"
)

// waitDelay bounds how long Run waits for output pipes after the process
// is killed, so a child that leaks its stdout to a grandchild cannot hang
// the probe past its timeout.
const waitDelay = time.Second

// probe detects a single agent and classifies the outcome. All faults are
// converted to a Status here; nothing escapes as an error.
func (d *Detector) probe(ctx context.Context, kind agent.Kind) Status {
	path, err := findExecutable(kind.Executable())
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return Status{State: StateNotFound}
		}
		return Status{
			State: StateProbeFailed,
			Err:   fmt.Errorf("locating %s: %w", kind.DisplayName(), err),
		}
	}

	if d.opts.SkipVersion {
		return Status{
			State:         StateFound,
			Path:          path,
			InstallMethod: installMethodFromPath(path),
			CheckedAt:     time.Now(),
		}
	}

	raw, err := runVersionCommand(ctx, path, kind.VersionFlag(), d.opts.Timeout)
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return Status{
				State: StateUnresponsive,
				Path:  path,
				Err:   fmt.Errorf("%s did not answer %s within %s", path, kind.VersionFlag(), d.opts.Timeout),
			}
		case errors.As(err, &exitErr):
			return Status{
				State: StateUnresponsive,
				Path:  path,
				Err:   fmt.Errorf("%s %s: %w", path, kind.VersionFlag(), err),
			}
		default:
			// The binary exists but could not be started.
			return Status{
				State: StateProbeFailed,
				Err:   fmt.Errorf("starting %s: %w", path, err),
			}
		}
	}

	status := Status{
		State:         StateFound,
		Path:          path,
		RawVersion:    raw,
		InstallMethod: installMethodFromPath(path),
		CheckedAt:     time.Now(),
	}
	if v, ok := semver.Extract(raw); ok {
		status.Version = &v
	}
	return status
}

// runVersionCommand runs path with the given version flag and returns the
// trimmed output, preferring stdout and falling back to stderr since some
// tools print their version there. The child gets no stdin and is killed
// when the timeout elapses.
func runVersionCommand(ctx context.Context, path, flag string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, flag)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return "", fmt.Errorf("version check timed out: %w", context.DeadlineExceeded)
	}
	if err != nil {
		return "", err
	}

	out := stdout.String()
	if strings.TrimSpace(out) == "" {
		out = stderr.String()
	}
	return strings.TrimSpace(out), nil
}
