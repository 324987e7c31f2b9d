package install

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/acpkit/agentscout/internal/agent"
	"github.com/acpkit/agentscout/internal/detect"
)

// Stage identifies a phase of the installation flow.
type Stage int

const (
	// StageStarted is emitted once at the beginning.
	StageStarted Stage = iota
	// StageCheckingPrereqs is emitted before prerequisite checks.
	StageCheckingPrereqs
	// StageInstalling is emitted before the installer command runs.
	StageInstalling
	// StageVerifying is emitted before post-install detection.
	StageVerifying
	// StageCompleted is emitted once after successful verification.
	StageCompleted
)

// String returns the lowercase identifier for the stage.
func (s Stage) String() string {
	switch s {
	case StageStarted:
		return "started"
	case StageCheckingPrereqs:
		return "checking_prerequisites"
	case StageInstalling:
		return "installing"
	case StageVerifying:
		return "verifying"
	case StageCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Progress is one installation progress event.
type Progress struct {
	Stage Stage
	Kind  agent.Kind
}

// ProgressFunc receives progress events. It is called synchronously from
// the installing goroutine and may be nil.
type ProgressFunc func(Progress)

// Options configures an installation.
type Options struct {
	// Timeout bounds the installer command. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout for installer commands; package-manager installs can
// legitimately take minutes on slow networks.
const DefaultTimeout = 10 * time.Minute

// pathSettleDelay gives the shell environment a moment after install
// before verification re-probes PATH. Overridable in tests.
var pathSettleDelay = 500 * time.Millisecond

// Install installs an agent programmatically: pre-flight checks, installer
// execution with timeout, then verification by re-detecting the agent.
// Calling Install is consent to install; confirming with the user is the
// caller's responsibility. Failures come back as typed errors carrying a
// fix suggestion (see FixFor).
func Install(ctx context.Context, kind agent.Kind, opts Options, onProgress ProgressFunc) error {
	return run(ctx, kind, Resolve(kind, agent.CurrentOS()), opts, onProgress)
}

// run executes the given descriptor. Split from Install so tests can
// supply a descriptor without touching the real platform tables.
func run(ctx context.Context, kind agent.Kind, info Info, opts Options, onProgress ProgressFunc) error {
	emit := func(stage Stage) {
		if onProgress != nil {
			onProgress(Progress{Stage: stage, Kind: kind})
		}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	emit(StageStarted)

	emit(StageCheckingPrereqs)
	if !info.Supported {
		return &UnsupportedError{Kind: kind, OS: info.OS, DocsURL: info.DocsURL}
	}
	for _, prereq := range info.Prerequisites {
		if err := checkPrerequisite(ctx, prereq); err != nil {
			return err
		}
	}

	emit(StageInstalling)
	if err := runInstaller(ctx, info.Primary.Command, opts.Timeout); err != nil {
		return err
	}

	emit(StageVerifying)
	if err := sleepCtx(ctx, pathSettleDelay); err != nil {
		return &InstallerError{Err: err}
	}
	status := detect.Detect(ctx, kind)
	if !status.IsFound() {
		return &VerificationError{Kind: kind}
	}

	emit(StageCompleted)
	return nil
}

// runInstaller spawns the installer command under a timeout and classifies
// failures into typed errors.
func runInstaller(ctx context.Context, command StructuredCommand, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, command.Program, command.Args...)
	cmd.Env = append(os.Environ(), command.Env...)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{Duration: timeout}
	}
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	switch {
	case errors.Is(err, fs.ErrPermission):
		return &PermissionError{Err: err}
	case errors.As(err, &exitErr):
		errOut := stderr.String()
		if looksLikeNetworkError(errOut) {
			return &NetworkError{Stderr: errOut}
		}
		return &InstallerError{
			ExitCode: exitErr.ExitCode(),
			Stdout:   stdout.String(),
			Stderr:   errOut,
		}
	default:
		return &InstallerError{Err: err}
	}
}

// looksLikeNetworkError sniffs installer stderr for connectivity failures
// so they can be reported distinctly from installer bugs.
func looksLikeNetworkError(stderr string) bool {
	for _, marker := range []string{"network", "connection", "resolve", "ETIMEDOUT", "ENOTFOUND"} {
		if strings.Contains(stderr, marker) {
			return true
		}
	}
	return false
}

// sleepCtx sleeps for d unless ctx is canceled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
