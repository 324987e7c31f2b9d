// Package testutil provides test helpers for agentscout tests, chiefly
// fake agent executables installed on an isolated PATH so probe behavior
// can be exercised without any real agent CLIs.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// FakeBinDir creates a temp directory and points PATH at it (and only it)
// for the duration of the test. Fake executables written into the returned
// directory are then the only commands resolvable by name.
func FakeBinDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PATH", dir)
	return dir
}

// WriteFakeExecutable writes a shell script named name into dir that
// prints stdout, prints stderr, and exits with exitCode. Returns the
// script's path. Skips the test on Windows where sh scripts do not run.
func WriteFakeExecutable(t *testing.T, dir, name, stdout, stderr string, exitCode int) string {
	t.Helper()
	requireUnix(t)

	script := "#!/bin/sh\n"
	if stdout != "" {
		script += fmt.Sprintf("printf '%%s\\n' %q\n", stdout)
	}
	if stderr != "" {
		script += fmt.Sprintf("printf '%%s\\n' %q >&2\n", stderr)
	}
	script += fmt.Sprintf("exit %d\n", exitCode)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing fake executable %s: %v", name, err)
	}
	return path
}

// WriteHangingExecutable writes a script named name into dir that sleeps
// for seconds before exiting, for timeout tests.
func WriteHangingExecutable(t *testing.T, dir, name string, seconds int) string {
	t.Helper()
	requireUnix(t)

	// Absolute path: the script runs under whatever stripped-down PATH
	// the test installed, where a bare sleep may not resolve.
	script := fmt.Sprintf("#!/bin/sh\nexec /bin/sleep %d\n", seconds)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing hanging executable %s: %v", name, err)
	}
	return path
}

// WriteNonExecutable writes a file named name into dir without the
// executable bit, to exercise spawn-level failures.
func WriteNonExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	requireUnix(t)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("not a program"), 0o644); err != nil {
		t.Fatalf("writing non-executable %s: %v", name, err)
	}
	return path
}

func requireUnix(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake shell executables require a unix shell")
	}
}
