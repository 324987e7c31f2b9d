package detect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// FallbackDirs lists system directories checked after PATH lookup fails.
// Some login shells and service managers omit these from PATH even though
// installers drop binaries there. Windows needs none: PATH plus the npm
// shim directory cover the common cases. Tests replace this to keep
// lookups hermetic.
var FallbackDirs = systemFallbackDirs()

func systemFallbackDirs() []string {
	if runtime.GOOS == "windows" {
		return nil
	}
	return []string{"/usr/local/bin", "/usr/bin"}
}

// homeCandidates returns user-level locations where installers commonly
// place tools without updating PATH.
func homeCandidates(name string) []string {
	var paths []string

	if runtime.GOOS == "windows" {
		if profile := os.Getenv("USERPROFILE"); profile != "" {
			paths = append(paths,
				filepath.Join(profile, ".local", "bin", name+".exe"),
				filepath.Join(profile, ".local", "bin", name),
			)
		}
		if appData := os.Getenv("APPDATA"); appData != "" {
			// npm creates .cmd shims for global installs
			paths = append(paths, filepath.Join(appData, "npm", name+".cmd"))
		}
		return paths
	}

	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths,
			filepath.Join(home, ".local", "bin", name),
			filepath.Join(home, "bin", name),
		)
	}
	return paths
}

// findExecutable resolves name to an executable path. PATH lookup runs
// first, then system fallback directories, then home-directory locations.
// A not-found result is reported as an error wrapping exec.ErrNotFound;
// any other error means a candidate exists but is unusable.
func findExecutable(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, exec.ErrNotFound) {
		return "", err
	}

	// LookPath folds permission failures into ErrNotFound, so a file that
	// exists on PATH without the execute bit would otherwise read as
	// absent. Re-scan PATH for such a candidate before falling back.
	if candidate, ok := unexecutableOnPath(name); ok {
		return "", &exec.Error{
			Name: name,
			Err:  fmt.Errorf("%s: %w", candidate, fs.ErrPermission),
		}
	}

	for _, dir := range FallbackDirs {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate, nil
		}
	}

	for _, candidate := range homeCandidates(name) {
		if fileExists(candidate) {
			return candidate, nil
		}
	}

	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// unexecutableOnPath reports whether a regular file named name exists in
// some PATH directory without execute permission. Windows has no execute
// bit, so the scan is unix-only.
func unexecutableOnPath(name string) (string, bool) {
	if runtime.GOOS == "windows" {
		return "", false
	}
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if info.Mode().Perm()&0o111 == 0 {
			return candidate, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
