package detect

import "strings"

// installMethodFromPath guesses how a tool was installed from where its
// binary lives. Returns "" when no known pattern matches.
func installMethodFromPath(path string) string {
	switch {
	case strings.Contains(path, ".npm") || strings.Contains(path, "node_modules"):
		return "npm"
	case strings.Contains(path, ".cargo"):
		return "cargo"
	case strings.Contains(path, "homebrew") || strings.Contains(path, "linuxbrew"):
		return "brew"
	case strings.Contains(path, "mise"):
		return "mise"
	default:
		return ""
	}
}
