package install

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/acpkit/agentscout/internal/agent"
	"github.com/acpkit/agentscout/internal/semver"
)

// prereqCheckTimeout bounds each prerequisite's check command.
const prereqCheckTimeout = 5 * time.Second

// CanInstall runs pre-flight checks for installing kind on os: platform
// support first, then every prerequisite's check command. Returns nil when
// installation can proceed.
func CanInstall(ctx context.Context, kind agent.Kind, os agent.HostOS) error {
	info := Resolve(kind, os)
	if !info.Supported {
		return &UnsupportedError{Kind: kind, OS: os, DocsURL: info.DocsURL}
	}

	for _, prereq := range info.Prerequisites {
		if err := checkPrerequisite(ctx, prereq); err != nil {
			return err
		}
	}
	return nil
}

// checkPrerequisite runs the prerequisite's check command and compares the
// reported major version against the minimum. A missing command, timeout,
// or unparseable version all count as not met.
func checkPrerequisite(ctx context.Context, prereq Prerequisite) error {
	if prereq.CheckCommand == "" {
		return nil // nothing to verify
	}

	parts := strings.Fields(prereq.CheckCommand)
	if len(parts) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, prereqCheckTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &PrerequisiteError{Name: prereq.Name, InstallURL: prereq.InstallURL}
	}

	out := stdout.String()
	if strings.TrimSpace(out) == "" {
		out = stderr.String()
	}

	version, ok := semver.Extract(out)
	if !ok {
		return &PrerequisiteError{Name: prereq.Name, InstallURL: prereq.InstallURL}
	}
	if prereq.MinMajor > 0 && version.Major < prereq.MinMajor {
		return &PrerequisiteError{
			Name:       prereq.Name,
			InstallURL: prereq.InstallURL,
			Found:      fmt.Sprintf("%d.%d", version.Major, version.Minor),
		}
	}
	return nil
}
