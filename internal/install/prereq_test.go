package install

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acpkit/agentscout/internal/agent"
	"github.com/acpkit/agentscout/internal/testutil"
)

func TestCanInstall_UnsupportedOS(t *testing.T) {
	t.Parallel()

	err := CanInstall(context.Background(), agent.Codex, agent.HostOS("plan9"))

	var unsupported *UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, agent.Codex, unsupported.Kind)
	assert.NotEmpty(t, unsupported.DocsURL)
}

func TestCanInstall_NoPrerequisites(t *testing.T) {
	// Claude Code's installer script needs no pre-installed runtime, so
	// this must pass even with an empty PATH.
	testutil.FakeBinDir(t)

	err := CanInstall(context.Background(), agent.ClaudeCode, agent.OSLinux)
	assert.NoError(t, err)
}

func TestCanInstall_PrerequisiteMet(t *testing.T) {
	dir := testutil.FakeBinDir(t)
	testutil.WriteFakeExecutable(t, dir, "node", "v20.11.1", "", 0)

	err := CanInstall(context.Background(), agent.Gemini, agent.OSLinux)
	assert.NoError(t, err)
}

func TestCanInstall_PrerequisiteTooOld(t *testing.T) {
	dir := testutil.FakeBinDir(t)
	testutil.WriteFakeExecutable(t, dir, "node", "v16.20.0", "", 0)

	err := CanInstall(context.Background(), agent.Codex, agent.OSLinux)

	var prereq *PrerequisiteError
	require.ErrorAs(t, err, &prereq)
	assert.Equal(t, "Node.js 18+", prereq.Name)
	assert.Equal(t, "16.20", prereq.Found)
}

func TestCanInstall_PrerequisiteMissing(t *testing.T) {
	testutil.FakeBinDir(t)

	err := CanInstall(context.Background(), agent.Gemini, agent.OSLinux)

	var prereq *PrerequisiteError
	require.ErrorAs(t, err, &prereq)
	assert.Empty(t, prereq.Found)
	assert.NotEmpty(t, prereq.InstallURL)
}

func TestCheckPrerequisite_UnparseableVersion(t *testing.T) {
	dir := testutil.FakeBinDir(t)
	testutil.WriteFakeExecutable(t, dir, "node", "no version here", "", 0)

	err := checkPrerequisite(context.Background(), Prerequisite{
		Name:         "Node.js",
		CheckCommand: "node --version",
		MinMajor:     18,
	})

	var prereq *PrerequisiteError
	require.ErrorAs(t, err, &prereq)
}

func TestCheckPrerequisite_EmptyCheckCommand(t *testing.T) {
	t.Parallel()

	err := checkPrerequisite(context.Background(), Prerequisite{Name: "anything"})
	assert.NoError(t, err)
}
