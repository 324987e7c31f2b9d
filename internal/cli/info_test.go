package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/acpkit/agentscout/internal/agent"
	"github.com/acpkit/agentscout/internal/install"
)

func TestPrintInstallInfo(t *testing.T) {
	t.Parallel()

	t.Run("supported platform", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		printInstallInfo(&buf, install.Resolve(agent.Codex, agent.OSLinux))
		out := buf.String()

		assert.Contains(t, out, "Codex")
		assert.Contains(t, out, "npm install -g @openai/codex")
		assert.Contains(t, out, "Node.js 18+")
		assert.Contains(t, out, "codex --version")
		assert.Contains(t, out, "Docs:")
	})

	t.Run("alternatives listed", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		printInstallInfo(&buf, install.Resolve(agent.ClaudeCode, agent.OSDarwin))
		out := buf.String()

		assert.Contains(t, out, "curl -fsSL https://claude.ai/install.sh")
		assert.Contains(t, out, "Alternative:")
		assert.Contains(t, out, "@anthropic-ai/claude-code")
	})

	t.Run("unsupported platform", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		printInstallInfo(&buf, install.Resolve(agent.Gemini, agent.HostOS("freebsd")))
		out := buf.String()

		assert.Contains(t, out, "No automated installer")
		assert.Contains(t, out, "manual instructions")
	})
}
