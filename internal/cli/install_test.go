package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/acpkit/agentscout/internal/install"
	"github.com/acpkit/agentscout/internal/progress"
)

func TestStepForStage(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		stage    install.Stage
		wantStep bool
		wantName string
		wantNum  int
	}{
		"started has no step":   {stage: install.StageStarted, wantStep: false},
		"completed has no step": {stage: install.StageCompleted, wantStep: false},
		"checking prereqs":      {stage: install.StageCheckingPrereqs, wantStep: true, wantName: "checking prerequisites", wantNum: 1},
		"installing":            {stage: install.StageInstalling, wantStep: true, wantName: "running installer", wantNum: 2},
		"verifying":             {stage: install.StageVerifying, wantStep: true, wantName: "verifying installation", wantNum: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			step, ok := stepForStage(tt.stage)
			assert.Equal(t, tt.wantStep, ok)
			if tt.wantStep {
				assert.Equal(t, tt.wantName, step.Name)
				assert.Equal(t, tt.wantNum, step.Number)
				assert.Equal(t, 3, step.TotalSteps)
			}
		})
	}
}

func TestInstallDisplayLifecycle(t *testing.T) {
	// Non-TTY display, all output goes through fmt and is irrelevant here;
	// the test checks step bookkeeping.
	d := &installDisplay{display: progress.NewDisplay(progress.TerminalCapabilities{})}

	d.onProgress(install.Progress{Stage: install.StageStarted})
	assert.Nil(t, d.current)

	d.onProgress(install.Progress{Stage: install.StageCheckingPrereqs})
	assert.NotNil(t, d.current)
	assert.Equal(t, 1, d.current.Number)

	d.onProgress(install.Progress{Stage: install.StageInstalling})
	assert.Equal(t, 2, d.current.Number)

	d.onProgress(install.Progress{Stage: install.StageCompleted})
	assert.Nil(t, d.current)

	d.finish(nil)
	assert.Nil(t, d.current)
}

func TestInstallDisplayFinishOnError(t *testing.T) {
	d := &installDisplay{display: progress.NewDisplay(progress.TerminalCapabilities{})}

	d.onProgress(install.Progress{Stage: install.StageInstalling})
	d.finish(errors.New("installer exploded"))

	assert.Nil(t, d.current)
}

func TestConfirm(t *testing.T) {
	tests := map[string]struct {
		input string
		want  bool
	}{
		"yes":          {input: "y\n", want: true},
		"yes word":     {input: "yes\n", want: true},
		"uppercase":    {input: "Y\n", want: true},
		"no":           {input: "n\n", want: false},
		"empty":        {input: "\n", want: false},
		"garbage":      {input: "maybe\n", want: false},
		"eof no input": {input: "", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.SetIn(strings.NewReader(tt.input))
			cmd.SetOut(&strings.Builder{})

			assert.Equal(t, tt.want, confirm(cmd))
		})
	}
}
