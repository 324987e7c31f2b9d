package progress

import "testing"

func TestStepStatusString(t *testing.T) {
	tests := map[string]struct {
		status   StepStatus
		expected string
	}{
		"pending":     {status: StepPending, expected: "pending"},
		"in progress": {status: StepInProgress, expected: "in_progress"},
		"completed":   {status: StepCompleted, expected: "completed"},
		"failed":      {status: StepFailed, expected: "failed"},
		"unknown":     {status: StepStatus(99), expected: "unknown"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := test.status.String(); got != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestStepInfoValidate(t *testing.T) {
	tests := map[string]struct {
		step    StepInfo
		wantErr bool
	}{
		"valid step": {
			step:    StepInfo{Name: "installing", Number: 2, TotalSteps: 3},
			wantErr: false,
		},
		"empty name": {
			step:    StepInfo{Name: "", Number: 1, TotalSteps: 3},
			wantErr: true,
		},
		"zero number": {
			step:    StepInfo{Name: "installing", Number: 0, TotalSteps: 3},
			wantErr: true,
		},
		"zero total": {
			step:    StepInfo{Name: "installing", Number: 1, TotalSteps: 0},
			wantErr: true,
		},
		"number exceeds total": {
			step:    StepInfo{Name: "installing", Number: 4, TotalSteps: 3},
			wantErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := test.step.Validate()
			if (err != nil) != test.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, test.wantErr)
			}
		})
	}
}
