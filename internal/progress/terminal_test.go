package progress

import "testing"

func TestSelectSymbols(t *testing.T) {
	tests := map[string]struct {
		caps          TerminalCapabilities
		wantCheckmark string
		wantFailure   string
	}{
		"unicode terminal": {
			caps:          TerminalCapabilities{SupportsUnicode: true},
			wantCheckmark: "✓",
			wantFailure:   "✗",
		},
		"ascii terminal": {
			caps:          TerminalCapabilities{SupportsUnicode: false},
			wantCheckmark: "[OK]",
			wantFailure:   "[FAIL]",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			symbols := SelectSymbols(test.caps)
			if symbols.Checkmark != test.wantCheckmark {
				t.Errorf("Checkmark = %q, want %q", symbols.Checkmark, test.wantCheckmark)
			}
			if symbols.Failure != test.wantFailure {
				t.Errorf("Failure = %q, want %q", symbols.Failure, test.wantFailure)
			}
		})
	}
}

func TestDetectTerminalCapabilities_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	caps := DetectTerminalCapabilities()
	if caps.SupportsColor {
		t.Error("Expected SupportsColor=false when NO_COLOR is set")
	}
}

func TestDetectTerminalCapabilities_ForceASCII(t *testing.T) {
	t.Setenv("AGENTSCOUT_ASCII", "1")

	caps := DetectTerminalCapabilities()
	if caps.SupportsUnicode {
		t.Error("Expected SupportsUnicode=false when AGENTSCOUT_ASCII=1")
	}
}
