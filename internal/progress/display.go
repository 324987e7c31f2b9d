package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Display orchestrates the display of progress indicators
type Display struct {
	capabilities TerminalCapabilities
	currentStep  *StepInfo
	spinner      *spinner.Spinner
	symbols      ProgressSymbols
}

// NewDisplay creates a new progress display with the given terminal capabilities
func NewDisplay(caps TerminalCapabilities) *Display {
	return &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// StartStep begins displaying progress for a step
func (d *Display) StartStep(step StepInfo) error {
	if err := step.Validate(); err != nil {
		return err
	}

	d.currentStep = &step
	msg := buildStepMessage(step, "Running")

	if d.capabilities.IsTTY {
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
		)
		d.spinner.Writer = os.Stderr // keep stdout clean for machine-readable output
		d.spinner.Suffix = " " + msg
		d.spinner.Start()
	} else {
		fmt.Println(msg)
	}

	return nil
}

// CompleteStep stops the spinner and displays completion status
func (d *Display) CompleteStep(step StepInfo) error {
	d.StopSpinner()

	mark := checkmark(d.symbols, d.capabilities.SupportsColor)
	counter := formatStepCounter(step.Number, step.TotalSteps)
	fmt.Printf("%s %s %s\n", mark, counter, capitalize(step.Name))

	d.currentStep = nil
	return nil
}

// FailStep stops the spinner and displays failure status
func (d *Display) FailStep(step StepInfo, err error) error {
	d.StopSpinner()

	mark := failureMark(d.symbols, d.capabilities.SupportsColor)
	counter := formatStepCounter(step.Number, step.TotalSteps)
	fmt.Printf("%s %s %s failed: %v\n", mark, counter, capitalize(step.Name), err)

	d.currentStep = nil
	return nil
}

// StopSpinner stops the spinner without showing completion/failure.
// Useful when pausing progress display during other output.
func (d *Display) StopSpinner() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}

// CurrentStep returns the step being displayed, or nil if none.
func (d *Display) CurrentStep() *StepInfo {
	return d.currentStep
}
