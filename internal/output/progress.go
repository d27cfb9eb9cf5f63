package output

import (
	"fmt"
	"io"
	"os"
)

// StepReporter sequences user-visible status for pipeline steps.
// It is a pure observer: it never participates in control flow or
// error propagation.
type StepReporter interface {
	// StartStep opens a step. An already-open step is implicitly
	// completed first.
	StartStep(label string)

	// CompleteStep closes the open step, if any.
	CompleteStep()

	// FailStep marks the open step as failed with a message.
	FailStep(message string)
}

// NewStepReporter returns a reporter that writes styled step lines to w.
// A nil writer defaults to stdout.
func NewStepReporter(w io.Writer) StepReporter {
	if w == nil {
		w = os.Stdout
	}
	return &stepReporter{w: w}
}

type stepReporter struct {
	w       io.Writer
	current string
	open    bool
}

func (r *stepReporter) StartStep(label string) {
	if r.open {
		r.CompleteStep()
	}
	r.current = label
	r.open = true
	fmt.Fprintln(r.w, StyleDim.Render("• ")+label)
}

func (r *stepReporter) CompleteStep() {
	if !r.open {
		return
	}
	fmt.Fprintln(r.w, FormatCheckmark(r.current))
	r.open = false
	r.current = ""
}

func (r *stepReporter) FailStep(message string) {
	if !r.open {
		fmt.Fprintln(r.w, FormatCross(message))
		return
	}
	fmt.Fprintln(r.w, FormatCross(r.current+": "+message))
	r.open = false
	r.current = ""
}

// DiscardReporter is a StepReporter that drops all events. Used in tests
// and for quiet, non-interactive output.
type DiscardReporter struct{}

func (DiscardReporter) StartStep(string) {}
func (DiscardReporter) CompleteStep()    {}
func (DiscardReporter) FailStep(string)  {}
