package progress

import (
	"context"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/cfsweep/cfsweep-cli/internal/usecase"
)

// SpinnerSink implements progress reporting with a terminal spinner.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		r.spinner.Suffix = " " + event.Message
		return
	}
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message without garbling the spinner line.
func (r *SpinnerSink) Info(message string) {
	r.interrupt(func() {
		color.New(color.FgCyan).Println(message)
	})
}

// Error prints an error message without garbling the spinner line.
func (r *SpinnerSink) Error(message string) {
	r.interrupt(func() {
		color.New(color.FgRed).Println(message)
	})
}

// Stop halts the spinner if it is running.
func (r *SpinnerSink) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

func (r *SpinnerSink) interrupt(fn func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}
	fn()
	if wasActive {
		r.spinner.Start()
	}
}
