package progress

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps the underlying spinner with nil-safe methods so callers
// never branch on whether a terminal is attached: on a non-TTY every
// method is a no-op.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner returns a spinner with the given suffix message, or an
// inert spinner when stdout is not a terminal.
func NewSpinner(message string) *Spinner {
	caps := DetectTerminalCapabilities()
	if !caps.IsTTY {
		return &Spinner{}
	}

	symbols := SelectSymbols(caps)
	s := spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond)
	s.Suffix = " " + message
	return &Spinner{s: s}
}

// Start begins the spinner animation.
func (sp *Spinner) Start() {
	if sp.s != nil {
		sp.s.Start()
	}
}

// Stop halts the spinner animation and clears the line.
func (sp *Spinner) Stop() {
	if sp.s != nil {
		sp.s.Stop()
	}
}
