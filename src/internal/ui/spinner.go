package ui

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps briandowns/spinner with our color scheme. When stderr is not
// a terminal the animation is suppressed and only the final line is printed.
type Spinner struct {
	spinner *spinner.Spinner
	active  bool
}

// NewSpinner creates a new spinner with a message
func NewSpinner(message string) *Spinner {
	s := spinner.New(
		spinner.CharSets[14], // dots style
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+message),
		spinner.WithWriter(os.Stderr),
	)
	return &Spinner{spinner: s, active: IsTerminal()}
}

// Start starts the spinner
func (s *Spinner) Start() {
	if s.active {
		s.spinner.Start()
	}
}

// Stop stops the spinner
func (s *Spinner) Stop() {
	if s.active {
		s.spinner.Stop()
	}
}

// Success stops the spinner and shows a success message
func (s *Spinner) Success(message string) {
	s.Stop()
	Success("%s", message)
}

// Error stops the spinner and shows an error message
func (s *Spinner) Error(message string) {
	s.Stop()
	Error("%s", message)
}

// Warning stops the spinner and shows a warning message
func (s *Spinner) Warning(message string) {
	s.Stop()
	Warning("%s", message)
}

// WithSpinner runs a function with a spinner
func WithSpinner(message string, fn func() error) error {
	s := NewSpinner(message)
	s.Start()

	err := fn()

	if err != nil {
		s.Error(message + " failed")
		return err
	}

	s.Success(message)
	return nil
}
