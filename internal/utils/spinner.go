package utils

import (
	"time"
)

// Spinner is a frame-stepping loading indicator for busy views
type Spinner struct {
	frames []string
	label  string
	index  int
	last   time.Time
	speed  time.Duration
}

// NewSpinner creates a spinner with the default braille frames
func NewSpinner(label string) *Spinner {
	return &Spinner{
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		label:  label,
		speed:  100 * time.Millisecond,
	}
}

// SetLabel updates the text shown next to the spinner frame
func (s *Spinner) SetLabel(label string) {
	s.label = label
}

// View returns the current frame, advancing it when enough time passed
func (s *Spinner) View() string {
	now := time.Now()
	if now.Sub(s.last) >= s.speed {
		s.index = (s.index + 1) % len(s.frames)
		s.last = now
	}
	if s.label == "" {
		return s.frames[s.index]
	}
	return s.frames[s.index] + " " + s.label
}
