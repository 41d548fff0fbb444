package ui

import (
	"fmt"
	"io"
)

// Steps prints a counter for the phases of a sequential operation.
type Steps struct {
	out   io.Writer
	total int
	done  int
}

// NewSteps creates a counter for a run with total phases.
func NewSteps(out io.Writer, total int) *Steps {
	return &Steps{out: out, total: total}
}

// Done marks the next phase as completed and prints it.
func (s *Steps) Done(label string) {
	s.done++
	_, _ = fmt.Fprintf(s.out, "[%d/%d] %s\n", s.done, s.total, label)
}
