package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// Header prints a bold section header.
func Header(out io.Writer, text string) {
	_, _ = fmt.Fprintln(out, headerStyle.Render(text))
}

// Target prints the selected-target banner.
func Target(out io.Writer, name string) {
	_, _ = fmt.Fprintln(out, headerStyle.Render("target: "+name))
}

// Success prints a success banner.
func Success(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(out, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Failure prints a failure banner followed by the failing tool's output
// verbatim. The output is never styled or reflowed.
func Failure(out io.Writer, banner, output string) {
	_, _ = fmt.Fprintln(out, failureStyle.Render(banner))
	if output == "" {
		return
	}
	_, _ = fmt.Fprint(out, output)
	if !strings.HasSuffix(output, "\n") {
		_, _ = fmt.Fprintln(out)
	}
}
