package output

import (
	"fmt"
	"io"
	"strings"
)

// Info writes a plain progress line.
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, fmt.Sprintf(format, args...))
}

// Success writes a line marking a completed operation.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, StyleSuccess.Render(fmt.Sprintf(format, args...)))
}

// Warning writes a cautionary line.
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, StyleWarning.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// Error writes an error line prefixed with "Error:".
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", StyleError.Render("Error:"), err)
}

// Section returns a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 40))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
