package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	// The color package disables itself on non-terminal output, so the
	// same render path serves terminals, pipes, and test buffers.
	errorLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	errorText   = color.New(color.FgRed).SprintFunc()
	fixLabel    = color.New(color.FgGreen, color.Bold).SprintFunc()
	usageLabel  = color.New(color.FgCyan, color.Bold).SprintFunc()
	fixBullet   = color.New(color.FgGreen).SprintFunc()
	categoryTag = color.New(color.FgYellow).SprintFunc()
)

// FprintError writes a CLIError to w: the categorized message, the correct
// usage when one is attached, and the remediation steps.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}

	fmt.Fprintf(w, "%s [%s]: %s\n",
		errorLabel("Error"), categoryTag(err.Category.String()), errorText(err.Message))

	if err.Usage != "" {
		fmt.Fprintf(w, "\n%s %s\n", usageLabel("Usage:"), err.Usage)
	}

	if len(err.Remediation) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", fixLabel("To fix this:"))
	for _, step := range err.Remediation {
		fmt.Fprintf(w, "  %s %s\n", fixBullet("•"), step)
	}
}

// PrintError writes a formatted CLIError to stderr.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// PrintSimpleError categorizes a plain error and writes it to stderr.
func PrintSimpleError(err error, category ErrorCategory) {
	if err == nil {
		return
	}
	FprintError(os.Stderr, &CLIError{Category: category, Message: err.Error()})
}
