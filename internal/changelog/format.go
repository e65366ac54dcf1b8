package changelog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// CategoryStyle defines the color and icon for a changelog section.
type CategoryStyle struct {
	Color *color.Color
	Icon  string
}

// categoryStyles maps section titles to their terminal styling.
var categoryStyles = map[string]CategoryStyle{
	"Added":         {Color: color.New(color.FgGreen), Icon: "✓"},
	"Fixed":         {Color: color.New(color.FgYellow), Icon: "⚡"},
	"Changed":       {Color: color.New(color.FgBlue), Icon: "~"},
	"Documentation": {Color: color.New(color.FgCyan), Icon: "✎"},
	"Security":      {Color: color.New(color.FgMagenta), Icon: "🔒"},
}

// FormatOptions controls the terminal output formatting.
type FormatOptions struct {
	Plain    bool // Disable colors and icons
	MaxWidth int  // Maximum line width (0 = auto-detect)
}

// FormatTerminal writes the release section to the writer with terminal
// styling: a bold version header and color-coded category headers. The
// section content and ordering are identical to Render; only the dressing
// differs. Empty sections are omitted here too.
func FormatTerminal(version, date string, sections []Section, w io.Writer, opts FormatOptions) error {
	width := resolveWidth(opts.MaxWidth, w)

	if err := writeVersionHeader(version, date, w, opts); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, s := range sections {
		if s.IsEmpty() {
			continue
		}
		if err := writeCategorySection(s, w, opts, width); err != nil {
			return fmt.Errorf("formatting section %s: %w", s.Title, err)
		}
	}

	return nil
}

// writeVersionHeader writes the version header line.
func writeVersionHeader(version, date string, w io.Writer, opts FormatOptions) error {
	header := fmt.Sprintf("[%s] - %s", version, date)

	if opts.Plain {
		_, err := fmt.Fprintf(w, "## %s\n", header)
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	_, err := fmt.Fprintf(w, "## %s\n", bold(header))
	return err
}

// writeCategorySection writes a single category with its entries.
func writeCategorySection(s Section, w io.Writer, opts FormatOptions, width int) error {
	style := categoryStyles[s.Title]

	if err := writeCategoryHeader(s.Title, style, w, opts); err != nil {
		return err
	}

	for _, entry := range s.Entries {
		if err := writeEntry(entry, style, w, opts, width); err != nil {
			return err
		}
	}

	return nil
}

// writeCategoryHeader writes the category header line.
func writeCategoryHeader(title string, style CategoryStyle, w io.Writer, opts FormatOptions) error {
	if opts.Plain {
		_, err := fmt.Fprintf(w, "\n### %s\n", title)
		return err
	}

	colored := style.Color.SprintFunc()
	_, err := fmt.Fprintf(w, "\n%s %s\n", colored(style.Icon), colored(title))
	return err
}

// writeEntry writes a single changelog entry with optional wrapping.
func writeEntry(text string, style CategoryStyle, w io.Writer, opts FormatOptions, width int) error {
	prefix := "  - "

	if opts.Plain {
		_, err := fmt.Fprintf(w, "%s%s\n", prefix, text)
		return err
	}

	wrapped := wrapText(text, width-len(prefix), "    ")

	colored := style.Color.SprintFunc()
	_, err := fmt.Fprintf(w, "%s%s\n", prefix, colored(wrapped))
	return err
}

// resolveWidth determines the wrap width: an explicit width wins, then the
// size of the output terminal when w is one, then a fixed fallback.
func resolveWidth(maxWidth int, w io.Writer) int {
	if maxWidth > 0 {
		return maxWidth
	}
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

// wrapText wraps text to fit within maxWidth, using indent for continuation lines.
func wrapText(text string, maxWidth int, indent string) string {
	if maxWidth <= 0 || len(text) <= maxWidth {
		return text
	}

	var lines []string
	remaining := text

	for len(remaining) > maxWidth {
		// Find the last space within maxWidth
		breakPoint := maxWidth
		for i := maxWidth - 1; i > 0; i-- {
			if remaining[i] == ' ' {
				breakPoint = i
				break
			}
		}

		lines = append(lines, remaining[:breakPoint])
		remaining = strings.TrimLeft(remaining[breakPoint:], " ")
	}

	if len(remaining) > 0 {
		lines = append(lines, remaining)
	}

	return strings.Join(lines, "\n"+indent)
}
