package changelog

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the release section in Keep a Changelog markdown form:
// a version header followed by each non-empty section in declaration order.
//
//	## [<version>] - <date>
//	### Added
//	- <entry>
//
// Sections with zero entries produce no output at all; a corpus matching
// nothing yields the header line only. The function is idempotent - given
// the same version, date, and sections it produces identical output.
func Render(version, date string, sections []Section, w io.Writer) error {
	if err := renderHeader(version, date, w); err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	for _, s := range sections {
		if s.IsEmpty() {
			continue
		}
		if err := renderSection(s, w); err != nil {
			return fmt.Errorf("rendering section %s: %w", s.Title, err)
		}
	}

	return nil
}

// RenderString is a convenience function that renders to a string.
func RenderString(version, date string, sections []Section) (string, error) {
	var b strings.Builder
	if err := Render(version, date, sections, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderHeader writes the version header line.
func renderHeader(version, date string, w io.Writer) error {
	_, err := fmt.Fprintf(w, "## [%s] - %s\n", version, date)
	return err
}

// renderSection writes a single category sub-heading with its entries.
func renderSection(s Section, w io.Writer) error {
	if _, err := w.Write([]byte("### " + s.Title + "\n")); err != nil {
		return err
	}

	for _, entry := range s.Entries {
		if _, err := w.Write([]byte("- " + entry + "\n")); err != nil {
			return err
		}
	}

	return nil
}
