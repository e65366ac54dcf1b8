// Package changelog classifies conventional-commit subject lines into
// Keep a Changelog categories and renders the grouped release section.
//
// This package implements:
//   - Ordered, first-match-wins classification rules over commit type tokens
//   - Prefix rewriting (type and optional scope stripped from each subject)
//   - Markdown generation following Keep a Changelog format
//   - Colored terminal rendering for interactive use
//
// Classification and rendering are pure: the same version, date, and commit
// lines always produce byte-identical output.
package changelog
