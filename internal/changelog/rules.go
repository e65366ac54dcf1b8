package changelog

import (
	"regexp"
	"strings"
)

// Rule maps one or more conventional-commit type tokens to a changelog
// section title. Each rule carries two compiled patterns so the with-scope
// and without-scope forms stay separately testable:
//
//	type(scope): rest  ->  scope: rest
//	type: rest         ->  rest
//
// Matching is case-sensitive and anchored at the start of the subject.
type Rule struct {
	Title   string
	Aliases []string

	scoped *regexp.Regexp
	bare   *regexp.Regexp
}

// NewRule builds a rule for the given section title and type token aliases.
// Aliases are plain words; the first listed alias is the canonical token.
func NewRule(title string, aliases ...string) Rule {
	alt := strings.Join(aliases, "|")
	return Rule{
		Title:   title,
		Aliases: aliases,
		scoped:  regexp.MustCompile(`^(?:` + alt + `)\(([^)]+)\):\s*(.*)$`),
		bare:    regexp.MustCompile(`^(?:` + alt + `):\s*(.*)$`),
	}
}

// Match reports whether the subject line belongs to this rule and returns
// the rewritten text with the type token (and scope parentheses) removed.
// A subject starting with a type token but missing the colon separator is
// treated as non-conforming and does not match.
func (r Rule) Match(line string) (string, bool) {
	if m := r.scoped.FindStringSubmatch(line); m != nil {
		return m[1] + ": " + m[2], true
	}
	if m := r.bare.FindStringSubmatch(line); m != nil {
		return m[1], true
	}
	return "", false
}

// DefaultRules returns the classification rules in their fixed evaluation
// and rendering order. The improve, refactor and perf tokens merge into a
// single Changed section.
func DefaultRules() []Rule {
	return []Rule{
		NewRule("Added", "feat"),
		NewRule("Fixed", "fix"),
		NewRule("Changed", "improve", "refactor", "perf"),
		NewRule("Documentation", "docs"),
		NewRule("Security", "security"),
	}
}
