package changelog

// Section holds the rewritten subject lines for one changelog category,
// in original commit order.
type Section struct {
	Title   string
	Entries []string
}

// IsEmpty returns true if the section has no entries.
func (s Section) IsEmpty() bool {
	return len(s.Entries) == 0
}

// Classify partitions commit subject lines into sections, one per rule,
// in rule declaration order. Each line is assigned to at most one section:
// rules are evaluated in order and the first match wins. Lines matching no
// rule are dropped; non-conforming commits (merges, chores) are expected
// and not an error.
//
// The returned slice always has one section per rule, including empty ones.
// Rendering decides what to omit.
func Classify(lines []string, rules []Rule) []Section {
	sections := make([]Section, len(rules))
	for i, r := range rules {
		sections[i].Title = r.Title
	}

	for _, line := range lines {
		for i, r := range rules {
			rewritten, ok := r.Match(line)
			if !ok {
				continue
			}
			sections[i].Entries = append(sections[i].Entries, rewritten)
			break
		}
	}

	return sections
}

// EntryCount returns the total number of classified entries across sections.
func EntryCount(sections []Section) int {
	count := 0
	for _, s := range sections {
		count += len(s.Entries)
	}
	return count
}
