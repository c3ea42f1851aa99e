// Package aggregate reduces an operator list to sorted unique names or
// per-name occurrence counts. All functions are pure.
package aggregate

import (
	"fmt"
	"sort"
)

// Mode selects how an operator list is aggregated.
type Mode string

const (
	// ModeUnique produces the sorted set of distinct names.
	ModeUnique Mode = "unique"

	// ModeCount produces sorted (name, count) pairs.
	ModeCount Mode = "count"
)

// Entry is one distinct operator name and the number of times it occurred.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// String renders the entry as "name: count".
func (e Entry) String() string {
	return fmt.Sprintf("%s: %d", e.Name, e.Count)
}

// Unique returns the distinct names in ops sorted in ascending byte order.
func Unique(ops []string) []string {
	seen := make(map[string]struct{}, len(ops))
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		if _, ok := seen[op]; ok {
			continue
		}
		seen[op] = struct{}{}
		out = append(out, op)
	}
	sort.Strings(out)
	return out
}

// Count tallies each distinct name in ops and returns the entries sorted by
// name in ascending byte order.
func Count(ops []string) []Entry {
	counts := make(map[string]int)
	for _, op := range ops {
		counts[op]++
	}

	entries := make([]Entry, 0, len(counts))
	for name, n := range counts {
		entries = append(entries, Entry{Name: name, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Lines renders entries as display lines.
func Lines(entries []Entry) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}
