package parsers

import "strings"

// RecordFilter holds the two filtering gates applied around parsing: a
// pre-parse exclusion substring and the post-parse download-only retention.
// A filter is immutable for the lifetime of an aggregation run.
type RecordFilter struct {
	excludeSubstring string
}

// NewRecordFilter creates a filter. An empty excludeSubstring disables the
// pre-parse exclusion gate.
func NewRecordFilter(excludeSubstring string) *RecordFilter {
	return &RecordFilter{excludeSubstring: excludeSubstring}
}

// ExcludesLine reports whether the raw line should be dropped before any
// parse attempt. Used for operator-controlled noise suppression, e.g.
// health-check traffic.
func (f *RecordFilter) ExcludesLine(line string) bool {
	if f.excludeSubstring == "" {
		return false
	}
	return strings.Contains(line, f.excludeSubstring)
}
