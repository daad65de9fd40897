// Package report holds the pure worklog-report pipeline: comment
// classification, parent-chain resolution, duration formatting, and the
// deterministic aggregation of qualifying entries into records and
// per-day/per-category totals. Nothing in this package performs I/O.
package report

import "regexp"

// tagPattern matches "[tag] description" comments. The remainder capture is
// dotall so multi-line descriptions survive intact.
var tagPattern = regexp.MustCompile(`(?s)^\s*\[(.*?)\]\s*(.*)$`)

// Classify splits a plain-text comment into its bracketed category tag and
// description. Comments without a leading "[...]" tag, and empty comments,
// classify as the fallback category with the original text as description.
// The returned tag is free-form; folding onto the fixed category set happens
// during aggregation.
func Classify(comment, fallback string) (tag, description string) {
	if comment == "" {
		return fallback, ""
	}
	m := tagPattern.FindStringSubmatch(comment)
	if m == nil {
		return fallback, comment
	}
	return m[1], m[2]
}
