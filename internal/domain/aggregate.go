package domain

import "sort"

// CategorySeconds accumulates raw seconds per category bucket. The grand
// total lives under the aggregate's grand-total label alongside the
// categories.
type CategorySeconds map[string]int64

// DailyTotals maps an ISO date to its per-category accumulation. Insertion
// order is irrelevant; Dates sorts at read time.
type DailyTotals map[string]CategorySeconds

// Dates returns the bucketed dates in ascending lexicographic order, which
// is chronological for the ISO representation used throughout.
func (d DailyTotals) Dates() []string {
	out := make([]string, 0, len(d))
	for date := range d {
		out = append(out, date)
	}
	sort.Strings(out)
	return out
}
