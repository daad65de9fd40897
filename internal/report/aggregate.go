package report

import (
	"sort"
	"strings"

	"github.com/hanbipark/worklog/internal/domain"
)

// Options carries the aggregation policy knobs. The two knobs the original
// deployments disagreed on — whether records carry the top-level grouping,
// and duration granularity — are both policy here.
type Options struct {
	Categories      domain.CategorySet
	GrandTotalLabel string
	DurationStyle   DurationStyle
	IncludeParent   bool
	BaseURL         string // browse link prefix, e.g. "https://example.atlassian.net"
}

// Entry is one qualifying worklog entry annotated with its resolved
// top-level grouping, ready for aggregation.
type Entry struct {
	domain.WorklogEntry
	TopParent string
}

// Report is the aggregation output: the flat chronological record list and
// the raw-second aggregates. Duration strings appear only in Records and in
// the Formatted* views; accumulation stays in integer seconds.
type Report struct {
	Records []domain.Record
	Daily   domain.DailyTotals
	Total   domain.CategorySeconds

	grandLabel string
	style      DurationStyle
}

// Aggregate folds entries into a Report. The result is identical for any
// arrival order of the input: entries are canonically sorted before records
// are emitted, and the aggregates are order-insensitive sums.
func Aggregate(entries []Entry, opts Options) Report {
	if opts.GrandTotalLabel == "" {
		opts.GrandTotalLabel = domain.DefaultGrandTotalLabel
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Date() != b.Date() {
			return a.Date() < b.Date()
		}
		if a.IssueKey != b.IssueKey {
			return a.IssueKey < b.IssueKey
		}
		return a.Started.Before(b.Started)
	})

	rep := Report{
		Daily:      domain.DailyTotals{},
		Total:      domain.CategorySeconds{},
		grandLabel: opts.GrandTotalLabel,
		style:      opts.DurationStyle,
	}

	buckets := opts.Categories.All()
	rep.Total[opts.GrandTotalLabel] = 0
	for _, c := range buckets {
		rep.Total[c] = 0
	}

	for _, e := range sorted {
		tag, desc := Classify(e.Comment, opts.Categories.CatchAll)
		date := e.Date()

		day, ok := rep.Daily[date]
		if !ok {
			day = domain.CategorySeconds{opts.GrandTotalLabel: 0}
			for _, c := range buckets {
				day[c] = 0
			}
			rep.Daily[date] = day
		}
		bucket := opts.Categories.Fold(tag)
		day[bucket] += e.Seconds
		day[opts.GrandTotalLabel] += e.Seconds
		rep.Total[bucket] += e.Seconds
		rep.Total[opts.GrandTotalLabel] += e.Seconds

		rec := domain.Record{
			Date:        date,
			Category:    tag,
			Ticket:      e.IssueTitle,
			IssueKey:    e.IssueKey,
			Description: desc,
			Duration:    FormatSeconds(e.Seconds, opts.DurationStyle),
			Link:        strings.TrimRight(opts.BaseURL, "/") + "/browse/" + e.IssueKey,
		}
		if opts.IncludeParent {
			rec.Parent = e.TopParent
		}
		rep.Records = append(rep.Records, rec)
	}

	return rep
}

// GrandTotalLabel returns the synthetic aggregate key in use.
func (r Report) GrandTotalLabel() string {
	return r.grandLabel
}

// FormattedDaily renders the daily aggregate with every duration passed
// through the report's duration style.
func (r Report) FormattedDaily() map[string]map[string]string {
	out := make(map[string]map[string]string, len(r.Daily))
	for date, day := range r.Daily {
		fd := make(map[string]string, len(day))
		for cat, sec := range day {
			fd[cat] = FormatSeconds(sec, r.style)
		}
		out[date] = fd
	}
	return out
}

// FormattedTotal renders the total aggregate with formatted durations.
func (r Report) FormattedTotal() map[string]string {
	out := make(map[string]string, len(r.Total))
	for cat, sec := range r.Total {
		out[cat] = FormatSeconds(sec, r.style)
	}
	return out
}
