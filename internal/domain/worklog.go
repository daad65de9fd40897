package domain

import "time"

// WorklogEntry is one logged time-tracking record against an issue. Entries
// are fetched fresh per query and never mutated or cached across queries.
type WorklogEntry struct {
	IssueKey   string
	IssueTitle string
	Author     string // display name, matched exactly against the query author
	Started    time.Time
	Seconds    int64

	// Comment is the entry's free-text comment rendered to plain text.
	// Structured-document comments are flattened before they reach here.
	Comment string
}

// Date returns the entry's calendar date in ISO form.
func (e WorklogEntry) Date() string {
	return e.Started.Format("2006-01-02")
}

// Record is one output row of the report, produced once per qualifying
// worklog entry and immutable after creation. Duration is pre-formatted;
// raw seconds live only in the aggregates.
type Record struct {
	Date        string `json:"date"`
	Category    string `json:"category"`
	Parent      string `json:"parent,omitempty"` // top-level grouping title
	Ticket      string `json:"ticket"`
	IssueKey    string `json:"issueKey"`
	Description string `json:"description"` // newline-preserving
	Duration    string `json:"duration"`
	Link        string `json:"link"`
}
