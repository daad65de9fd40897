package jira

import (
	"encoding/json"
	"time"

	"github.com/hanbipark/worklog/internal/adf"
	"github.com/hanbipark/worklog/internal/domain"
)

// searchResponse is the body of GET /rest/api/3/search.
type searchResponse struct {
	StartAt    int           `json:"startAt"`
	MaxResults int           `json:"maxResults"`
	Total      int           `json:"total"`
	Issues     []searchIssue `json:"issues"`
}

type searchIssue struct {
	Key    string      `json:"key"`
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Summary string     `json:"summary"`
	Parent  *parentRef `json:"parent"`
}

// parentRef nests arbitrarily deep when the search response expands the
// ancestry chain.
type parentRef struct {
	Key    string        `json:"key"`
	Fields *parentFields `json:"fields"`
}

type parentFields struct {
	Summary string     `json:"summary"`
	Parent  *parentRef `json:"parent"`
}

// worklogResponse is the body of GET /rest/api/3/issue/{key}/worklog.
type worklogResponse struct {
	StartAt    int           `json:"startAt"`
	MaxResults int           `json:"maxResults"`
	Total      int           `json:"total"`
	Worklogs   []worklogItem `json:"worklogs"`
}

type worklogItem struct {
	Author struct {
		DisplayName string `json:"displayName"`
	} `json:"author"`
	Started          string `json:"started"`
	TimeSpentSeconds int64  `json:"timeSpentSeconds"`

	// Comment is either a plain JSON string (API v2 payloads) or an ADF
	// document (v3). Decoded lazily by commentText.
	Comment json.RawMessage `json:"comment"`
}

// jiraTime is the timestamp layout Jira uses for worklog "started" fields.
const jiraTime = "2006-01-02T15:04:05.000-0700"

func (i searchIssue) toDomain() domain.Issue {
	return domain.Issue{
		Key:    i.Key,
		Title:  i.Fields.Summary,
		Parent: toParentChain(i.Fields.Parent),
	}
}

func toParentChain(p *parentRef) *domain.ParentRef {
	if p == nil {
		return nil
	}
	ref := &domain.ParentRef{Key: p.Key}
	if p.Fields != nil {
		ref.Title = p.Fields.Summary
		ref.Parent = toParentChain(p.Fields.Parent)
	}
	return ref
}

// toDomain converts a worklog item, reporting ok=false for entries missing
// a parseable start timestamp. Such entries are data-quality skips, not
// errors.
func (w worklogItem) toDomain(issueKey, issueTitle string) (domain.WorklogEntry, bool) {
	if w.Started == "" {
		return domain.WorklogEntry{}, false
	}
	started, err := parseStarted(w.Started)
	if err != nil {
		return domain.WorklogEntry{}, false
	}
	return domain.WorklogEntry{
		IssueKey:   issueKey,
		IssueTitle: issueTitle,
		Author:     w.Author.DisplayName,
		Started:    started,
		Seconds:    w.TimeSpentSeconds,
		Comment:    commentText(w.Comment),
	}, true
}

func parseStarted(s string) (time.Time, error) {
	if t, err := time.Parse(jiraTime, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// commentText flattens a raw comment to plain text: plain strings pass
// through, ADF documents render via the adf package, anything else yields
// an empty string.
func commentText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return adf.Extract(raw)
}
