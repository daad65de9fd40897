package service

import (
	"context"

	"github.com/hanbipark/worklog/internal/domain"
	"github.com/hanbipark/worklog/internal/report"
)

// IssueSource abstracts the upstream issue tracker. The jira.Client
// satisfies it; tests substitute fakes.
type IssueSource interface {
	// SearchWorklogIssues returns one bounded page of issues in the project
	// that hold at least one worklog by the author inside the inclusive
	// date range.
	SearchWorklogIssues(ctx context.Context, project, author, startDate, endDate string) ([]domain.Issue, error)

	// IssueWorklogs returns all worklog entries of one issue.
	IssueWorklogs(ctx context.Context, issueKey, issueTitle string) ([]domain.WorklogEntry, error)
}

// ReportRequest identifies one report run: a project, an author display
// name (matched exactly against upstream), and an inclusive date range at
// calendar-day granularity.
type ReportRequest struct {
	Project string
	Author  string
	Start   string // YYYY-MM-DD
	End     string // YYYY-MM-DD
}

// ReportResponse is the full query outcome. Warnings carry per-issue fetch
// failures that degraded the report without aborting it; an empty Report
// with a nil error is the valid "no data in range" outcome.
type ReportResponse struct {
	Report   report.Report
	Warnings []string
}

// ReportService generates worklog reports.
type ReportService interface {
	Generate(ctx context.Context, req ReportRequest) (*ReportResponse, error)
}
