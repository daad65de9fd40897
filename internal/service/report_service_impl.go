package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hanbipark/worklog/internal/domain"
	"github.com/hanbipark/worklog/internal/report"
)

const defaultConcurrency = 8

type reportService struct {
	source      IssueSource
	opts        report.Options
	concurrency int
}

// NewReportService wires a report generator over an issue source. The
// concurrency argument bounds the per-issue worklog fan-out; values below 1
// fall back to the default of 8.
func NewReportService(source IssueSource, opts report.Options, concurrency int) ReportService {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &reportService{
		source:      source,
		opts:        opts,
		concurrency: concurrency,
	}
}

// issueResult is one issue's fetch outcome, collected before any merging so
// the aggregation stage runs single-threaded over an immutable snapshot.
type issueResult struct {
	issue   domain.Issue
	entries []domain.WorklogEntry
	err     error
}

func (s *reportService) Generate(ctx context.Context, req ReportRequest) (*ReportResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	issues, err := s.source.SearchWorklogIssues(ctx, req.Project, req.Author, req.Start, req.End)
	if err != nil {
		return nil, fmt.Errorf("issue discovery failed: %w", err)
	}

	results := s.fetchWorklogs(ctx, issues)

	var warnings []string
	var entries []report.Entry
	for _, res := range results {
		if res.err != nil {
			warnings = append(warnings, fmt.Sprintf("skipped %s: %v", res.issue.Key, res.err))
			continue
		}
		top := report.TopLevelTitle(res.issue)
		for _, e := range res.entries {
			if !qualifies(e, req) {
				continue
			}
			entries = append(entries, report.Entry{WorklogEntry: e, TopParent: top})
		}
	}

	return &ReportResponse{
		Report:   report.Aggregate(entries, s.opts),
		Warnings: warnings,
	}, nil
}

// fetchWorklogs runs the per-issue worklog calls under a bounded worker
// pool. Completion order is non-deterministic; results land in issue order
// so the merge that follows is.
func (s *reportService) fetchWorklogs(ctx context.Context, issues []domain.Issue) []issueResult {
	results := make([]issueResult, len(issues))
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, iss := range issues {
		wg.Add(1)
		go func(i int, iss domain.Issue) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			entries, err := s.source.IssueWorklogs(ctx, iss.Key, iss.Title)
			results[i] = issueResult{issue: iss, entries: entries, err: err}
		}(i, iss)
	}
	wg.Wait()
	return results
}

// qualifies re-checks an entry against the exact author and date range: the
// server-side issue filter admits issues that also hold other authors' or
// out-of-range entries.
func qualifies(e domain.WorklogEntry, req ReportRequest) bool {
	if e.Author != req.Author {
		return false
	}
	date := e.Date()
	return date >= req.Start && date <= req.End
}

func validateRequest(req ReportRequest) error {
	if req.Project == "" {
		return fmt.Errorf("project is required")
	}
	if req.Author == "" {
		return fmt.Errorf("author is required")
	}
	start, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		return fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", req.Start)
	}
	end, err := time.Parse("2006-01-02", req.End)
	if err != nil {
		return fmt.Errorf("invalid end date %q (expected YYYY-MM-DD)", req.End)
	}
	if end.Before(start) {
		return fmt.Errorf("end date %s precedes start date %s", req.End, req.Start)
	}
	return nil
}
