package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanbipark/worklog/internal/config"
	"github.com/hanbipark/worklog/internal/domain"
	"github.com/hanbipark/worklog/internal/report"
	"github.com/hanbipark/worklog/internal/service"
)

type reportServiceFunc func(ctx context.Context, req service.ReportRequest) (*service.ReportResponse, error)

func (f reportServiceFunc) Generate(ctx context.Context, req service.ReportRequest) (*service.ReportResponse, error) {
	return f(ctx, req)
}

func setJiraEnv(t *testing.T) {
	t.Helper()
	t.Setenv("WORKLOG_JIRA_DOMAIN", "example.atlassian.net")
	t.Setenv("WORKLOG_JIRA_EMAIL", "me@example.com")
	t.Setenv("WORKLOG_JIRA_TOKEN", "secret")
}

func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestReportCmd_JSON(t *testing.T) {
	setJiraEnv(t)

	var gotReq service.ReportRequest
	app := &App{
		NewReportService: func(cfg *config.Config) service.ReportService {
			return reportServiceFunc(func(ctx context.Context, req service.ReportRequest) (*service.ReportResponse, error) {
				gotReq = req
				entries := []report.Entry{{
					WorklogEntry: domain.WorklogEntry{
						IssueKey:   "VTS-7",
						IssueTitle: "login form",
						Author:     req.Author,
						Started:    time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
						Seconds:    3600,
						Comment:    "[개발] build the form",
					},
				}}
				rep := report.Aggregate(entries, cfg.ReportOptions())
				return &service.ReportResponse{Report: rep}, nil
			})
		},
	}

	out, err := runCommand(t, app,
		"report", "--author", "Kim", "--from", "2024-01-01", "--to", "2024-01-07", "--json")
	require.NoError(t, err)

	assert.Equal(t, "Kim", gotReq.Author)
	assert.Equal(t, "VTS", gotReq.Project)
	assert.Equal(t, "2024-01-01", gotReq.Start)
	assert.Equal(t, "2024-01-07", gotReq.End)

	var payload reportJSON
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Equal(t, "Kim", payload.Author)
	require.Len(t, payload.Records, 1)
	assert.Equal(t, "개발", payload.Records[0].Category)
	assert.Equal(t, "1h 0m", payload.Records[0].Duration)
	assert.Equal(t, "1h 0m", payload.Total["Total"])
}

func TestReportCmd_JSONEmptyRecordsIsArray(t *testing.T) {
	setJiraEnv(t)

	app := &App{
		NewReportService: func(cfg *config.Config) service.ReportService {
			return reportServiceFunc(func(ctx context.Context, req service.ReportRequest) (*service.ReportResponse, error) {
				rep := report.Aggregate(nil, cfg.ReportOptions())
				return &service.ReportResponse{Report: rep}, nil
			})
		},
	}

	out, err := runCommand(t, app,
		"report", "--author", "Kim", "--from", "2024-01-01", "--to", "2024-01-02", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"records": []`)
}

func TestReportCmd_TableOutput(t *testing.T) {
	setJiraEnv(t)

	app := &App{
		NewReportService: func(cfg *config.Config) service.ReportService {
			return reportServiceFunc(func(ctx context.Context, req service.ReportRequest) (*service.ReportResponse, error) {
				entries := []report.Entry{{
					WorklogEntry: domain.WorklogEntry{
						IssueKey:   "VTS-7",
						IssueTitle: "login form",
						Author:     req.Author,
						Started:    time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
						Seconds:    1800,
						Comment:    "[테스트] regression pass",
					},
				}}
				rep := report.Aggregate(entries, cfg.ReportOptions())
				return &service.ReportResponse{Report: rep, Warnings: []string{"skipped VTS-3: upstream status 500"}}, nil
			})
		},
	}

	out, err := runCommand(t, app,
		"report", "--author", "Kim", "--from", "2024-01-01", "--to", "2024-01-07")
	require.NoError(t, err)

	assert.Contains(t, out, "VTS-7")
	assert.Contains(t, out, "테스트")
	assert.Contains(t, out, "30m")
	assert.Contains(t, out, "skipped VTS-3")
}

func TestReportCmd_MissingAuthorNonInteractive(t *testing.T) {
	setJiraEnv(t)

	app := &App{
		NewReportService: func(cfg *config.Config) service.ReportService {
			t.Fatal("service must not be built without an author")
			return nil
		},
	}

	_, err := runCommand(t, app, "report", "--from", "2024-01-01", "--to", "2024-01-02")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "author is required")
}

func TestReportCmd_MissingCredentials(t *testing.T) {
	t.Setenv("WORKLOG_JIRA_DOMAIN", "")
	t.Setenv("WORKLOG_JIRA_EMAIL", "")
	t.Setenv("WORKLOG_JIRA_TOKEN", "")

	app := &App{}
	_, err := runCommand(t, app, "report", "--author", "Kim")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jira.domain")
}

func TestApplyDefaultRange(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

	req := service.ReportRequest{}
	applyDefaultRange(&req, now)
	assert.Equal(t, "2024-03-09", req.Start)
	assert.Equal(t, "2024-03-10", req.End)

	req = service.ReportRequest{Start: "2024-01-01", End: "2024-01-31"}
	applyDefaultRange(&req, now)
	assert.Equal(t, "2024-01-01", req.Start)
	assert.Equal(t, "2024-01-31", req.End)
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, validateDate("2024-06-30"))
	assert.Error(t, validateDate("2024-6-30"))
	assert.Error(t, validateDate(""))
	assert.Error(t, validateDate("yesterday"))
}
