package config

import (
	"testing"

	"github.com/hanbipark/worklog/internal/report"
	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsUnsetFields(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, "VTS", cfg.Project)
	assert.Equal(t, []string{"테스트", "개발", "회의", "세미나", "기타"}, cfg.Categories)
	assert.Equal(t, "기타", cfg.CatchAll)
	assert.Equal(t, "Total", cfg.GrandTotalLabel)
	assert.Equal(t, "compact", cfg.Report.DurationStyle)
	assert.Equal(t, 8, cfg.Fetch.Concurrency)
	assert.Equal(t, 45000, cfg.Fetch.TimeoutMs)
	assert.Equal(t, 100, cfg.Fetch.MaxResults)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Project:    "OPS",
		Categories: []string{"Test", "Development", "Other"},
		Fetch:      FetchConfig{Concurrency: 2},
	}
	ApplyDefaults(cfg)

	assert.Equal(t, "OPS", cfg.Project)
	assert.Equal(t, []string{"Test", "Development", "Other"}, cfg.Categories)
	// Catch-all falls back to the last configured category.
	assert.Equal(t, "Other", cfg.CatchAll)
	assert.Equal(t, 2, cfg.Fetch.Concurrency)
}

func TestValidate_ReportsAllMissingKeys(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "jira.domain")
	assert.Contains(t, err.Error(), "jira.email")
	assert.Contains(t, err.Error(), "jira.token")
}

func TestValidate_CompleteConfigPasses(t *testing.T) {
	cfg := &Config{Jira: JiraConfig{Domain: "x.atlassian.net", Email: "a@b.c", Token: "t"}}
	assert.NoError(t, cfg.Validate())
}

func TestBaseURL(t *testing.T) {
	cfg := &Config{Jira: JiraConfig{Domain: "example.atlassian.net"}}
	assert.Equal(t, "https://example.atlassian.net", cfg.BaseURL())

	cfg.Jira.Domain = "http://localhost:8080/"
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL())
}

func TestDurationStyle(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	assert.Equal(t, report.DurationCompact, cfg.DurationStyle())

	cfg.Report.DurationStyle = "verbose"
	assert.Equal(t, report.DurationVerbose, cfg.DurationStyle())

	cfg.Report.DurationStyle = "nonsense"
	assert.Equal(t, report.DurationCompact, cfg.DurationStyle())
}

func TestReportOptions(t *testing.T) {
	cfg := &Config{Jira: JiraConfig{Domain: "example.atlassian.net"}}
	ApplyDefaults(cfg)
	cfg.Report.IncludeParent = true

	opts := cfg.ReportOptions()
	assert.Equal(t, "https://example.atlassian.net", opts.BaseURL)
	assert.Equal(t, "기타", opts.Categories.CatchAll)
	assert.True(t, opts.IncludeParent)
	assert.Equal(t, "Total", opts.GrandTotalLabel)
}
