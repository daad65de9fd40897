// Package config holds the process configuration: Jira connection
// settings, the recognized category set, the assignee list, and report
// policy. Everything is explicit — the orchestrator and engine receive
// configuration at construction time, never through ambient globals.
package config

import (
	"fmt"
	"strings"

	"github.com/hanbipark/worklog/internal/domain"
	"github.com/hanbipark/worklog/internal/report"
	"github.com/spf13/viper"
)

// Config represents the full worklog configuration.
type Config struct {
	Jira            JiraConfig   `mapstructure:"jira"`
	Project         string       `mapstructure:"project"`
	Authors         []string     `mapstructure:"authors"`
	Categories      []string     `mapstructure:"categories"`
	CatchAll        string       `mapstructure:"catch_all"`
	GrandTotalLabel string       `mapstructure:"grand_total_label"`
	Report          ReportConfig `mapstructure:"report"`
	Fetch           FetchConfig  `mapstructure:"fetch"`
}

// JiraConfig contains Jira Cloud connection settings. The token usually
// arrives via the WORKLOG_JIRA_TOKEN environment variable rather than the
// config file.
type JiraConfig struct {
	Domain string `mapstructure:"domain"` // e.g. "example.atlassian.net"
	Email  string `mapstructure:"email"`
	Token  string `mapstructure:"token"`
}

// ReportConfig contains output policy settings.
type ReportConfig struct {
	DurationStyle string `mapstructure:"duration_style"` // "compact" or "verbose"
	IncludeParent bool   `mapstructure:"include_parent"`
}

// FetchConfig contains retrieval tuning.
type FetchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
	TimeoutMs   int `mapstructure:"timeout_ms"`
	MaxResults  int `mapstructure:"max_results"`
}

// settingKeys lists every config key so environment-only values survive
// viper.Unmarshal, which skips env vars for keys it has never seen.
var settingKeys = []string{
	"jira.domain", "jira.email", "jira.token",
	"project", "authors", "categories", "catch_all", "grand_total_label",
	"report.duration_style", "report.include_parent",
	"fetch.concurrency", "fetch.timeout_ms", "fetch.max_results",
}

// Load loads configuration from file and environment.
func Load() (*Config, error) {
	for _, k := range settingKeys {
		_ = viper.BindEnv(k)
	}

	cfg := &Config{}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(cfg)

	return cfg, nil
}

// ApplyDefaults sets default values for unset fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Project == "" {
		cfg.Project = "VTS"
	}
	if len(cfg.Categories) == 0 {
		set := domain.DefaultCategorySet()
		cfg.Categories = set.Names
		if cfg.CatchAll == "" {
			cfg.CatchAll = set.CatchAll
		}
	}
	if cfg.CatchAll == "" {
		cfg.CatchAll = cfg.Categories[len(cfg.Categories)-1]
	}
	if cfg.GrandTotalLabel == "" {
		cfg.GrandTotalLabel = domain.DefaultGrandTotalLabel
	}
	if cfg.Report.DurationStyle == "" {
		cfg.Report.DurationStyle = string(report.DurationCompact)
	}
	if cfg.Fetch.Concurrency <= 0 {
		cfg.Fetch.Concurrency = 8
	}
	if cfg.Fetch.TimeoutMs <= 0 {
		cfg.Fetch.TimeoutMs = 45000
	}
	if cfg.Fetch.MaxResults <= 0 {
		cfg.Fetch.MaxResults = 100
	}
}

// Validate checks that the Jira connection settings needed to run a report
// are present.
func (c *Config) Validate() error {
	var missing []string
	if c.Jira.Domain == "" {
		missing = append(missing, "jira.domain")
	}
	if c.Jira.Email == "" {
		missing = append(missing, "jira.email")
	}
	if c.Jira.Token == "" {
		missing = append(missing, "jira.token (or WORKLOG_JIRA_TOKEN)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// BaseURL returns the Jira base URL with a scheme.
func (c *Config) BaseURL() string {
	d := strings.TrimRight(c.Jira.Domain, "/")
	if strings.HasPrefix(d, "http://") || strings.HasPrefix(d, "https://") {
		return d
	}
	return "https://" + d
}

// CategorySet builds the configured category set.
func (c *Config) CategorySet() domain.CategorySet {
	return domain.CategorySet{Names: c.Categories, CatchAll: c.CatchAll}
}

// DurationStyle returns the configured duration policy.
func (c *Config) DurationStyle() report.DurationStyle {
	if c.Report.DurationStyle == string(report.DurationVerbose) {
		return report.DurationVerbose
	}
	return report.DurationCompact
}

// ReportOptions assembles the aggregation policy from the configuration.
func (c *Config) ReportOptions() report.Options {
	return report.Options{
		Categories:      c.CategorySet(),
		GrandTotalLabel: c.GrandTotalLabel,
		DurationStyle:   c.DurationStyle(),
		IncludeParent:   c.Report.IncludeParent,
		BaseURL:         c.BaseURL(),
	}
}
