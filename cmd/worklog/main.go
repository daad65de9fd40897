package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/hanbipark/worklog/internal/cli"
	"github.com/hanbipark/worklog/internal/config"
	"github.com/hanbipark/worklog/internal/jira"
	"github.com/hanbipark/worklog/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()),

		NewReportService: func(cfg *config.Config) service.ReportService {
			var observer jira.Observer = jira.NoopObserver{}
			if viper.GetBool("verbose") {
				observer = jira.NewLogObserver(os.Stderr)
			}

			client := jira.NewClient(jira.Config{
				BaseURL:    cfg.BaseURL(),
				Email:      cfg.Jira.Email,
				APIToken:   cfg.Jira.Token,
				TimeoutMs:  cfg.Fetch.TimeoutMs,
				MaxResults: cfg.Fetch.MaxResults,
			}, observer)

			return service.NewReportService(client, cfg.ReportOptions(), cfg.Fetch.Concurrency)
		},
	}

	return cli.NewRootCmd(app).Execute()
}
