package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/hanbipark/worklog/internal/cli/formatter"
	"github.com/hanbipark/worklog/internal/config"
	"github.com/hanbipark/worklog/internal/domain"
	"github.com/hanbipark/worklog/internal/service"
)

func newReportCmd(app *App) *cobra.Command {
	var (
		project string
		author  string
		from    string
		to      string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate one author's worklogs over a date range",
		Long:  "Fetches every issue the author logged work on in the range, classifies\neach worklog entry by its [category] tag, and prints the record list with\ndaily and grand totals.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			req := service.ReportRequest{Project: project, Author: author, Start: from, End: to}
			if req.Project == "" {
				req.Project = cfg.Project
			}
			applyDefaultRange(&req, time.Now())

			if app.Interactive && !asJSON && author == "" {
				if err := promptReportRequest(cfg, &req); err != nil {
					return err
				}
			}
			if req.Author == "" {
				return errors.New("author is required: pass --author or run in a terminal")
			}

			svc := app.NewReportService(cfg)

			var stopSpinner func()
			if app.Interactive && !asJSON {
				stopSpinner = formatter.StartSpinner(fmt.Sprintf("Fetching worklogs for %s", req.Author))
			}
			resp, err := svc.Generate(cmd.Context(), req)
			if stopSpinner != nil {
				stopSpinner()
			}
			if err != nil {
				return err
			}

			if asJSON {
				return writeReportJSON(cmd.OutOrStdout(), req, resp)
			}

			meta := formatter.ReportMeta{
				Project:       req.Project,
				Author:        req.Author,
				Start:         req.Start,
				End:           req.End,
				Categories:    cfg.CategorySet().Names,
				IncludeParent: cfg.Report.IncludeParent,
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(resp, meta))
			return nil
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Jira project key (defaults to the configured project)")
	cmd.Flags().StringVarP(&author, "author", "a", "", "worklog author display name")
	cmd.Flags().StringVar(&from, "from", "", "range start, YYYY-MM-DD (default: yesterday)")
	cmd.Flags().StringVar(&to, "to", "", "range end, YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON instead of tables")

	return cmd
}

// applyDefaultRange fills missing range edges with yesterday through today.
func applyDefaultRange(req *service.ReportRequest, now time.Time) {
	if req.Start == "" {
		req.Start = now.AddDate(0, 0, -1).Format("2006-01-02")
	}
	if req.End == "" {
		req.End = now.Format("2006-01-02")
	}
}

// reportJSON is the machine-readable report shape. Durations are
// pre-formatted strings here as well; consumers wanting raw seconds should
// use the library packages directly.
type reportJSON struct {
	Project  string                       `json:"project"`
	Author   string                       `json:"author"`
	Start    string                       `json:"start"`
	End      string                       `json:"end"`
	Records  []domain.Record              `json:"records"`
	Daily    map[string]map[string]string `json:"daily"`
	Total    map[string]string            `json:"total"`
	Warnings []string                     `json:"warnings,omitempty"`
}

func writeReportJSON(w io.Writer, req service.ReportRequest, resp *service.ReportResponse) error {
	out := reportJSON{
		Project:  req.Project,
		Author:   req.Author,
		Start:    req.Start,
		End:      req.End,
		Records:  resp.Report.Records,
		Daily:    resp.Report.FormattedDaily(),
		Total:    resp.Report.FormattedTotal(),
		Warnings: resp.Warnings,
	}
	if out.Records == nil {
		out.Records = []domain.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
