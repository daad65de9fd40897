package formatter

import (
	"fmt"
	"strings"

	"github.com/hanbipark/worklog/internal/service"
)

const descriptionWidth = 60

// ReportMeta carries the presentation context for a report: what was
// queried and which category columns to show, in configured order.
type ReportMeta struct {
	Project       string
	Author        string
	Start         string
	End           string
	Categories    []string
	IncludeParent bool
}

// FormatReport formats a ReportResponse into a styled CLI report string:
// the per-entry record table, the daily category breakdown, and the totals
// box, followed by any degradation warnings.
func FormatReport(resp *service.ReportResponse, meta ReportMeta) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Worklogs · %s", meta.Project)))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s, %s → %s", meta.Author, meta.Start, meta.End)))
	b.WriteString("\n\n")

	if len(resp.Report.Records) == 0 {
		b.WriteString(Dim("No worklogs found in this range.") + "\n")
		writeWarnings(&b, resp.Warnings)
		return b.String()
	}

	b.WriteString(recordsTable(resp, meta))
	b.WriteString("\n")
	b.WriteString(Header("Daily totals"))
	b.WriteString("\n")
	b.WriteString(dailyTable(resp, meta))
	b.WriteString("\n")
	b.WriteString(totalsBox(resp, meta))
	b.WriteString("\n")

	writeWarnings(&b, resp.Warnings)
	return b.String()
}

func recordsTable(resp *service.ReportResponse, meta ReportMeta) string {
	headers := []string{"DATE", "CATEGORY"}
	if meta.IncludeParent {
		headers = append(headers, "PARENT")
	}
	headers = append(headers, "TICKET", "DESCRIPTION", "DURATION")
	durCol := len(headers) - 1

	rows := make([][]string, 0, len(resp.Report.Records))
	for _, rec := range resp.Report.Records {
		row := []string{
			StyleFg.Render(rec.Date),
			categoryLabel(rec.Category, meta.Categories),
		}
		if meta.IncludeParent {
			row = append(row, StyleFg.Render(rec.Parent))
		}
		row = append(row,
			Bold(rec.IssueKey)+" "+StyleFg.Render(Truncate(rec.Ticket, 40)),
			StyleFg.Render(Truncate(flattenLines(rec.Description), descriptionWidth)),
			StyleFg.Render(rec.Duration),
		)
		rows = append(rows, row)
	}

	return Table{
		Headers:    headers,
		Rows:       rows,
		RightAlign: map[int]bool{durCol: true},
	}.Render()
}

func dailyTable(resp *service.ReportResponse, meta ReportMeta) string {
	grand := resp.Report.GrandTotalLabel()
	headers := append([]string{"DATE"}, meta.Categories...)
	headers = append(headers, grand)

	align := make(map[int]bool, len(headers))
	for i := 1; i < len(headers); i++ {
		align[i] = true
	}

	daily := resp.Report.FormattedDaily()
	rows := make([][]string, 0, len(daily))
	for _, date := range resp.Report.Daily.Dates() {
		day := daily[date]
		row := []string{StyleFg.Render(date)}
		for i, cat := range meta.Categories {
			row = append(row, CategoryStyle(i).Render(day[cat]))
		}
		row = append(row, Bold(day[grand]))
		rows = append(rows, row)
	}

	return Table{Headers: headers, Rows: rows, RightAlign: align}.Render()
}

func totalsBox(resp *service.ReportResponse, meta ReportMeta) string {
	grand := resp.Report.GrandTotalLabel()
	total := resp.Report.FormattedTotal()

	width := len(grand)
	for _, cat := range meta.Categories {
		if w := len([]rune(cat)); w > width {
			width = w
		}
	}

	var lines []string
	for i, cat := range meta.Categories {
		pad := strings.Repeat(" ", width-len([]rune(cat)))
		lines = append(lines, fmt.Sprintf("%s%s  %s", CategoryStyle(i).Render(cat), pad, StyleFg.Render(total[cat])))
	}
	pad := strings.Repeat(" ", width-len(grand))
	lines = append(lines, fmt.Sprintf("%s%s  %s", Bold(grand), pad, Bold(total[grand])))

	return RenderBox("Total", strings.Join(lines, "\n"))
}

func categoryLabel(tag string, categories []string) string {
	for i, cat := range categories {
		if tag == cat {
			return CategoryStyle(i).Render(tag)
		}
	}
	return StyleDim.Render(tag)
}

func writeWarnings(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(Warn(w) + "\n")
	}
}
