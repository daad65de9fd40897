package jira

import (
	"fmt"
	"strings"
)

// WorklogJQL builds the issue-discovery query: issues in a project holding
// at least one worklog by the author inside the inclusive date range. The
// server-side filter bounds the candidate set; per-entry re-filtering still
// happens after fetch since an admitted issue may also hold non-qualifying
// entries.
func WorklogJQL(project, author, start, end string) string {
	parts := []string{
		fmt.Sprintf("project = %s", quoteJQL(project)),
		fmt.Sprintf("worklogAuthor = %s", quoteJQL(author)),
		fmt.Sprintf("worklogDate >= %s", quoteJQL(start)),
		fmt.Sprintf("worklogDate <= %s", quoteJQL(end)),
	}
	return strings.Join(parts, " AND ")
}

func quoteJQL(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
