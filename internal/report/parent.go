package report

import "github.com/hanbipark/worklog/internal/domain"

// maxParentDepth bounds ancestry traversal. Parent chains in real data are
// a couple of levels; the bound plus the visited set keeps traversal finite
// if the upstream ever returns a cyclic reference.
const maxParentDepth = 32

// TopLevelTitle resolves an issue's top-level grouping: the title of the
// outermost ancestor in its parent chain, or the issue's own title when it
// has no parent. A parent reference missing its nested fields is treated as
// terminal.
func TopLevelTitle(issue domain.Issue) string {
	if issue.Parent == nil {
		return issue.Title
	}

	visited := map[string]bool{issue.Key: true}
	node := issue.Parent
	for depth := 0; ; depth++ {
		if node.Parent == nil || depth >= maxParentDepth {
			return node.Title
		}
		if node.Key != "" {
			if visited[node.Key] {
				return node.Title
			}
			visited[node.Key] = true
		}
		node = node.Parent
	}
}
