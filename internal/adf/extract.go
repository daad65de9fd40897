// Package adf renders Atlassian Document Format trees to plain text.
//
// Worklog comments arrive either as plain strings or as ADF documents
// (nested nodes with a type discriminator and optional child content).
// This is a best-effort text renderer, not a strict parser: anything that
// does not look like a document yields an empty string.
package adf

import (
	"encoding/json"
	"strings"
)

// maxDepth bounds recursion over the node tree. Real documents nest a
// handful of levels; anything deeper is ignored.
const maxDepth = 64

// Node is one ADF node. Unrecognized node kinds are walked through their
// Content; leaves without recognized structure contribute nothing.
type Node struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	Content []Node `json:"content"`
}

// Extract renders a raw JSON document to plain text. Bullet-list items
// become "- "-prefixed lines; all lines are joined with newlines and the
// result is trimmed. Malformed input yields an empty string.
func Extract(data []byte) string {
	var doc Node
	if err := json.Unmarshal(data, &doc); err != nil {
		return ""
	}
	return ExtractNode(doc)
}

// ExtractNode renders an already-decoded document node to plain text.
func ExtractNode(doc Node) string {
	var lines []string
	walk(doc.Content, &lines, 0)
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func walk(nodes []Node, out *[]string, depth int) {
	if depth > maxDepth {
		return
	}
	for _, n := range nodes {
		switch {
		case n.Type == "text" && n.Text != "":
			*out = append(*out, n.Text)
		case n.Type == "bulletList":
			for _, item := range n.Content {
				*out = append(*out, "- "+listItemText(item, depth+1))
			}
		case len(n.Content) > 0:
			walk(n.Content, out, depth+1)
		}
	}
}

// listItemText renders a listItem node the same way a whole document is
// rendered, so nested lists keep their own "- " prefixes.
func listItemText(item Node, depth int) string {
	if depth > maxDepth {
		return ""
	}
	var lines []string
	walk(item.Content, &lines, depth)
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
