package adf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_PlainParagraph(t *testing.T) {
	doc := `{
		"type": "doc",
		"content": [
			{"type": "paragraph", "content": [{"type": "text", "text": "[개발] fix bug"}]}
		]
	}`
	assert.Equal(t, "[개발] fix bug", Extract([]byte(doc)))
}

func TestExtract_BulletListPrefixesItems(t *testing.T) {
	doc := `{
		"type": "doc",
		"content": [
			{"type": "bulletList", "content": [
				{"type": "listItem", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "first"}]}]},
				{"type": "listItem", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "second"}]}]}
			]}
		]
	}`
	assert.Equal(t, "- first\n- second", Extract([]byte(doc)))
}

func TestExtract_MixedParagraphAndList(t *testing.T) {
	doc := `{
		"type": "doc",
		"content": [
			{"type": "paragraph", "content": [{"type": "text", "text": "[회의] sprint planning"}]},
			{"type": "bulletList", "content": [
				{"type": "listItem", "content": [{"type": "paragraph", "content": [{"type": "text", "text": "capacity review"}]}]}
			]}
		]
	}`
	assert.Equal(t, "[회의] sprint planning\n- capacity review", Extract([]byte(doc)))
}

func TestExtract_UnknownLeafContributesNothing(t *testing.T) {
	doc := `{
		"type": "doc",
		"content": [
			{"type": "rule"},
			{"type": "paragraph", "content": [{"type": "text", "text": "after rule"}]}
		]
	}`
	assert.Equal(t, "after rule", Extract([]byte(doc)))
}

func TestExtract_MalformedInputYieldsEmpty(t *testing.T) {
	assert.Equal(t, "", Extract([]byte(`"just a string"`)))
	assert.Equal(t, "", Extract([]byte(`[1, 2, 3]`)))
	assert.Equal(t, "", Extract([]byte(`not json at all`)))
	assert.Equal(t, "", Extract(nil))
}

func TestExtract_EmptyDocumentYieldsEmpty(t *testing.T) {
	assert.Equal(t, "", Extract([]byte(`{"type": "doc", "content": []}`)))
}

func TestExtract_DepthGuardTerminates(t *testing.T) {
	// Build a document nested well past the guard.
	inner := `{"type": "text", "text": "deep"}`
	for i := 0; i < 200; i++ {
		inner = `{"type": "paragraph", "content": [` + inner + `]}`
	}
	doc := `{"type": "doc", "content": [` + inner + `]}`
	assert.Equal(t, "", Extract([]byte(doc)))
}
