package pagedoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFillsEmptyText(t *testing.T) {
	doc := &Node{
		Type: TypeDoc,
		Content: []*Node{
			{Type: TypeParagraph, Content: []*Node{{Type: TypeText, Text: ""}}},
		},
	}

	out := Sanitize(doc)

	require.NotNil(t, out)
	assert.Equal(t, NonBreakingSpace, out.Content[0].Content[0].Text)
}

func TestSanitizeLeavesNonEmptyTextAlone(t *testing.T) {
	n := &Node{Type: TypeText, Text: "keep me"}
	out := Sanitize(n)
	require.NotNil(t, out)
	assert.Equal(t, "keep me", out.Text)
}

func TestSanitizeDropsUntypedNodes(t *testing.T) {
	doc := &Node{
		Type: TypeDoc,
		Content: []*Node{
			{Type: TypeParagraph},
			nil,
			{Type: ""},
			{Type: TypeHeading, Attrs: map[string]any{"level": 2}},
		},
	}

	out := Sanitize(doc)

	require.NotNil(t, out)
	require.Len(t, out.Content, 2)
	assert.Equal(t, TypeParagraph, out.Content[0].Type)
	assert.Equal(t, TypeHeading, out.Content[1].Type)
}

func TestSanitizePreservesFilledTrees(t *testing.T) {
	doc := &Node{
		Type: TypeDoc,
		Content: []*Node{
			{Type: TypeHeading, Attrs: map[string]any{"level": 1}, Content: []*Node{{Type: TypeText, Text: "title"}}},
			{Type: TypeParagraph, Content: []*Node{{Type: TypeText, Text: "body", Marks: []*Mark{{Type: MarkBold}}}}},
		},
	}

	out := Sanitize(doc)
	assert.Equal(t, doc, out)
}

func TestSanitizeNilReturnsNil(t *testing.T) {
	assert.Nil(t, Sanitize(nil))
	assert.Nil(t, Sanitize(&Node{}))
}

func TestSanitizeDoesNotMutateInput(t *testing.T) {
	doc := &Node{
		Type: TypeDoc,
		Content: []*Node{
			{Type: TypeParagraph, Content: []*Node{{Type: TypeText, Text: ""}}},
			{Type: ""},
		},
	}

	_ = Sanitize(doc)

	assert.Equal(t, "", doc.Content[0].Content[0].Text)
	require.Len(t, doc.Content, 2)
}

func TestSanitizePreservesSiblingOrder(t *testing.T) {
	doc := &Node{
		Type: TypeDoc,
		Content: []*Node{
			{Type: TypeHeading, Attrs: map[string]any{"level": 1}},
			{Type: ""},
			{Type: TypeParagraph},
			{Type: TypeHorizontalRule},
		},
	}

	out := Sanitize(doc)

	require.Len(t, out.Content, 3)
	assert.Equal(t, TypeHeading, out.Content[0].Type)
	assert.Equal(t, TypeParagraph, out.Content[1].Type)
	assert.Equal(t, TypeHorizontalRule, out.Content[2].Type)
}
