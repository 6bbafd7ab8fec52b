package pagedoc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrappedPayload(t *testing.T, settings map[string]any) string {
	t.Helper()
	payload := map[string]any{
		"doc": map[string]any{
			"type": "doc",
			"content": []any{
				map[string]any{
					"type":    "paragraph",
					"content": []any{map[string]any{"type": "text", "text": "hello"}},
				},
			},
		},
	}
	if settings != nil {
		payload["settings"] = settings
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(raw)
}

func TestNormalizeWrappedObject(t *testing.T) {
	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(wrappedPayload(t, nil)), &parsed))

	page := Normalize(parsed, nil)

	require.NotNil(t, page.Doc)
	assert.Equal(t, TypeDoc, page.Doc.Type)
	require.Len(t, page.Doc.Content, 1)
	assert.Equal(t, TypeParagraph, page.Doc.Content[0].Type)
	assert.Equal(t, DefaultSettings(), page.Settings)
}

func TestNormalizeRawDocObject(t *testing.T) {
	raw := map[string]any{
		"type": "doc",
		"content": []any{
			map[string]any{"type": "paragraph"},
		},
	}

	page := Normalize(raw, nil)

	require.NotNil(t, page.Doc)
	assert.Equal(t, TypeDoc, page.Doc.Type)
	assert.Equal(t, DefaultSettings(), page.Settings)
}

func TestNormalizeJSONString(t *testing.T) {
	page := Normalize(wrappedPayload(t, map[string]any{"maxWidth": 960}), nil)

	require.NotNil(t, page.Doc)
	assert.Equal(t, TypeDoc, page.Doc.Type)
	assert.Equal(t, 960, page.Settings.MaxWidth)
	assert.Equal(t, DefaultPaddingX, page.Settings.PaddingX)
}

func TestNormalizeGarbageFallsBack(t *testing.T) {
	cases := map[string]any{
		"nil":            nil,
		"number":         42,
		"bool":           true,
		"bad json":       "{not json",
		"json array":     "[1,2,3]",
		"empty object":   map[string]any{},
		"wrong type":     map[string]any{"type": "paragraph"},
		"nil doc":        map[string]any{"doc": nil},
		"doc not a node": map[string]any{"doc": 7},
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			page := Normalize(raw, nil)
			require.NotNil(t, page.Doc)
			assert.Equal(t, TypeDoc, page.Doc.Type)
			require.Len(t, page.Doc.Content, 1)
			assert.Equal(t, TypeParagraph, page.Doc.Content[0].Type)
			assert.Equal(t, DefaultSettings(), page.Settings)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	page := Normalize(wrappedPayload(t, map[string]any{"paddingY": 64}), nil)
	again := Normalize(page, nil)

	assert.Equal(t, page.Settings, again.Settings)
	assert.Equal(t, page.Doc, again.Doc)
}

func TestNormalizeSettingsPrecedence(t *testing.T) {
	// Overrides beat embedded settings, which beat defaults.
	embedded := wrappedPayload(t, map[string]any{"maxWidth": 999, "paddingX": 40})
	width := 111
	page := Normalize(embedded, &SettingsPatch{MaxWidth: &width})

	assert.Equal(t, 111, page.Settings.MaxWidth)
	assert.Equal(t, 40, page.Settings.PaddingX)
	assert.Equal(t, DefaultPaddingY, page.Settings.PaddingY)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	doc := &Node{
		Type:    TypeDoc,
		Content: []*Node{{Type: TypeParagraph, Content: []*Node{{Type: TypeText, Text: "x"}}}},
	}

	page := Normalize(doc, nil)
	require.NotNil(t, page.Doc)

	page.Doc.Content[0].Content[0].Text = "mutated"
	assert.Equal(t, "x", doc.Content[0].Content[0].Text)
}
