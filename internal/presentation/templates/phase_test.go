package templates

import (
	"sync"
	"testing"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDoc() *pagedoc.Node {
	return &pagedoc.Node{
		Type: pagedoc.TypeDoc,
		Content: []*pagedoc.Node{
			{Type: pagedoc.TypeParagraph, Content: []*pagedoc.Node{{Type: pagedoc.TypeText, Text: "ready"}}},
		},
	}
}

func TestPageViewStartsAsPlaceholder(t *testing.T) {
	view := NewPageView(testDoc(), testTheme, pagedoc.DefaultSettings())

	assert.Equal(t, PhasePlaceholder, view.Phase())
	assert.Equal(t, "placeholder", view.Phase().String())

	placeholder := view.Placeholder()
	assert.Contains(t, placeholder.Markup, "Loading")
	assert.NotContains(t, placeholder.Markup, "ready")

	// The shell carries the real sizing and styles so the swap never shifts
	// layout.
	rendered := Render(testDoc(), testTheme, pagedoc.DefaultSettings())
	assert.Equal(t, rendered.StyleRules, placeholder.StyleRules)
	assert.Equal(t, rendered.MaxWidth, placeholder.MaxWidth)
	assert.Equal(t, rendered.Padding, placeholder.Padding)
	assert.Equal(t, rendered.Background, placeholder.Background)
}

func TestPageViewReadyTransitionsOnce(t *testing.T) {
	view := NewPageView(testDoc(), testTheme, pagedoc.DefaultSettings())

	first := view.Ready()
	assert.Equal(t, PhaseRendered, view.Phase())
	assert.Contains(t, first.Markup, "ready")

	second := view.Ready()
	assert.Equal(t, first, second)
}

func TestPageViewReadyConcurrent(t *testing.T) {
	view := NewPageView(testDoc(), testTheme, pagedoc.DefaultSettings())

	var wg sync.WaitGroup
	results := make([]RenderResult, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = view.Ready()
		}(i)
	}
	wg.Wait()

	require.Equal(t, PhaseRendered, view.Phase())
	for _, r := range results[1:] {
		assert.Equal(t, results[0], r)
	}
}

func TestPageViewNilDocRendersFallback(t *testing.T) {
	view := NewPageView(nil, testTheme, pagedoc.DefaultSettings())
	result := view.Ready()
	assert.Contains(t, result.Markup, "<p>")
	assert.Equal(t, PhaseRendered, view.Phase())
}
