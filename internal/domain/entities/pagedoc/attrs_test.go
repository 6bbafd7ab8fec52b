package pagedoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingLevelClamps(t *testing.T) {
	assert.Equal(t, 1, HeadingLevel(nil))
	assert.Equal(t, 1, HeadingLevel(&Node{Type: TypeHeading}))
	assert.Equal(t, 3, HeadingLevel(&Node{Type: TypeHeading, Attrs: map[string]any{"level": 3}}))
	assert.Equal(t, 3, HeadingLevel(&Node{Type: TypeHeading, Attrs: map[string]any{"level": float64(3)}}))
	assert.Equal(t, 1, HeadingLevel(&Node{Type: TypeHeading, Attrs: map[string]any{"level": 0}}))
	assert.Equal(t, 4, HeadingLevel(&Node{Type: TypeHeading, Attrs: map[string]any{"level": 9}}))
}

func TestButtonAttrsOfDefaultsAndOverrides(t *testing.T) {
	defaults := ButtonAttrsOf(nil)
	assert.Equal(t, DefaultButtonVariant, defaults.Variant)
	assert.Equal(t, DefaultButtonBackgroundColor, defaults.BackgroundColor)
	assert.False(t, defaults.Shadow)

	n := &Node{Type: TypeButton, Attrs: map[string]any{
		"variant":      "outline",
		"shadow":       true,
		"borderRadius": float64(12), // JSON numbers decode as float64
	}}
	a := ButtonAttrsOf(n)
	assert.Equal(t, "outline", a.Variant)
	assert.True(t, a.Shadow)
	assert.Equal(t, 12, a.BorderRadius)
	assert.Equal(t, DefaultButtonTextColor, a.TextColor)
}

func TestAttrResolversIgnoreWrongTypes(t *testing.T) {
	n := &Node{Type: TypeImage, Attrs: map[string]any{
		"width": 200, // non-string width falls back
		"align": "",
	}}
	a := ImageAttrsOf(n)
	assert.Equal(t, DefaultImageWidth, a.Width)
	assert.Equal(t, DefaultImageAlign, a.Align)
}

func TestTwoColumnAttrsOf(t *testing.T) {
	n := &Node{Type: TypeTwoColumn, Attrs: map[string]any{
		"layout": "media-right",
		"gap":    float64(16),
	}}
	a := TwoColumnAttrsOf(n)
	assert.Equal(t, "media-right", a.Layout)
	assert.Equal(t, 16, a.Gap)
	assert.Equal(t, DefaultTwoColumnVerticalAlign, a.VerticalAlign)
}
