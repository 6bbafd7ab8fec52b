package pagedoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertImageDefaults(t *testing.T) {
	img := InsertImage(nil)
	assert.Equal(t, TypeImage, img.Type)
	assert.Equal(t, DefaultImageWidth, img.Attrs["width"])
	assert.Equal(t, DefaultImageAlign, img.Attrs["align"])

	custom := InsertImage(map[string]any{"src": "/media/images/a.png", "align": "left"})
	assert.Equal(t, "/media/images/a.png", custom.Attrs["src"])
	assert.Equal(t, "left", custom.Attrs["align"])
	assert.Equal(t, DefaultImageWidth, custom.Attrs["width"])
}

func TestInsertButtonDefaults(t *testing.T) {
	btn := InsertButton(nil)
	assert.Equal(t, TypeButton, btn.Type)
	assert.Equal(t, DefaultButtonVariant, btn.Attrs["variant"])
	assert.Equal(t, DefaultButtonBackgroundColor, btn.Attrs["backgroundColor"])
	assert.Equal(t, false, btn.Attrs["shadow"])
}

func TestInsertPageSectionSeedsParagraph(t *testing.T) {
	section := InsertPageSection(nil)
	assert.Equal(t, TypePageSection, section.Type)
	require.Len(t, section.Content, 1)
	assert.Equal(t, TypeParagraph, section.Content[0].Type)
}

func TestInsertTwoColumnSeedsSlots(t *testing.T) {
	section := InsertTwoColumn(nil)
	assert.Equal(t, TypeTwoColumn, section.Type)
	require.Len(t, section.Content, 2)

	media := section.Content[0]
	assert.Equal(t, TypeColumnMedia, media.Type)
	require.Len(t, media.Content, 1)
	assert.Equal(t, TypeImage, media.Content[0].Type)

	content := section.Content[1]
	assert.Equal(t, TypeColumnContent, content.Type)
	require.Len(t, content.Content, 2)
	assert.Equal(t, TypeHeading, content.Content[0].Type)
	assert.Equal(t, TypeParagraph, content.Content[1].Type)
}

func TestUpdateAttrsPatchesWithoutMutating(t *testing.T) {
	n := &Node{
		Type:    TypePageSection,
		Attrs:   map[string]any{"backgroundColor": "transparent", "paddingX": 24},
		Content: []*Node{{Type: TypeParagraph}},
	}

	out := UpdateAttrs(n, map[string]any{"backgroundColor": "#112233"})

	assert.Equal(t, "#112233", out.Attrs["backgroundColor"])
	assert.Equal(t, 24, out.Attrs["paddingX"])
	require.Len(t, out.Content, 1)

	assert.Equal(t, "transparent", n.Attrs["backgroundColor"])
}

func TestFlattenTwoColumnOrdering(t *testing.T) {
	a := &Node{Type: TypeImage, Attrs: map[string]any{"src": "a"}}
	b := &Node{Type: TypeImage, Attrs: map[string]any{"src": "b"}}
	c := &Node{Type: TypeHeading, Attrs: map[string]any{"level": 2}}
	d := &Node{Type: TypeParagraph}

	parent := &Node{
		Type: TypeDoc,
		Content: []*Node{
			{Type: TypeParagraph},
			{
				Type: TypeTwoColumn,
				Content: []*Node{
					// Content slot stored first; media children must still
					// lift ahead of it.
					{Type: TypeColumnContent, Content: []*Node{c, d}},
					{Type: TypeColumnMedia, Content: []*Node{a, b}},
				},
			},
			{Type: TypeHorizontalRule},
		},
	}

	out := FlattenTwoColumn(parent, 1)

	require.Len(t, out.Content, 6)
	assert.Equal(t, TypeParagraph, out.Content[0].Type)
	assert.Equal(t, "a", out.Content[1].Attrs["src"])
	assert.Equal(t, "b", out.Content[2].Attrs["src"])
	assert.Equal(t, TypeHeading, out.Content[3].Type)
	assert.Equal(t, TypeParagraph, out.Content[4].Type)
	assert.Equal(t, TypeHorizontalRule, out.Content[5].Type)

	// The original tree still holds the section.
	assert.Equal(t, TypeTwoColumn, parent.Content[1].Type)
}

func TestFlattenTwoColumnIgnoresNonSections(t *testing.T) {
	parent := &Node{
		Type:    TypeDoc,
		Content: []*Node{{Type: TypeParagraph}},
	}

	out := FlattenTwoColumn(parent, 0)
	require.Len(t, out.Content, 1)
	assert.Equal(t, TypeParagraph, out.Content[0].Type)

	out = FlattenTwoColumn(parent, 5)
	require.Len(t, out.Content, 1)

	assert.Nil(t, FlattenTwoColumn(nil, 0))
}
