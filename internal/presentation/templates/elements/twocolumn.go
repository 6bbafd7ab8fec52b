package elements

import (
	"strings"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
)

// TwoColumnRenderer emits the twoColumnSection node and its two slot
// children. The parent is a flex row that reverses when the media sits on the
// right; both slots are equal flex items.
type TwoColumnRenderer struct {
	childRenderer ChildRenderer
}

// NewTwoColumnRenderer creates a new two-column renderer.
func NewTwoColumnRenderer(childRenderer ChildRenderer) *TwoColumnRenderer {
	return &TwoColumnRenderer{childRenderer: childRenderer}
}

// Render emits the two-column container markup.
func (r *TwoColumnRenderer) Render(n *pagedoc.Node) string {
	attrs := pagedoc.TwoColumnAttrsOf(n)

	style := &styleBuilder{}
	style.add("display", "flex")
	if attrs.Layout == "media-right" {
		style.add("flex-direction", "row-reverse")
	} else {
		style.add("flex-direction", "row")
	}
	style.addPx("gap", attrs.Gap)
	style.addPadding(attrs.PaddingY, attrs.PaddingX)
	style.add("align-items", verticalAlignFor(attrs.VerticalAlign))
	if attrs.BackgroundColor != "" && attrs.BackgroundColor != "transparent" {
		style.add("background-color", attrs.BackgroundColor)
	}
	style.add("border-radius", "12px")
	style.add("overflow", "hidden")

	var html strings.Builder
	html.WriteString(`<div class="sw-columns" style="`)
	html.WriteString(escapeAttr(style.String()))
	html.WriteString(`">`)
	if r.childRenderer != nil {
		html.WriteString(r.childRenderer.RenderChildren(n))
	}
	html.WriteString(`</div>`)
	return html.String()
}

// RenderSlot emits a columnMedia or columnContent slot. Both are equal flex
// items; the content slot additionally stacks its children in a vertically
// centered column.
func (r *TwoColumnRenderer) RenderSlot(n *pagedoc.Node) string {
	style := &styleBuilder{}
	style.add("flex", "1")
	style.add("min-width", "0")

	class := "sw-column-media"
	if n.Type == pagedoc.TypeColumnContent {
		class = "sw-column-content"
		style.add("display", "flex")
		style.add("flex-direction", "column")
		style.add("justify-content", "center")
	}

	var html strings.Builder
	html.WriteString(`<div class="`)
	html.WriteString(class)
	html.WriteString(`" style="`)
	html.WriteString(escapeAttr(style.String()))
	html.WriteString(`">`)
	if r.childRenderer != nil {
		html.WriteString(r.childRenderer.RenderChildren(n))
	}
	html.WriteString(`</div>`)
	return html.String()
}

func verticalAlignFor(v string) string {
	switch v {
	case "top":
		return "flex-start"
	case "bottom":
		return "flex-end"
	default:
		return "center"
	}
}
