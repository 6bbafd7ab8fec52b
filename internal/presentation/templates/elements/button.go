package elements

import (
	"strings"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
)

// ButtonRenderer emits the customButton node: a block container aligned per
// the align attribute wrapping a styled anchor.
type ButtonRenderer struct {
	childRenderer ChildRenderer
}

// NewButtonRenderer creates a new button renderer.
func NewButtonRenderer(childRenderer ChildRenderer) *ButtonRenderer {
	return &ButtonRenderer{childRenderer: childRenderer}
}

// Render emits the button markup. The anchor's style composes, in order: flex
// layout, padding, border radius, the 2px border, width behavior, optional
// shadow, background, text color, weight, underline removal. The order is
// load-bearing: changing only the variant must change only the
// background-color declaration.
func (r *ButtonRenderer) Render(n *pagedoc.Node) string {
	attrs := pagedoc.ButtonAttrsOf(n)

	container := &styleBuilder{}
	container.add("display", "flex")
	container.add("justify-content", justifyFor(attrs.Align))

	anchor := &styleBuilder{}
	anchor.add("align-items", "center")
	anchor.add("justify-content", "center")
	anchor.addPadding(attrs.PaddingY, attrs.PaddingX)
	anchor.addPx("border-radius", attrs.BorderRadius)
	anchor.add("border", "2px solid "+attrs.BorderColor)
	if attrs.Width == "full" {
		anchor.add("width", "100%")
		anchor.add("display", "flex")
	} else {
		anchor.add("display", "inline-flex")
	}
	if attrs.Shadow {
		anchor.add("box-shadow", "0 4px 14px rgba(0,0,0,0.25)")
	}
	if attrs.Variant == "outline" {
		anchor.add("background-color", "transparent")
	} else {
		anchor.add("background-color", attrs.BackgroundColor)
	}
	anchor.add("color", attrs.TextColor)
	anchor.add("font-weight", "700")
	anchor.add("text-decoration", "none")

	var html strings.Builder
	html.WriteString(`<div class="sw-button" style="`)
	html.WriteString(escapeAttr(container.String()))
	html.WriteString(`">`)

	// An href opens in a new tab with safe rel attributes; without one the
	// anchor renders as non-interactive styled text.
	if attrs.Href != "" {
		html.WriteString(`<a href="`)
		html.WriteString(escapeAttr(attrs.Href))
		html.WriteString(`" target="_blank" rel="noopener noreferrer" style="`)
	} else {
		html.WriteString(`<a style="`)
	}
	html.WriteString(escapeAttr(anchor.String()))
	html.WriteString(`">`)

	if len(n.Content) > 0 && r.childRenderer != nil {
		html.WriteString(r.childRenderer.RenderChildren(n))
	} else {
		html.WriteString(escapeAttr(attrs.Label))
	}

	html.WriteString(`</a></div>`)
	return html.String()
}
