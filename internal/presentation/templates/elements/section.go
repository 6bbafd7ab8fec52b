package elements

import (
	"strings"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
)

// SectionRenderer emits the pageSection node as a semantic <section> wrapper.
type SectionRenderer struct {
	childRenderer ChildRenderer
}

// NewSectionRenderer creates a new page-section renderer.
func NewSectionRenderer(childRenderer ChildRenderer) *SectionRenderer {
	return &SectionRenderer{childRenderer: childRenderer}
}

// Render emits the section markup. A transparent background is skipped
// entirely; fullWidth and label are structural markers carried as data
// attributes for the editor, never visual.
func (r *SectionRenderer) Render(n *pagedoc.Node) string {
	attrs := pagedoc.SectionAttrsOf(n)

	style := &styleBuilder{}
	if attrs.BackgroundColor != "" && attrs.BackgroundColor != "transparent" {
		style.add("background-color", attrs.BackgroundColor)
	}
	if attrs.TextColor != "" {
		style.add("color", attrs.TextColor)
	}
	style.addPadding(attrs.PaddingY, attrs.PaddingX)
	if attrs.BorderBottom {
		style.add("border-bottom", "1px solid rgba(0,0,0,0.1)")
	}

	var html strings.Builder
	html.WriteString(`<section class="sw-section"`)
	if attrs.Label != "" {
		html.WriteString(` data-label="`)
		html.WriteString(escapeAttr(attrs.Label))
		html.WriteString(`"`)
	}
	if attrs.FullWidth {
		html.WriteString(` data-full-width="true"`)
	}
	html.WriteString(` style="`)
	html.WriteString(escapeAttr(style.String()))
	html.WriteString(`">`)
	if r.childRenderer != nil {
		html.WriteString(r.childRenderer.RenderChildren(n))
	}
	html.WriteString(`</section>`)
	return html.String()
}
