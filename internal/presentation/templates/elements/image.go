package elements

import (
	"strings"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
)

// ImageRenderer emits the resizableImage node: a block-level <img> whose
// width tracks the attribute value and whose margins implement alignment.
type ImageRenderer struct{}

// NewImageRenderer creates a new image renderer.
func NewImageRenderer() *ImageRenderer {
	return &ImageRenderer{}
}

// Render emits the image markup. Centering margins are the default; left and
// right alignment zero out the margin on that side to push the image over.
func (r *ImageRenderer) Render(n *pagedoc.Node) string {
	attrs := pagedoc.ImageAttrsOf(n)

	style := &styleBuilder{}
	style.add("width", attrs.Width)
	style.add("height", "auto")
	style.add("display", "block")
	style.add("border-radius", "8px")
	switch attrs.Align {
	case "left":
		style.add("margin-left", "0").add("margin-right", "auto")
	case "right":
		style.add("margin-left", "auto").add("margin-right", "0")
	default:
		style.add("margin-left", "auto").add("margin-right", "auto")
	}

	var html strings.Builder
	html.WriteString(`<img class="sw-image" src="`)
	html.WriteString(escapeAttr(attrs.Src))
	html.WriteString(`" alt="`)
	html.WriteString(escapeAttr(attrs.Alt))
	html.WriteString(`" style="`)
	html.WriteString(escapeAttr(style.String()))
	html.WriteString(`">`)
	return html.String()
}
