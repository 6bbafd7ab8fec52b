package elements

import (
	"strings"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
)

// VideoRenderer emits the youtube embed node as a responsive frame wrapper.
type VideoRenderer struct{}

// NewVideoRenderer creates a new video renderer.
func NewVideoRenderer() *VideoRenderer {
	return &VideoRenderer{}
}

// Render emits the iframe markup. A node without a src renders nothing.
func (vr *VideoRenderer) Render(n *pagedoc.Node) string {
	src := ""
	if n.Attrs != nil {
		src, _ = n.Attrs["src"].(string)
	}
	if src == "" {
		return ""
	}

	var html strings.Builder
	html.WriteString(`<div class="sw-video"><iframe src="`)
	html.WriteString(escapeAttr(src))
	html.WriteString(`" frameborder="0" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe></div>`)
	return html.String()
}
