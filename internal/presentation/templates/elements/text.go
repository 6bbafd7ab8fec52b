package elements

import (
	"html/template"
	"strings"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
)

// textEscaper is a pre-parsed template used to escape text content, keeping
// escaping consistent with the attribute templates used elsewhere.
var textEscaper = template.Must(template.New("textEscaper").Parse("{{.}}"))

// TextRenderer emits leaf text nodes with their inline marks applied.
type TextRenderer struct{}

// NewTextRenderer creates a new text renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render escapes the node's text and wraps it in mark tags. Marks wrap in
// reverse stored order so the first mark ends up outermost; the mapping from
// mark to tag is fixed, which keeps output deterministic for identical input.
func (tr *TextRenderer) Render(n *pagedoc.Node) string {
	var escaped strings.Builder
	if err := textEscaper.Execute(&escaped, n.Text); err != nil {
		return ""
	}
	out := escaped.String()

	for i := len(n.Marks) - 1; i >= 0; i-- {
		out = wrapMark(n.Marks[i], out)
	}
	return out
}

func wrapMark(m *pagedoc.Mark, inner string) string {
	switch m.Type {
	case pagedoc.MarkBold:
		return "<strong>" + inner + "</strong>"
	case pagedoc.MarkItalic:
		return "<em>" + inner + "</em>"
	case pagedoc.MarkUnderline:
		return "<u>" + inner + "</u>"
	case pagedoc.MarkStrike:
		return "<s>" + inner + "</s>"
	case pagedoc.MarkCode:
		return "<code>" + inner + "</code>"
	case pagedoc.MarkLink:
		href, _ := m.Attrs["href"].(string)
		if href == "" {
			return inner
		}
		return `<a href="` + escapeAttr(href) + `" target="_blank" rel="noopener noreferrer">` + inner + `</a>`
	case pagedoc.MarkTextStyle:
		color, _ := m.Attrs["color"].(string)
		if color == "" {
			return inner
		}
		return `<span style="color:` + escapeAttr(color) + `;">` + inner + `</span>`
	case pagedoc.MarkHighlight:
		color, _ := m.Attrs["color"].(string)
		if color == "" {
			return "<mark>" + inner + "</mark>"
		}
		return `<mark style="background-color:` + escapeAttr(color) + `;">` + inner + `</mark>`
	default:
		return inner
	}
}
