package elements

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
)

// basicTags maps block node types to their fixed HTML tags. Only tags in this
// map are ever emitted for basic nodes, so document data can never smuggle an
// arbitrary element into the output.
var basicTags = map[string]string{
	pagedoc.TypeParagraph:   "p",
	pagedoc.TypeBulletList:  "ul",
	pagedoc.TypeOrderedList: "ol",
	pagedoc.TypeListItem:    "li",
	pagedoc.TypeBlockquote:  "blockquote",
}

// BasicTagRenderer emits the conventional block nodes: paragraphs, headings,
// lists, blockquotes, code blocks, rules and breaks.
type BasicTagRenderer struct {
	childRenderer ChildRenderer
}

// NewBasicTagRenderer creates a new basic tag renderer.
func NewBasicTagRenderer(childRenderer ChildRenderer) *BasicTagRenderer {
	return &BasicTagRenderer{childRenderer: childRenderer}
}

// Render emits markup for a basic block node.
func (r *BasicTagRenderer) Render(n *pagedoc.Node) string {
	switch n.Type {
	case pagedoc.TypeHeading:
		tag := fmt.Sprintf("h%d", pagedoc.HeadingLevel(n))
		return r.renderTag(tag, n)
	case pagedoc.TypeCodeBlock:
		return r.renderCodeBlock(n)
	case pagedoc.TypeHorizontalRule:
		return `<hr>`
	case pagedoc.TypeHardBreak:
		return `<br>`
	default:
		tag, ok := basicTags[n.Type]
		if !ok {
			return ""
		}
		return r.renderTag(tag, n)
	}
}

func (r *BasicTagRenderer) renderTag(tag string, n *pagedoc.Node) string {
	var html strings.Builder
	html.WriteString("<")
	html.WriteString(tag)
	if align := textAlignOf(n); align != "" {
		html.WriteString(` style="text-align:`)
		html.WriteString(align)
		html.WriteString(`;"`)
	}
	html.WriteString(">")
	if r.childRenderer != nil {
		html.WriteString(r.childRenderer.RenderChildren(n))
	}
	html.WriteString("</")
	html.WriteString(tag)
	html.WriteString(">")
	return html.String()
}

// renderCodeBlock escapes raw text children directly; marks do not apply
// inside a code block.
func (r *BasicTagRenderer) renderCodeBlock(n *pagedoc.Node) string {
	var body strings.Builder
	for _, child := range n.Content {
		if child != nil && child.Type == pagedoc.TypeText {
			body.WriteString(template.HTMLEscapeString(child.Text))
		}
	}
	return `<pre><code>` + body.String() + `</code></pre>`
}

// textAlignOf returns the node's textAlign attribute when it is one of the
// recognized values, else the empty string.
func textAlignOf(n *pagedoc.Node) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	v, _ := n.Attrs["textAlign"].(string)
	switch v {
	case "left", "center", "right", "justify":
		return v
	}
	return ""
}
