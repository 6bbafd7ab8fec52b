// Package templates compiles normalized page documents to HTML markup plus a
// scoped stylesheet.
package templates

import (
	"fmt"
	"log"
	"strings"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
	"github.com/StillwaterStudio/stillwater-go/internal/presentation/templates/elements"
)

// RootClassName scopes every generated style rule; the display collaborator
// applies it to the element hosting the markup.
const RootClassName = "sw-page"

// failureMarkup replaces the compiled body when the compiler panics on a
// malformed tree. The style rules are still emitted so the page shell renders
// correctly around the message.
const failureMarkup = `<p>Failed to load page content.</p>`

// RenderResult is everything the display collaborator needs: markup safe to
// inject verbatim, style rules scoped under RootClassName, and sizing for the
// wrapping container.
type RenderResult struct {
	Markup     string `json:"markup"`
	StyleRules string `json:"styleRules"`
	MaxWidth   int    `json:"maxWidth"`
	Padding    string `json:"padding"`
	Background string `json:"background"`
}

// NodeRenderer compiles nodes to markup. The concrete compiler below switches
// exhaustively over the closed vocabulary; adding a node type means a new
// case, not a plugin registration.
type NodeRenderer interface {
	RenderNode(n *pagedoc.Node) string
	RenderChildren(n *pagedoc.Node) string
}

// Render compiles a normalized document against a theme and settings. It is a
// pure single-pass pipeline: sanitize, validate the root, compile, generate
// the stylesheet, resolve the page background. Compile failures never reach
// the caller; the failure paragraph is substituted instead.
func Render(doc *pagedoc.Node, theme pagedoc.Theme, settings pagedoc.Settings) RenderResult {
	sanitized := pagedoc.Sanitize(doc)
	if sanitized == nil || sanitized.Type != pagedoc.TypeDoc {
		sanitized = pagedoc.Sanitize(pagedoc.FallbackDocument())
	}

	markup := compile(sanitized)

	return RenderResult{
		Markup:     markup,
		StyleRules: GenerateStylesheet(theme, settings),
		MaxWidth:   settings.MaxWidth,
		Padding:    fmt.Sprintf("%dpx %dpx", settings.PaddingY, settings.PaddingX),
		Background: pagedoc.ResolveBackground(settings, theme),
	}
}

// compile walks the document through the node renderers, trapping panics so a
// single degenerate node cannot take the page down.
func compile(doc *pagedoc.Node) (markup string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: page compile failed: %v", r)
			markup = failureMarkup
		}
	}()

	compiler := NewCompiler()
	return compiler.RenderNode(doc)
}

// Compiler implements NodeRenderer over the closed vocabulary.
type Compiler struct {
	basicTag  *elements.BasicTagRenderer
	text      *elements.TextRenderer
	image     *elements.ImageRenderer
	button    *elements.ButtonRenderer
	section   *elements.SectionRenderer
	twoColumn *elements.TwoColumnRenderer
	video     *elements.VideoRenderer
}

// NewCompiler creates a compiler with its element renderers wired for
// recursion.
func NewCompiler() *Compiler {
	c := &Compiler{}
	c.basicTag = elements.NewBasicTagRenderer(c)
	c.text = elements.NewTextRenderer()
	c.image = elements.NewImageRenderer()
	c.button = elements.NewButtonRenderer(c)
	c.section = elements.NewSectionRenderer(c)
	c.twoColumn = elements.NewTwoColumnRenderer(c)
	c.video = elements.NewVideoRenderer()
	return c
}

// RenderNode dispatches a node to its render rule.
func (c *Compiler) RenderNode(n *pagedoc.Node) string {
	if n == nil {
		return ""
	}

	switch n.Type {
	case pagedoc.TypeDoc:
		return c.RenderChildren(n)
	case pagedoc.TypeParagraph, pagedoc.TypeHeading, pagedoc.TypeBulletList,
		pagedoc.TypeOrderedList, pagedoc.TypeListItem, pagedoc.TypeBlockquote,
		pagedoc.TypeCodeBlock, pagedoc.TypeHorizontalRule, pagedoc.TypeHardBreak:
		return c.basicTag.Render(n)
	case pagedoc.TypeText:
		return c.text.Render(n)
	case pagedoc.TypeImage:
		return c.image.Render(n)
	case pagedoc.TypeButton:
		return c.button.Render(n)
	case pagedoc.TypePageSection:
		return c.section.Render(n)
	case pagedoc.TypeTwoColumn:
		return c.twoColumn.Render(n)
	case pagedoc.TypeColumnMedia, pagedoc.TypeColumnContent:
		return c.twoColumn.RenderSlot(n)
	case pagedoc.TypeYouTube:
		return c.video.Render(n)
	default:
		log.Printf("compiler miss on %q", n.Type)
		return ""
	}
}

// RenderChildren compiles a node's children in order.
func (c *Compiler) RenderChildren(n *pagedoc.Node) string {
	if n == nil || len(n.Content) == 0 {
		return ""
	}
	var html strings.Builder
	for _, child := range n.Content {
		html.WriteString(c.RenderNode(child))
	}
	return html.String()
}
