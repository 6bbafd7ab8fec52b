// Package pagedoc provides the landing-page document model: a tree of typed
// nodes authored by the admin editor, persisted as opaque JSON, and compiled
// to HTML by the presentation layer.
package pagedoc

import "encoding/json"

// Node type tags. The vocabulary is closed: the compiler switches exhaustively
// over these tags and a new block type means a new constant plus a new case,
// not a runtime registration.
const (
	TypeDoc            = "doc"
	TypeParagraph      = "paragraph"
	TypeHeading        = "heading"
	TypeText           = "text"
	TypeBulletList     = "bulletList"
	TypeOrderedList    = "orderedList"
	TypeListItem       = "listItem"
	TypeBlockquote     = "blockquote"
	TypeCodeBlock      = "codeBlock"
	TypeHorizontalRule = "horizontalRule"
	TypeHardBreak      = "hardBreak"
	TypeYouTube        = "youtube"

	// Custom block types owned by this module.
	TypeImage         = "resizableImage"
	TypeButton        = "customButton"
	TypePageSection   = "pageSection"
	TypeTwoColumn     = "twoColumnSection"
	TypeColumnMedia   = "columnMedia"
	TypeColumnContent = "columnContent"
)

// Mark type tags applied to text nodes.
const (
	MarkBold      = "bold"
	MarkItalic    = "italic"
	MarkUnderline = "underline"
	MarkStrike    = "strike"
	MarkCode      = "code"
	MarkLink      = "link"
	MarkTextStyle = "textStyle"
	MarkHighlight = "highlight"
)

// Node is a single element of the page document tree. The JSON shape matches
// the editor's persisted format exactly: `type`, optional `attrs`, optional
// ordered `content`, optional `marks`/`text` on leaf text nodes.
type Node struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []*Node        `json:"content,omitempty"`
	Marks   []*Mark        `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Mark annotates a text node with inline formatting.
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Clone returns a deep copy of the node. Editor commands and the sanitizer
// operate on copies so a document handed to the renderer is never mutated.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Type: n.Type, Text: n.Text}
	if n.Attrs != nil {
		out.Attrs = make(map[string]any, len(n.Attrs))
		for k, v := range n.Attrs {
			out.Attrs[k] = v
		}
	}
	if n.Marks != nil {
		out.Marks = make([]*Mark, 0, len(n.Marks))
		for _, m := range n.Marks {
			cm := &Mark{Type: m.Type}
			if m.Attrs != nil {
				cm.Attrs = make(map[string]any, len(m.Attrs))
				for k, v := range m.Attrs {
					cm.Attrs[k] = v
				}
			}
			out.Marks = append(out.Marks, cm)
		}
	}
	if n.Content != nil {
		out.Content = make([]*Node, 0, len(n.Content))
		for _, c := range n.Content {
			out.Content = append(out.Content, c.Clone())
		}
	}
	return out
}

// HasMark reports whether the node carries a mark of the given type.
func (n *Node) HasMark(markType string) bool {
	for _, m := range n.Marks {
		if m.Type == markType {
			return true
		}
	}
	return false
}

// MarkAttrs returns the attrs of the first mark of the given type, or nil.
func (n *Node) MarkAttrs(markType string) map[string]any {
	for _, m := range n.Marks {
		if m.Type == markType {
			return m.Attrs
		}
	}
	return nil
}

// FallbackDocument returns the minimal valid document substituted whenever a
// persisted value cannot be interpreted: one paragraph holding one empty text
// node. The sanitizer later fills the empty text with a non-breaking space.
func FallbackDocument() *Node {
	return &Node{
		Type: TypeDoc,
		Content: []*Node{
			{
				Type:    TypeParagraph,
				Content: []*Node{{Type: TypeText, Text: ""}},
			},
		},
	}
}

// nodeFromAny rebuilds a Node from a decoded JSON value (map[string]any or
// already-typed *Node). The round-trip through encoding/json keeps the decode
// rules in one place.
func nodeFromAny(v any) (*Node, bool) {
	switch t := v.(type) {
	case *Node:
		if t == nil {
			return nil, false
		}
		return t.Clone(), true
	case Node:
		return t.Clone(), true
	case map[string]any:
		raw, err := json.Marshal(t)
		if err != nil {
			return nil, false
		}
		var n Node
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, false
		}
		if n.Type == "" {
			return nil, false
		}
		return &n, true
	default:
		return nil, false
	}
}
