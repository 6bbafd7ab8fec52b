// Package elements provides the per-node render rules for the page document
// vocabulary. Each renderer is a pure function of node attributes: same attrs,
// same markup, byte for byte.
package elements

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
)

// ChildRenderer renders a node's children; implemented by the compiler so
// element renderers can recurse without importing it.
type ChildRenderer interface {
	RenderChildren(n *pagedoc.Node) string
}

// escapeAttr escapes a value for use inside a double-quoted HTML attribute.
func escapeAttr(s string) string {
	return template.HTMLEscapeString(s)
}

// styleBuilder accumulates CSS declarations in insertion order. Declaration
// order is part of the render contract: tests compare computed style strings
// byte for byte.
type styleBuilder struct {
	b strings.Builder
}

func (sb *styleBuilder) add(property, value string) *styleBuilder {
	sb.b.WriteString(property)
	sb.b.WriteString(":")
	sb.b.WriteString(value)
	sb.b.WriteString(";")
	return sb
}

func (sb *styleBuilder) addPx(property string, value int) *styleBuilder {
	return sb.add(property, fmt.Sprintf("%dpx", value))
}

func (sb *styleBuilder) addPadding(y, x int) *styleBuilder {
	return sb.add("padding", fmt.Sprintf("%dpx %dpx", y, x))
}

func (sb *styleBuilder) String() string {
	return sb.b.String()
}

// justifyFor maps the shared align attribute to a flex justification.
func justifyFor(align string) string {
	switch align {
	case "left":
		return "flex-start"
	case "right":
		return "flex-end"
	default:
		return "center"
	}
}
