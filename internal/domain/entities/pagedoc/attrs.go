package pagedoc

// Attribute defaults for the custom block types. Every attribute has a
// default; a node persisted without an attribute renders identically to one
// persisted with the default value spelled out.
const (
	DefaultImageWidth = "100%"
	DefaultImageAlign = "center"

	DefaultButtonAlign           = "center"
	DefaultButtonBackgroundColor = "#0F766E"
	DefaultButtonTextColor       = "#FFFFFF"
	DefaultButtonBorderColor     = "#0F766E"
	DefaultButtonBorderRadius    = 8
	DefaultButtonPaddingX        = 24
	DefaultButtonPaddingY        = 12
	DefaultButtonVariant         = "solid"
	DefaultButtonWidth           = "auto"

	DefaultSectionBackgroundColor = "transparent"
	DefaultSectionTextColor       = "#1F2937"
	DefaultSectionPaddingX        = 24
	DefaultSectionPaddingY        = 48

	DefaultTwoColumnLayout          = "media-left"
	DefaultTwoColumnBackgroundColor = "transparent"
	DefaultTwoColumnGap             = 32
	DefaultTwoColumnPaddingX        = 24
	DefaultTwoColumnPaddingY        = 48
	DefaultTwoColumnVerticalAlign   = "center"
)

// ImageAttrs are the typed attributes of a resizableImage node.
type ImageAttrs struct {
	Src   string
	Alt   string
	Width string // percentage or CSS length
	Align string // left | center | right
}

// ButtonAttrs are the typed attributes of a customButton node.
type ButtonAttrs struct {
	Href            string
	Label           string
	Align           string // left | center | right
	BackgroundColor string
	TextColor       string
	BorderColor     string
	BorderRadius    int
	PaddingX        int
	PaddingY        int
	Shadow          bool
	Variant         string // solid | outline
	Width           string // auto | full
}

// SectionAttrs are the typed attributes of a pageSection node.
type SectionAttrs struct {
	BackgroundColor string
	TextColor       string
	PaddingX        int
	PaddingY        int
	FullWidth       bool
	BorderBottom    bool
	Label           string // editor-facing marker, never rendered visibly
}

// TwoColumnAttrs are the typed attributes of a twoColumnSection node.
type TwoColumnAttrs struct {
	Layout          string // media-left | media-right
	BackgroundColor string
	Gap             int
	PaddingX        int
	PaddingY        int
	VerticalAlign   string // top | center | bottom
}

// ImageAttrsOf resolves a node's attrs against the image defaults.
func ImageAttrsOf(n *Node) ImageAttrs {
	a := ImageAttrs{
		Width: DefaultImageWidth,
		Align: DefaultImageAlign,
	}
	if n == nil || n.Attrs == nil {
		return a
	}
	a.Src = attrString(n.Attrs, "src", a.Src)
	a.Alt = attrString(n.Attrs, "alt", a.Alt)
	a.Width = attrString(n.Attrs, "width", a.Width)
	a.Align = attrString(n.Attrs, "align", a.Align)
	return a
}

// ButtonAttrsOf resolves a node's attrs against the button defaults.
func ButtonAttrsOf(n *Node) ButtonAttrs {
	a := ButtonAttrs{
		Align:           DefaultButtonAlign,
		BackgroundColor: DefaultButtonBackgroundColor,
		TextColor:       DefaultButtonTextColor,
		BorderColor:     DefaultButtonBorderColor,
		BorderRadius:    DefaultButtonBorderRadius,
		PaddingX:        DefaultButtonPaddingX,
		PaddingY:        DefaultButtonPaddingY,
		Variant:         DefaultButtonVariant,
		Width:           DefaultButtonWidth,
	}
	if n == nil || n.Attrs == nil {
		return a
	}
	a.Href = attrString(n.Attrs, "href", a.Href)
	a.Label = attrString(n.Attrs, "label", a.Label)
	a.Align = attrString(n.Attrs, "align", a.Align)
	a.BackgroundColor = attrString(n.Attrs, "backgroundColor", a.BackgroundColor)
	a.TextColor = attrString(n.Attrs, "textColor", a.TextColor)
	a.BorderColor = attrString(n.Attrs, "borderColor", a.BorderColor)
	a.BorderRadius = attrInt(n.Attrs, "borderRadius", a.BorderRadius)
	a.PaddingX = attrInt(n.Attrs, "paddingX", a.PaddingX)
	a.PaddingY = attrInt(n.Attrs, "paddingY", a.PaddingY)
	a.Shadow = attrBool(n.Attrs, "shadow", a.Shadow)
	a.Variant = attrString(n.Attrs, "variant", a.Variant)
	a.Width = attrString(n.Attrs, "width", a.Width)
	return a
}

// SectionAttrsOf resolves a node's attrs against the page-section defaults.
func SectionAttrsOf(n *Node) SectionAttrs {
	a := SectionAttrs{
		BackgroundColor: DefaultSectionBackgroundColor,
		TextColor:       DefaultSectionTextColor,
		PaddingX:        DefaultSectionPaddingX,
		PaddingY:        DefaultSectionPaddingY,
	}
	if n == nil || n.Attrs == nil {
		return a
	}
	a.BackgroundColor = attrString(n.Attrs, "backgroundColor", a.BackgroundColor)
	a.TextColor = attrString(n.Attrs, "textColor", a.TextColor)
	a.PaddingX = attrInt(n.Attrs, "paddingX", a.PaddingX)
	a.PaddingY = attrInt(n.Attrs, "paddingY", a.PaddingY)
	a.FullWidth = attrBool(n.Attrs, "fullWidth", a.FullWidth)
	a.BorderBottom = attrBool(n.Attrs, "borderBottom", a.BorderBottom)
	a.Label = attrString(n.Attrs, "label", a.Label)
	return a
}

// TwoColumnAttrsOf resolves a node's attrs against the two-column defaults.
func TwoColumnAttrsOf(n *Node) TwoColumnAttrs {
	a := TwoColumnAttrs{
		Layout:          DefaultTwoColumnLayout,
		BackgroundColor: DefaultTwoColumnBackgroundColor,
		Gap:             DefaultTwoColumnGap,
		PaddingX:        DefaultTwoColumnPaddingX,
		PaddingY:        DefaultTwoColumnPaddingY,
		VerticalAlign:   DefaultTwoColumnVerticalAlign,
	}
	if n == nil || n.Attrs == nil {
		return a
	}
	a.Layout = attrString(n.Attrs, "layout", a.Layout)
	a.BackgroundColor = attrString(n.Attrs, "backgroundColor", a.BackgroundColor)
	a.Gap = attrInt(n.Attrs, "gap", a.Gap)
	a.PaddingX = attrInt(n.Attrs, "paddingX", a.PaddingX)
	a.PaddingY = attrInt(n.Attrs, "paddingY", a.PaddingY)
	a.VerticalAlign = attrString(n.Attrs, "verticalAlign", a.VerticalAlign)
	return a
}

// HeadingLevel returns the heading level attribute clamped to 1..4.
func HeadingLevel(n *Node) int {
	level := 1
	if n != nil && n.Attrs != nil {
		level = attrInt(n.Attrs, "level", level)
	}
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}
	return level
}

func attrString(attrs map[string]any, key, fallback string) string {
	if v, ok := attrs[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

func attrInt(attrs map[string]any, key string, fallback int) int {
	if v, ok := attrs[key]; ok {
		switch t := v.(type) {
		case int:
			return t
		case int64:
			return int(t)
		case float64:
			return int(t)
		}
	}
	return fallback
}

func attrBool(attrs map[string]any, key string, fallback bool) bool {
	if v, ok := attrs[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}
