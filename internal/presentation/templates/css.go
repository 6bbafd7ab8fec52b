// Package templates — stylesheet generation from theme and settings.
package templates

import (
	"fmt"
	"strings"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
)

// NarrowViewportBreakpoint is the fixed width under which two-column sections
// collapse to a single stacked column and container paddings compress to the
// settings values.
const NarrowViewportBreakpoint = 768

// Hex alpha suffixes for the derived rule colors. They compose with hex theme
// colors; a merchant theme using named colors keeps full opacity instead.
const (
	alpha20 = "33" // horizontal rule at 20% of accent
	alpha6  = "0F" // inline code background at 6% of primary
)

// GenerateStylesheet derives the scoped style rules for a page from its theme
// and settings. Every selector is prefixed with the root class so the rules
// cannot leak outside the rendered article. The output is deterministic:
// rules are emitted in a fixed order.
func GenerateStylesheet(theme pagedoc.Theme, settings pagedoc.Settings) string {
	var css strings.Builder
	root := "." + RootClassName

	rule := func(selector, body string) {
		css.WriteString(selector)
		css.WriteString("{")
		css.WriteString(body)
		css.WriteString("}\n")
	}

	// Headings take the theme primary; inside a page section the section's
	// own text color wins and propagates to descendant copy.
	rule(fmt.Sprintf("%s h1,%s h2,%s h3,%s h4", root, root, root, root),
		fmt.Sprintf("color:%s;", theme.Primary))
	rule(fmt.Sprintf("%s .sw-section h1,%s .sw-section h2,%s .sw-section h3,%s .sw-section h4,%s .sw-section p,%s .sw-section ul,%s .sw-section ol,%s .sw-section blockquote",
		root, root, root, root, root, root, root, root),
		"color:inherit;")

	rule(fmt.Sprintf("%s a", root), fmt.Sprintf("color:%s;", theme.Primary))
	rule(fmt.Sprintf("%s a:hover", root), fmt.Sprintf("color:%s;", theme.Secondary))

	rule(fmt.Sprintf("%s blockquote", root),
		fmt.Sprintf("border-left:4px solid %s;margin:16px 0;padding-left:16px;", theme.Accent))
	rule(fmt.Sprintf("%s hr", root),
		fmt.Sprintf("border:none;border-top:1px solid %s%s;", theme.Accent, alpha20))
	rule(fmt.Sprintf("%s code", root),
		fmt.Sprintf("background-color:%s%s;border-radius:4px;padding:2px 6px;", theme.Primary, alpha6))
	rule(fmt.Sprintf("%s pre code", root),
		"display:block;padding:16px;overflow-x:auto;")

	rule(fmt.Sprintf("%s .sw-video iframe", root),
		"width:100%;aspect-ratio:16/9;border:0;")

	// Narrow-viewport collapse: two-column sections stack, slots go full
	// width, and container paddings compress to the settings values.
	css.WriteString(fmt.Sprintf("@media (max-width:%dpx){\n", NarrowViewportBreakpoint))
	rule(fmt.Sprintf("%s .sw-columns", root), "flex-direction:column !important;")
	rule(fmt.Sprintf("%s .sw-columns > div", root), "width:100%;flex:none;")
	rule(fmt.Sprintf("%s .sw-section,%s .sw-columns", root, root),
		fmt.Sprintf("padding:%dpx %dpx !important;", settings.PaddingY, settings.PaddingX))
	css.WriteString("}\n")

	return css.String()
}
