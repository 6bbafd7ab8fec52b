package pagedoc

// Editor commands. The admin editor manipulates documents exclusively through
// these helpers; all of them are pure transforms returning new trees so the
// render path can rely on documents never changing underneath it.

// InsertImage builds a resizableImage node. Attrs override the defaults
// field-by-field.
func InsertImage(attrs map[string]any) *Node {
	return &Node{Type: TypeImage, Attrs: withDefaults(attrs, map[string]any{
		"width": DefaultImageWidth,
		"align": DefaultImageAlign,
	})}
}

// InsertButton builds a customButton node.
func InsertButton(attrs map[string]any) *Node {
	return &Node{Type: TypeButton, Attrs: withDefaults(attrs, map[string]any{
		"align":           DefaultButtonAlign,
		"backgroundColor": DefaultButtonBackgroundColor,
		"textColor":       DefaultButtonTextColor,
		"borderColor":     DefaultButtonBorderColor,
		"borderRadius":    DefaultButtonBorderRadius,
		"paddingX":        DefaultButtonPaddingX,
		"paddingY":        DefaultButtonPaddingY,
		"shadow":          false,
		"variant":         DefaultButtonVariant,
		"width":           DefaultButtonWidth,
	})}
}

// InsertPageSection builds a pageSection pre-populated with an empty
// paragraph so the caret has somewhere to land.
func InsertPageSection(attrs map[string]any) *Node {
	return &Node{
		Type: TypePageSection,
		Attrs: withDefaults(attrs, map[string]any{
			"backgroundColor": DefaultSectionBackgroundColor,
			"textColor":       DefaultSectionTextColor,
			"paddingX":        DefaultSectionPaddingX,
			"paddingY":        DefaultSectionPaddingY,
			"fullWidth":       false,
			"borderBottom":    false,
			"label":           "",
		}),
		Content: []*Node{
			{Type: TypeParagraph, Content: []*Node{{Type: TypeText, Text: ""}}},
		},
	}
}

// InsertTwoColumn builds a twoColumnSection with its two slots seeded: an
// image placeholder in the media slot, a heading plus paragraph in the
// content slot.
func InsertTwoColumn(attrs map[string]any) *Node {
	return &Node{
		Type: TypeTwoColumn,
		Attrs: withDefaults(attrs, map[string]any{
			"layout":          DefaultTwoColumnLayout,
			"backgroundColor": DefaultTwoColumnBackgroundColor,
			"gap":             DefaultTwoColumnGap,
			"paddingX":        DefaultTwoColumnPaddingX,
			"paddingY":        DefaultTwoColumnPaddingY,
			"verticalAlign":   DefaultTwoColumnVerticalAlign,
		}),
		Content: []*Node{
			{
				Type:    TypeColumnMedia,
				Content: []*Node{InsertImage(nil)},
			},
			{
				Type: TypeColumnContent,
				Content: []*Node{
					{
						Type:    TypeHeading,
						Attrs:   map[string]any{"level": 2},
						Content: []*Node{{Type: TypeText, Text: ""}},
					},
					{Type: TypeParagraph, Content: []*Node{{Type: TypeText, Text: ""}}},
				},
			},
		},
	}
}

// UpdateAttrs returns a copy of the node with the given attributes patched
// in. Children are untouched.
func UpdateAttrs(n *Node, attrs map[string]any) *Node {
	if n == nil {
		return nil
	}
	out := n.Clone()
	if len(attrs) == 0 {
		return out
	}
	if out.Attrs == nil {
		out.Attrs = make(map[string]any, len(attrs))
	}
	for k, v := range attrs {
		out.Attrs[k] = v
	}
	return out
}

// FlattenTwoColumn converts the twoColumnSection at parent.Content[index]
// back to single-column flow: the media slot's children followed by the
// content slot's children are lifted into the parent at the section's
// position, and the section plus both slot wrappers disappear. Returns a new
// parent; if the target is not a twoColumnSection the parent is returned
// unchanged (as a copy).
func FlattenTwoColumn(parent *Node, index int) *Node {
	if parent == nil {
		return nil
	}
	out := parent.Clone()
	if index < 0 || index >= len(out.Content) {
		return out
	}
	section := out.Content[index]
	if section == nil || section.Type != TypeTwoColumn {
		return out
	}

	// Media-slot children lift first, content-slot children second, no matter
	// how the slots happen to be ordered in storage.
	var lifted []*Node
	for _, slot := range section.Content {
		if slot != nil && slot.Type == TypeColumnMedia {
			lifted = append(lifted, slot.Content...)
		}
	}
	for _, slot := range section.Content {
		if slot != nil && slot.Type == TypeColumnContent {
			lifted = append(lifted, slot.Content...)
		}
	}
	for _, slot := range section.Content {
		if slot != nil && slot.Type != TypeColumnMedia && slot.Type != TypeColumnContent {
			// Anything that is not a slot wrapper survives as-is.
			lifted = append(lifted, slot)
		}
	}

	replaced := make([]*Node, 0, len(out.Content)-1+len(lifted))
	replaced = append(replaced, out.Content[:index]...)
	replaced = append(replaced, lifted...)
	replaced = append(replaced, out.Content[index+1:]...)
	out.Content = replaced
	return out
}

func withDefaults(attrs, defaults map[string]any) map[string]any {
	out := make(map[string]any, len(defaults)+len(attrs))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
