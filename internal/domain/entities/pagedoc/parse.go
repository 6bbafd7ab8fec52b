package pagedoc

import "strings"

// Parse rules for the custom node types. Each declares the markup selector
// that identifies when externally-authored markup (pasted or legacy content)
// should be recognized as that node. The selectors key on the identifying
// class each render rule emits, so recognition round-trips against the
// renderer's own output. The steady-state render path never consults these;
// they exist for the editor's paste and import handling.
var parseSelectors = map[string]string{
	TypeImage:         "img.sw-image",
	TypeButton:        "div.sw-button",
	TypePageSection:   "section.sw-section",
	TypeTwoColumn:     "div.sw-columns",
	TypeColumnMedia:   "div.sw-column-media",
	TypeColumnContent: "div.sw-column-content",
}

// ParseSelector returns the markup selector for a custom node type. Standard
// nodes follow conventional tag parsing and have no selector; for those (and
// unknown types) the empty string is returned.
func ParseSelector(nodeType string) string {
	return parseSelectors[nodeType]
}

// RecognizeMarkup returns the custom node type whose parse rule matches an
// element with the given tag and class list, or the empty string when none
// matches.
func RecognizeMarkup(tag string, classes []string) string {
	for nodeType, selector := range parseSelectors {
		wantTag, wantClass, ok := strings.Cut(selector, ".")
		if !ok || wantTag != tag {
			continue
		}
		for _, class := range classes {
			if class == wantClass {
				return nodeType
			}
		}
	}
	return ""
}
