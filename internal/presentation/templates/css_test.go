package templates

import (
	"strings"
	"testing"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
	"github.com/stretchr/testify/assert"
)

func TestGenerateStylesheetScopesEveryRule(t *testing.T) {
	css := GenerateStylesheet(testTheme, pagedoc.DefaultSettings())

	for _, line := range strings.Split(css, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "@media") || line == "}" {
			continue
		}
		assert.True(t, strings.HasPrefix(line, "."+RootClassName),
			"unscoped rule: %s", line)
	}
}

func TestGenerateStylesheetThemeColors(t *testing.T) {
	css := GenerateStylesheet(testTheme, pagedoc.DefaultSettings())

	assert.Contains(t, css, ".sw-page h1,.sw-page h2,.sw-page h3,.sw-page h4{color:#0F766E;}")
	assert.Contains(t, css, ".sw-page a{color:#0F766E;}")
	assert.Contains(t, css, ".sw-page a:hover{color:#115E59;}")
	assert.Contains(t, css, "border-left:4px solid #D97706;")
	assert.Contains(t, css, "border-top:1px solid #D9770633;")
	assert.Contains(t, css, "background-color:#0F766E0F;")
}

func TestGenerateStylesheetSectionInheritance(t *testing.T) {
	css := GenerateStylesheet(testTheme, pagedoc.DefaultSettings())
	assert.Contains(t, css, ".sw-page .sw-section h1")
	assert.Contains(t, css, "color:inherit;")
}

func TestGenerateStylesheetNarrowViewport(t *testing.T) {
	s := pagedoc.DefaultSettings()
	s.PaddingX = 12
	s.PaddingY = 20
	css := GenerateStylesheet(testTheme, s)

	assert.Contains(t, css, "@media (max-width:768px){")
	assert.Contains(t, css, ".sw-page .sw-columns{flex-direction:column !important;}")
	assert.Contains(t, css, "padding:20px 12px !important;")
}

func TestGenerateStylesheetDeterministic(t *testing.T) {
	a := GenerateStylesheet(testTheme, pagedoc.DefaultSettings())
	b := GenerateStylesheet(testTheme, pagedoc.DefaultSettings())
	assert.Equal(t, a, b)
}
