package templates

import (
	"fmt"
	"sync"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
)

// RenderPhase is the two-state display contract: a view starts as a
// placeholder shell and transitions to rendered exactly once, when the host
// signals it is safe to inject compiled markup.
type RenderPhase int

const (
	PhasePlaceholder RenderPhase = iota
	PhaseRendered
)

func (p RenderPhase) String() string {
	if p == PhaseRendered {
		return "rendered"
	}
	return "placeholder"
}

// placeholderMarkup is shown until the readiness signal arrives.
const placeholderMarkup = `<p>Loading…</p>`

// PageView models one page view's render lifecycle. Phase 1 serves a static
// placeholder with correct container sizing so the shell never shifts; phase
// 2 compiles the document. The transition is one-shot with no timeout and no
// cancellation, matching the host's single readiness signal per view.
type PageView struct {
	doc      *pagedoc.Node
	theme    pagedoc.Theme
	settings pagedoc.Settings

	once   sync.Once
	mu     sync.RWMutex
	phase  RenderPhase
	result RenderResult
}

// NewPageView creates a view in the placeholder phase.
func NewPageView(doc *pagedoc.Node, theme pagedoc.Theme, settings pagedoc.Settings) *PageView {
	return &PageView{doc: doc, theme: theme, settings: settings}
}

// Phase reports the view's current phase.
func (v *PageView) Phase() RenderPhase {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.phase
}

// Placeholder returns the phase-1 shell: the loading paragraph with the
// page's real style rules and sizing, so the eventual swap changes content
// only.
func (v *PageView) Placeholder() RenderResult {
	return RenderResult{
		Markup:     placeholderMarkup,
		StyleRules: GenerateStylesheet(v.theme, v.settings),
		MaxWidth:   v.settings.MaxWidth,
		Padding:    fmt.Sprintf("%dpx %dpx", v.settings.PaddingY, v.settings.PaddingX),
		Background: pagedoc.ResolveBackground(v.settings, v.theme),
	}
}

// Ready performs the one-shot transition to the rendered phase and returns
// the compiled result. Subsequent calls return the same result without
// recompiling.
func (v *PageView) Ready() RenderResult {
	v.once.Do(func() {
		result := Render(v.doc, v.theme, v.settings)
		v.mu.Lock()
		v.phase = PhaseRendered
		v.result = result
		v.mu.Unlock()
	})
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.result
}
