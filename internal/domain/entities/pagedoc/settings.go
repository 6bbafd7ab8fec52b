package pagedoc

// Page-level layout defaults. DefaultBackgroundColor doubles as the sentinel
// for background resolution: a settings background equal to this literal is
// treated as "unset" and yields to the theme background. A merchant who
// deliberately sets a page back to white therefore silently falls through to
// the theme — that behavior is preserved for compatibility with existing
// stored pages, warts and all.
const (
	DefaultMaxWidth        = 1280
	DefaultPaddingX        = 16
	DefaultPaddingY        = 32
	DefaultBackgroundColor = "#FFFFFF"
)

// Settings describes page-level layout independent of content.
type Settings struct {
	MaxWidth        int    `json:"maxWidth"`
	PaddingX        int    `json:"paddingX"`
	PaddingY        int    `json:"paddingY"`
	BackgroundColor string `json:"backgroundColor"`
}

// SettingsPatch is a partial settings record. Nil fields are "not provided"
// and leave the underlying value untouched; merging is always field-by-field,
// never whole-record replacement.
type SettingsPatch struct {
	MaxWidth        *int    `json:"maxWidth,omitempty"`
	PaddingX        *int    `json:"paddingX,omitempty"`
	PaddingY        *int    `json:"paddingY,omitempty"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
}

// Theme is the four-color palette applied to a rendered page. It is supplied
// by the caller per page and never defaulted here: theme completeness is the
// caller's contract.
type Theme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

// DefaultSettings returns the module-level layout defaults.
func DefaultSettings() Settings {
	return Settings{
		MaxWidth:        DefaultMaxWidth,
		PaddingX:        DefaultPaddingX,
		PaddingY:        DefaultPaddingY,
		BackgroundColor: DefaultBackgroundColor,
	}
}

// MergeSettings applies patches to base in order; later patches win
// field-by-field.
func MergeSettings(base Settings, patches ...*SettingsPatch) Settings {
	out := base
	for _, p := range patches {
		if p == nil {
			continue
		}
		if p.MaxWidth != nil {
			out.MaxWidth = *p.MaxWidth
		}
		if p.PaddingX != nil {
			out.PaddingX = *p.PaddingX
		}
		if p.PaddingY != nil {
			out.PaddingY = *p.PaddingY
		}
		if p.BackgroundColor != nil {
			out.BackgroundColor = *p.BackgroundColor
		}
	}
	return out
}

// ResolveBackground picks the page background: an explicit settings override
// wins only when it differs from the default sentinel, otherwise the theme
// background applies.
func ResolveBackground(settings Settings, theme Theme) string {
	if settings.BackgroundColor != "" && settings.BackgroundColor != DefaultBackgroundColor {
		return settings.BackgroundColor
	}
	return theme.Background
}
