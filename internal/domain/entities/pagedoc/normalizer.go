package pagedoc

import "encoding/json"

// NormalizedPage is the canonical {doc, settings} pair every persisted value
// resolves to.
type NormalizedPage struct {
	Doc      *Node
	Settings Settings
}

// Normalize canonicalizes whatever shape a persisted page value arrives in.
// Accepted shapes, tried in order:
//
//  1. an object with a non-empty `doc` property — the wrapped editor format;
//     embedded `settings` merge over defaults, overrides merge over both
//  2. an object whose `type` is "doc" — a raw document
//  3. a string — parsed as JSON and re-dispatched through 1 and 2
//  4. anything else — the fallback document
//
// Normalize never fails: malformed input degrades to the fallback document
// rather than surfacing an error. The input is never mutated.
func Normalize(raw any, overrides *SettingsPatch) NormalizedPage {
	switch v := raw.(type) {
	case nil:
		return fallbackPage(overrides)

	case *Node:
		if v != nil && v.Type == TypeDoc {
			return NormalizedPage{
				Doc:      v.Clone(),
				Settings: MergeSettings(DefaultSettings(), overrides),
			}
		}
		return fallbackPage(overrides)

	case map[string]any:
		return normalizeObject(v, overrides)

	case string:
		return normalizeString(v, overrides)

	case []byte:
		return normalizeString(string(v), overrides)

	case NormalizedPage:
		// Already canonical; re-normalizing is idempotent.
		return Normalize(v.Doc, mergePatches(settingsAsPatch(v.Settings), overrides))

	default:
		return fallbackPage(overrides)
	}
}

func normalizeObject(v map[string]any, overrides *SettingsPatch) NormalizedPage {
	if docVal, ok := v["doc"]; ok && docVal != nil {
		if doc, ok := nodeFromAny(docVal); ok {
			embedded := patchFromAny(v["settings"])
			return NormalizedPage{
				Doc:      doc,
				Settings: MergeSettings(DefaultSettings(), embedded, overrides),
			}
		}
		return fallbackPage(overrides)
	}

	if t, ok := v["type"].(string); ok && t == TypeDoc {
		if doc, ok := nodeFromAny(v); ok {
			return NormalizedPage{
				Doc:      doc,
				Settings: MergeSettings(DefaultSettings(), overrides),
			}
		}
	}

	return fallbackPage(overrides)
}

func normalizeString(s string, overrides *SettingsPatch) NormalizedPage {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(s), &parsed); err != nil {
		return fallbackPage(overrides)
	}
	return normalizeObject(parsed, overrides)
}

func fallbackPage(overrides *SettingsPatch) NormalizedPage {
	return NormalizedPage{
		Doc:      FallbackDocument(),
		Settings: MergeSettings(DefaultSettings(), overrides),
	}
}

// patchFromAny decodes an embedded settings value into a partial patch.
// Unknown or malformed values contribute nothing.
func patchFromAny(v any) *SettingsPatch {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	var p SettingsPatch
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return &p
}

func settingsAsPatch(s Settings) *SettingsPatch {
	maxWidth, paddingX, paddingY, bg := s.MaxWidth, s.PaddingX, s.PaddingY, s.BackgroundColor
	return &SettingsPatch{
		MaxWidth:        &maxWidth,
		PaddingX:        &paddingX,
		PaddingY:        &paddingY,
		BackgroundColor: &bg,
	}
}

func mergePatches(a, b *SettingsPatch) *SettingsPatch {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := *a
	if b.MaxWidth != nil {
		out.MaxWidth = b.MaxWidth
	}
	if b.PaddingX != nil {
		out.PaddingX = b.PaddingX
	}
	if b.PaddingY != nil {
		out.PaddingY = b.PaddingY
	}
	if b.BackgroundColor != nil {
		out.BackgroundColor = b.BackgroundColor
	}
	return &out
}
