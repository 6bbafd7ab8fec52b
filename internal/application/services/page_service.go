package services

import (
	"encoding/json"
	"fmt"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/content"
	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/caching/stores"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/logging"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/performance"
	persistence "github.com/StillwaterStudio/stillwater-go/internal/infrastructure/persistence/content"
	"github.com/StillwaterStudio/stillwater-go/internal/presentation/templates"
	"github.com/StillwaterStudio/stillwater-go/pkg/config"
)

// PageService orchestrates page loading, normalization, and fragment
// generation with caching.
type PageService struct {
	repo      *persistence.PageRepository
	fragments *stores.FragmentStore
	tracker   *performance.Tracker
	logger    *logging.ChanneledLogger
	theme     pagedoc.Theme
}

// NewPageService creates a new page service. The theme comes from site
// configuration and applies to every page.
func NewPageService(
	repo *persistence.PageRepository,
	fragments *stores.FragmentStore,
	tracker *performance.Tracker,
	logger *logging.ChanneledLogger,
) *PageService {
	return &PageService{
		repo:      repo,
		fragments: fragments,
		tracker:   tracker,
		logger:    logger,
		theme: pagedoc.Theme{
			Primary:    config.ThemePrimary,
			Secondary:  config.ThemeSecondary,
			Accent:     config.ThemeAccent,
			Background: config.ThemeBackground,
		},
	}
}

// Theme returns the site theme applied to every fragment.
func (s *PageService) Theme() pagedoc.Theme {
	return s.theme
}

// GetFragment compiles the stored page for a slug into a render result,
// serving from the fragment cache when the inputs are unchanged. A missing
// page returns (nil, nil).
func (s *PageService) GetFragment(slug string) (*templates.RenderResult, error) {
	marker := s.tracker.StartOperation("page_fragment")

	page, err := s.repo.FindBySlug(slug)
	if err != nil {
		marker.Complete(false)
		return nil, fmt.Errorf("failed to load page %s: %w", slug, err)
	}
	if page == nil {
		marker.Complete(true)
		return nil, nil
	}

	normalized := pagedoc.Normalize(page.Payload, nil)

	key := stores.FragmentKey(slug, normalized.Doc, s.theme, normalized.Settings)
	if cached, found := s.fragments.Get(key); found {
		marker.Complete(true)
		return cached, nil
	}

	result := templates.Render(normalized.Doc, s.theme, normalized.Settings)
	s.fragments.Set(slug, key, &result)

	marker.Complete(true)
	if marker.Duration >= performance.SlowRenderThreshold {
		s.logger.Render().Warn("Slow fragment render", "slug", slug, "duration", marker.Duration)
	}
	return &result, nil
}

// PreviewFragment compiles an unsaved document value without touching the
// store or the cache. Overrides merge over the document's embedded settings.
func (s *PageService) PreviewFragment(raw any, overrides *pagedoc.SettingsPatch) *templates.RenderResult {
	marker := s.tracker.StartOperation("preview_fragment")
	normalized := pagedoc.Normalize(raw, overrides)
	result := templates.Render(normalized.Doc, s.theme, normalized.Settings)
	marker.Complete(true)
	return &result
}

// GetPage loads the raw stored page for the editor. Returns (nil, nil) when
// absent.
func (s *PageService) GetPage(slug string) (*content.Page, error) {
	return s.repo.FindBySlug(slug)
}

// ListPages returns summaries of every stored page.
func (s *PageService) ListPages() ([]*content.PageSummary, error) {
	return s.repo.FindAll()
}

// SavePage upserts a page payload and invalidates its cached fragments.
func (s *PageService) SavePage(slug, title, payload string) (*content.Page, error) {
	page, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %s: %w", slug, err)
	}
	if page == nil {
		page = &content.Page{Slug: slug}
	}
	page.Title = title
	page.Payload = payload

	if err := s.repo.Save(page); err != nil {
		return nil, err
	}

	s.fragments.Invalidate(slug)
	s.logger.Content().Info("Saved page", "slug", slug, "id", page.ID)
	return page, nil
}

// DeletePage removes a page and its cached fragments.
func (s *PageService) DeletePage(slug string) error {
	if err := s.repo.Delete(slug); err != nil {
		return err
	}
	s.fragments.Invalidate(slug)
	s.logger.Content().Info("Deleted page", "slug", slug)
	return nil
}

// NewDefaultPage creates and stores a page seeded with a starter document.
func (s *PageService) NewDefaultPage(slug, title string) (*content.Page, error) {
	doc := &pagedoc.Node{
		Type:    pagedoc.TypeDoc,
		Content: []*pagedoc.Node{pagedoc.InsertPageSection(nil)},
	}
	wrapped := map[string]any{
		"doc":      doc,
		"settings": pagedoc.DefaultSettings(),
	}
	payload, err := json.Marshal(wrapped)
	if err != nil {
		return nil, fmt.Errorf("failed to encode starter document: %w", err)
	}
	return s.SavePage(slug, title, string(payload))
}
