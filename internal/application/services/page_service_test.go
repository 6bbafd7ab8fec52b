package services

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/caching/stores"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/logging"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/performance"
	persistence "github.com/StillwaterStudio/stillwater-go/internal/infrastructure/persistence/content"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *PageService {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := persistence.NewPageRepository(db)
	require.NoError(t, repo.EnsureSchema())

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToConsole: true,
		DefaultLevel:    slog.LevelError,
	})
	require.NoError(t, err)

	fragments := stores.NewFragmentStore(time.Minute, time.Minute, logger)
	tracker := performance.NewTracker(100)

	return NewPageService(repo, fragments, tracker, logger)
}

func savedPayload(t *testing.T, text string) string {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"doc": map[string]any{
			"type": "doc",
			"content": []any{
				map[string]any{
					"type":    "paragraph",
					"content": []any{map[string]any{"type": "text", "text": text}},
				},
			},
		},
	})
	require.NoError(t, err)
	return string(raw)
}

func TestGetFragmentMissingPage(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.GetFragment("nope")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGetFragmentCompilesStoredPage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SavePage("home", "Home", savedPayload(t, "welcome"))
	require.NoError(t, err)

	result, err := svc.GetFragment("home")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Contains(t, result.Markup, "welcome")
	assert.NotEmpty(t, result.StyleRules)
}

func TestGetFragmentServesCachedResult(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SavePage("home", "Home", savedPayload(t, "cached"))
	require.NoError(t, err)

	first, err := svc.GetFragment("home")
	require.NoError(t, err)
	second, err := svc.GetFragment("home")
	require.NoError(t, err)

	// Same pointer: the second call came from the fragment store.
	assert.Same(t, first, second)
}

func TestSavePageInvalidatesFragments(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SavePage("home", "Home", savedPayload(t, "before"))
	require.NoError(t, err)

	before, err := svc.GetFragment("home")
	require.NoError(t, err)
	assert.Contains(t, before.Markup, "before")

	_, err = svc.SavePage("home", "Home", savedPayload(t, "after"))
	require.NoError(t, err)

	after, err := svc.GetFragment("home")
	require.NoError(t, err)
	assert.Contains(t, after.Markup, "after")
	assert.NotContains(t, after.Markup, "before")
}

func TestGetFragmentGarbagePayloadFallsBack(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SavePage("broken", "Broken", "{not json at all")
	require.NoError(t, err)

	result, err := svc.GetFragment("broken")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Contains(t, result.Markup, "<p>")
}

func TestPreviewFragmentDoesNotPersist(t *testing.T) {
	svc := newTestService(t)

	doc := map[string]any{
		"type": "doc",
		"content": []any{
			map[string]any{
				"type":    "paragraph",
				"content": []any{map[string]any{"type": "text", "text": "draft"}},
			},
		},
	}
	width := 720
	result := svc.PreviewFragment(doc, &pagedoc.SettingsPatch{MaxWidth: &width})

	require.NotNil(t, result)
	assert.Contains(t, result.Markup, "draft")
	assert.Equal(t, 720, result.MaxWidth)

	pages, err := svc.ListPages()
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestNewDefaultPageSeedsSection(t *testing.T) {
	svc := newTestService(t)

	page, err := svc.NewDefaultPage("fresh", "Fresh")
	require.NoError(t, err)
	require.NotEmpty(t, page.ID)

	result, err := svc.GetFragment("fresh")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Contains(t, result.Markup, `class="sw-section"`)
}
