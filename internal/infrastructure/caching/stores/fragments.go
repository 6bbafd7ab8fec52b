// Package stores provides concrete cache store implementations
package stores

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/logging"
	"github.com/StillwaterStudio/stillwater-go/internal/presentation/templates"
	gocache "github.com/patrickmn/go-cache"
)

// FragmentStore memoizes compiled page fragments. Entries are keyed by slug
// plus a digest of the inputs, so a stale fragment can never be served for a
// changed document; Invalidate drops every entry for a slug on save.
type FragmentStore struct {
	cache  *gocache.Cache
	keys   *gocache.Cache
	logger *logging.ChanneledLogger
}

// NewFragmentStore creates a fragment store with the given TTL and cleanup
// interval.
func NewFragmentStore(ttl, cleanup time.Duration, logger *logging.ChanneledLogger) *FragmentStore {
	return &FragmentStore{
		cache:  gocache.New(ttl, cleanup),
		keys:   gocache.New(ttl, cleanup),
		logger: logger,
	}
}

// FragmentKey derives a cache key from the slug and a digest of the document,
// theme, and settings that produced the fragment.
func FragmentKey(slug string, doc *pagedoc.Node, theme pagedoc.Theme, settings pagedoc.Settings) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(doc)
	_ = enc.Encode(theme)
	_ = enc.Encode(settings)
	return slug + ":" + hex.EncodeToString(h.Sum(nil)[:12])
}

// Get retrieves a cached render result.
func (fs *FragmentStore) Get(key string) (*templates.RenderResult, bool) {
	start := time.Now()
	v, found := fs.cache.Get(key)
	if fs.logger != nil {
		fs.logger.LogCacheOperation("fragment_get", key, found, time.Since(start))
	}
	if !found {
		return nil, false
	}
	result, ok := v.(*templates.RenderResult)
	return result, ok
}

// Set stores a render result and records the key against its slug for
// invalidation.
func (fs *FragmentStore) Set(slug, key string, result *templates.RenderResult) {
	fs.cache.SetDefault(key, result)

	var slugKeys []string
	if v, found := fs.keys.Get(slug); found {
		slugKeys, _ = v.([]string)
	}
	for _, existing := range slugKeys {
		if existing == key {
			return
		}
	}
	fs.keys.SetDefault(slug, append(slugKeys, key))
}

// Invalidate drops every cached fragment for a slug.
func (fs *FragmentStore) Invalidate(slug string) {
	v, found := fs.keys.Get(slug)
	if !found {
		return
	}
	slugKeys, _ := v.([]string)
	for _, key := range slugKeys {
		fs.cache.Delete(key)
	}
	fs.keys.Delete(slug)

	if fs.logger != nil {
		fs.logger.Cache().Debug("Invalidated fragments", "slug", slug, "count", len(slugKeys))
	}
}

// Flush drops every cached fragment.
func (fs *FragmentStore) Flush() {
	fs.cache.Flush()
	fs.keys.Flush()
}

// ItemCount reports the number of live fragment entries.
func (fs *FragmentStore) ItemCount() int {
	return fs.cache.ItemCount()
}
