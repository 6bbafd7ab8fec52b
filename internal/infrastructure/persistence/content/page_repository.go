// Package content provides the pages repository.
package content

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/content"
	"github.com/oklog/ulid/v2"
)

// PageRepository persists landing pages as opaque payloads. CRUD semantics
// stay deliberately thin: the store never inspects the document inside
// Payload.
type PageRepository struct {
	db *sql.DB
}

// NewPageRepository creates a new page repository.
func NewPageRepository(db *sql.DB) *PageRepository {
	return &PageRepository{db: db}
}

// EnsureSchema creates the pages table when missing.
func (r *PageRepository) EnsureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS pages (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL DEFAULT '',
			payload TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to create pages table: %w", err)
	}
	return nil
}

// FindBySlug loads a page by slug. Returns (nil, nil) when absent.
func (r *PageRepository) FindBySlug(slug string) (*content.Page, error) {
	return r.scanOne(`SELECT id, slug, title, payload, updated_at FROM pages WHERE slug = ?`, slug)
}

// FindByID loads a page by ID. Returns (nil, nil) when absent.
func (r *PageRepository) FindByID(id string) (*content.Page, error) {
	return r.scanOne(`SELECT id, slug, title, payload, updated_at FROM pages WHERE id = ?`, id)
}

// FindAll returns summaries of every page, newest first.
func (r *PageRepository) FindAll() ([]*content.PageSummary, error) {
	rows, err := r.db.Query(`SELECT id, slug, title, updated_at FROM pages ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	var pages []*content.PageSummary
	for rows.Next() {
		var p content.PageSummary
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan page row: %w", err)
		}
		pages = append(pages, &p)
	}
	return pages, rows.Err()
}

// Save upserts a page keyed on slug. A page without an ID is minted one.
func (r *PageRepository) Save(page *content.Page) error {
	if page.ID == "" {
		page.ID = NewID()
	}
	page.UpdatedAt = time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO pages (id, slug, title, payload, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			title = excluded.title,
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		page.ID, page.Slug, page.Title, page.Payload, page.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save page %s: %w", page.Slug, err)
	}
	return nil
}

func (r *PageRepository) scanOne(query string, arg string) (*content.Page, error) {
	var p content.Page
	err := r.db.QueryRow(query, arg).Scan(&p.ID, &p.Slug, &p.Title, &p.Payload, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load page: %w", err)
	}
	return &p, nil
}

// Delete removes a page by slug.
func (r *PageRepository) Delete(slug string) error {
	_, err := r.db.Exec(`DELETE FROM pages WHERE slug = ?`, slug)
	if err != nil {
		return fmt.Errorf("failed to delete page %s: %w", slug, err)
	}
	return nil
}

// NewID mints a ULID for page identity.
func NewID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
