// Package content provides domain entities for stored merchant content.
package content

import "time"

// Page is a stored landing page. Payload is the opaque persisted document
// value exactly as the editor saved it; its shape is only ever interpreted by
// the normalizer, never by the store.
type Page struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Payload   string    `json:"payload"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PageSummary is the content-map view of a page for the admin panel.
type PageSummary struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updatedAt"`
}
