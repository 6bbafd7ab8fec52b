// Package performance provides lightweight operation timing for Stillwater
// request handling.
package performance

import (
	"strconv"
	"sync"
	"time"
)

// Marker times a single operation from start to completion.
type Marker struct {
	ID        string        `json:"id"`
	Operation string        `json:"operation"`
	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"duration"`
	Success   bool          `json:"success"`
}

// Complete finalizes the marker.
func (m *Marker) Complete(success bool) {
	m.Duration = time.Since(m.StartTime)
	m.Success = success
}

// SetSuccess records the outcome without recomputing duration.
func (m *Marker) SetSuccess(success bool) {
	if m.Duration == 0 {
		m.Duration = time.Since(m.StartTime)
	}
	m.Success = success
}

// Thresholds over which operations count as slow.
const (
	SlowRenderThreshold   = 100 * time.Millisecond
	SlowDatabaseThreshold = 50 * time.Millisecond
)

// Tracker accumulates operation markers with bounded retention.
type Tracker struct {
	mu         sync.Mutex
	markers    []*Marker
	maxMarkers int
	nextID     int
	started    time.Time
}

// NewTracker creates a tracker retaining at most maxMarkers completed
// markers; older entries fall off the front.
func NewTracker(maxMarkers int) *Tracker {
	if maxMarkers <= 0 {
		maxMarkers = 1000
	}
	return &Tracker{
		maxMarkers: maxMarkers,
		started:    time.Now(),
	}
}

// StartOperation begins timing an operation and returns its marker.
func (t *Tracker) StartOperation(operation string) *Marker {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	m := &Marker{
		ID:        operation + "-" + strconv.Itoa(t.nextID),
		Operation: operation,
		StartTime: time.Now(),
	}

	t.markers = append(t.markers, m)
	if len(t.markers) > t.maxMarkers {
		t.markers = t.markers[len(t.markers)-t.maxMarkers:]
	}
	return m
}

// SlowOperations returns completed markers exceeding the given threshold.
func (t *Tracker) SlowOperations(threshold time.Duration) []*Marker {
	t.mu.Lock()
	defer t.mu.Unlock()

	var slow []*Marker
	for _, m := range t.markers {
		if m.Duration >= threshold {
			slow = append(slow, m)
		}
	}
	return slow
}

// Stats summarizes tracked operations.
func (t *Tracker) Stats() map[string]any {
	t.mu.Lock()
	defer t.mu.Unlock()

	byOp := make(map[string]int)
	for _, m := range t.markers {
		byOp[m.Operation]++
	}
	return map[string]any{
		"uptime":     time.Since(t.started).String(),
		"tracked":    len(t.markers),
		"operations": byOp,
	}
}
