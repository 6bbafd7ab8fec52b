package handlers

import (
	"net/http"

	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
)

// SystemHandlers exposes health and performance endpoints
type SystemHandlers struct {
	tracker *performance.Tracker
}

// NewSystemHandlers creates system handlers.
func NewSystemHandlers(tracker *performance.Tracker) *SystemHandlers {
	return &SystemHandlers{tracker: tracker}
}

// Health reports liveness
func (h *SystemHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// PerfStats reports tracked operation stats and slow renders
func (h *SystemHandlers) PerfStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stats":       h.tracker.Stats(),
		"slowRenders": h.tracker.SlowOperations(performance.SlowRenderThreshold),
	})
}
