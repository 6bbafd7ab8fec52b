// Package handlers provides HTTP handlers for page endpoints
package handlers

import (
	"net/http"
	"time"

	"github.com/StillwaterStudio/stillwater-go/internal/application/services"
	"github.com/StillwaterStudio/stillwater-go/internal/domain/entities/pagedoc"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// SavePageRequest represents the request body for saving a page
type SavePageRequest struct {
	Title   string `json:"title"`
	Payload string `json:"payload" binding:"required"`
}

// PreviewRequest represents the request body for an unsaved preview render
type PreviewRequest struct {
	Doc      any                    `json:"doc" binding:"required"`
	Settings *pagedoc.SettingsPatch `json:"settings"`
}

// PageHandlers contains all page-related HTTP handlers
type PageHandlers struct {
	pageService *services.PageService
	logger      *logging.ChanneledLogger
}

// NewPageHandlers creates page handlers with injected dependencies
func NewPageHandlers(pageService *services.PageService, logger *logging.ChanneledLogger) *PageHandlers {
	return &PageHandlers{
		pageService: pageService,
		logger:      logger,
	}
}

// ListPages returns summaries of every stored page
func (h *PageHandlers) ListPages(c *gin.Context) {
	pages, err := h.pageService.ListPages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pages": pages,
		"count": len(pages),
	})
}

// GetPage returns the raw stored page for the editor
func (h *PageHandlers) GetPage(c *gin.Context) {
	slug := c.Param("slug")

	page, err := h.pageService.GetPage(slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetFragment returns the compiled fragment for a stored page
func (h *PageHandlers) GetFragment(c *gin.Context) {
	start := time.Now()
	slug := c.Param("slug")
	h.logger.Content().Debug("Received fragment request", "method", c.Request.Method, "path", c.Request.URL.Path, "slug", slug)

	result, err := h.pageService.GetFragment(slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	h.logger.Content().Info("Fragment request completed", "slug", slug, "duration", time.Since(start))
	c.JSON(http.StatusOK, result)
}

// PreviewFragment compiles an unsaved document without persisting it
func (h *PageHandlers) PreviewFragment(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result := h.pageService.PreviewFragment(req.Doc, req.Settings)
	c.JSON(http.StatusOK, result)
}

// SavePage upserts a page payload
func (h *PageHandlers) SavePage(c *gin.Context) {
	slug := c.Param("slug")

	var req SavePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	page, err := h.pageService.SavePage(slug, req.Title, req.Payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// DeletePage removes a page
func (h *PageHandlers) DeletePage(c *gin.Context) {
	slug := c.Param("slug")

	if err := h.pageService.DeletePage(slug); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": slug})
}
