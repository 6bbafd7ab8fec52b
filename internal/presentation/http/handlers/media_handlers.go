package handlers

import (
	"net/http"

	"github.com/StillwaterStudio/stillwater-go/internal/application/services"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
)

// UploadImageRequest represents the request body for an editor image upload
type UploadImageRequest struct {
	Data string `json:"data" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// DeleteImageRequest represents the request body for removing an image
type DeleteImageRequest struct {
	Path string `json:"path" binding:"required"`
}

// MediaHandlers contains media upload HTTP handlers
type MediaHandlers struct {
	mediaService *services.MediaService
	logger       *logging.ChanneledLogger
}

// NewMediaHandlers creates media handlers with injected dependencies
func NewMediaHandlers(mediaService *services.MediaService, logger *logging.ChanneledLogger) *MediaHandlers {
	return &MediaHandlers{
		mediaService: mediaService,
		logger:       logger,
	}
}

// UploadImage stores a base64 image upload and returns its variant set
func (h *MediaHandlers) UploadImage(c *gin.Context) {
	var req UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	set, err := h.mediaService.Upload(req.Data, req.Name)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, set)
}

// DeleteImage removes a stored image and its variants
func (h *MediaHandlers) DeleteImage(c *gin.Context) {
	var req DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.mediaService.Remove(req.Path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": req.Path})
}
