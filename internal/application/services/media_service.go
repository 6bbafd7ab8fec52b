package services

import (
	"fmt"
	"regexp"

	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/media"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/logging"
)

var safeNamePattern = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// MediaService handles editor image uploads for page documents.
type MediaService struct {
	processor *media.ImageProcessor
	logger    *logging.ChanneledLogger
}

// NewMediaService creates a new media service.
func NewMediaService(processor *media.ImageProcessor, logger *logging.ChanneledLogger) *MediaService {
	return &MediaService{processor: processor, logger: logger}
}

// Upload stores a base64 data-URI image and returns its variant set. The name
// is sanitized to a filesystem-safe slug before use.
func (s *MediaService) Upload(data, name string) (*media.ImageVariantSet, error) {
	if name == "" {
		return nil, fmt.Errorf("missing image name")
	}
	safe := safeNamePattern.ReplaceAllString(name, "-")

	set, err := s.processor.ProcessUpload(data, safe)
	if err != nil {
		s.logger.LogError(logging.ChannelMedia, "media_upload", err)
		return nil, err
	}
	return set, nil
}

// Remove deletes a stored image and its variants.
func (s *MediaService) Remove(originalURL string) error {
	return s.processor.Delete(originalURL)
}
