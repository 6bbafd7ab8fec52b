// Package media provides image processing for editor uploads.
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/logging"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Widths of the WebP variants generated for each upload. 1280 matches the
// default page max width; the smaller sizes cover tablet and phone viewports.
var variantWidths = []int{1280, 768, 480}

// ImageVariantSet describes a processed upload: the stored original plus the
// WebP variants and a ready-to-use srcset value.
type ImageVariantSet struct {
	Original string   `json:"original"`
	Variants []string `json:"variants"`
	SrcSet   string   `json:"srcSet"`
}

// ImageProcessor saves editor image uploads under a media directory and
// generates responsive WebP variants for them.
type ImageProcessor struct {
	basePath string
	logger   *logging.ChanneledLogger
}

// NewImageProcessor creates an ImageProcessor rooted at basePath.
func NewImageProcessor(basePath string, logger *logging.ChanneledLogger) *ImageProcessor {
	return &ImageProcessor{basePath: basePath, logger: logger}
}

// ProcessUpload stores a base64 data-URI upload and generates its WebP
// variants. SVG uploads are stored verbatim with no variants. The returned
// paths are URL paths under /media.
func (p *ImageProcessor) ProcessUpload(data, name string) (*ImageVariantSet, error) {
	if data == "" {
		return nil, fmt.Errorf("empty base64 data")
	}

	ext := extractExtension(data)
	if ext == "" {
		return nil, fmt.Errorf("unsupported image format")
	}

	timestamp := time.Now().UnixMilli()
	filename := fmt.Sprintf("%s-%d.%s", name, timestamp, ext)

	imagesDir := filepath.Join(p.basePath, "images")
	variantsDir := filepath.Join(p.basePath, "images", "variants")
	if err := os.MkdirAll(variantsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directories: %w", err)
	}

	if strings.Contains(data, "image/svg+xml") {
		if _, err := writeSVG(data, filename, imagesDir); err != nil {
			return nil, err
		}
		return &ImageVariantSet{Original: mediaURL("images", filename)}, nil
	}

	originalPath, err := writeBinaryImage(data, filename, imagesDir)
	if err != nil {
		return nil, err
	}

	variants, err := p.generateVariants(originalPath, name, timestamp, variantsDir)
	if err != nil {
		os.Remove(originalPath)
		return nil, fmt.Errorf("failed to generate variants: %w", err)
	}

	set := &ImageVariantSet{Original: mediaURL("images", filename)}
	var srcset []string
	for i, variantPath := range variants {
		url := mediaURL("images/variants", filepath.Base(variantPath))
		set.Variants = append(set.Variants, url)
		srcset = append(srcset, fmt.Sprintf("%s %dw", url, variantWidths[i]))
	}
	set.SrcSet = strings.Join(srcset, ", ")

	if p.logger != nil {
		p.logger.Media().Info("Processed image upload", "name", name, "variants", len(variants))
	}
	return set, nil
}

// Delete removes a stored original and every variant generated from it.
func (p *ImageProcessor) Delete(originalURL string) error {
	if originalURL == "" {
		return fmt.Errorf("empty image path")
	}

	filename := filepath.Base(originalURL)
	basename := strings.TrimSuffix(filename, filepath.Ext(filename))

	originalPath := filepath.Join(p.basePath, strings.TrimPrefix(originalURL, "/media/"))
	if err := os.Remove(originalPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove original image: %w", err)
	}

	variantsDir := filepath.Join(p.basePath, "images", "variants")
	for _, width := range variantWidths {
		variantPath := filepath.Join(variantsDir, fmt.Sprintf("%s_%dw.webp", basename, width))
		if err := os.Remove(variantPath); err != nil && !os.IsNotExist(err) && p.logger != nil {
			p.logger.Media().Warn("Failed to remove variant", "path", variantPath, "error", err.Error())
		}
	}
	return nil
}

// generateVariants resizes the original to each variant width and encodes it
// as WebP. A failure cleans up the variants written so far.
func (p *ImageProcessor) generateVariants(originalPath, name string, timestamp int64, variantsDir string) ([]string, error) {
	file, err := os.Open(originalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open original file: %w", err)
	}
	defer file.Close()

	img, err := imaging.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	basename := fmt.Sprintf("%s-%d", name, timestamp)
	paths := make([]string, 0, len(variantWidths))
	for _, width := range variantWidths {
		resized := img
		if img.Bounds().Dx() > width {
			resized = imaging.Resize(img, width, 0, imaging.Lanczos)
		}

		variantPath := filepath.Join(variantsDir, fmt.Sprintf("%s_%dw.webp", basename, width))
		if err := webp.Save(variantPath, resized, &webp.Options{Quality: 85}); err != nil {
			for _, written := range paths {
				os.Remove(written)
			}
			return nil, fmt.Errorf("failed to save variant %dw: %w", width, err)
		}
		paths = append(paths, variantPath)
	}
	return paths, nil
}

var (
	svgPattern    = regexp.MustCompile(`^data:image/svg\+xml;base64,`)
	binaryPattern = regexp.MustCompile(`^data:image/[\w.+-]+;base64,`)
)

func writeSVG(data, filename, targetDir string) (string, error) {
	if !svgPattern.MatchString(data) {
		return "", fmt.Errorf("invalid SVG base64 format")
	}

	decoded, err := base64.StdEncoding.DecodeString(svgPattern.ReplaceAllString(data, ""))
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write SVG file: %w", err)
	}
	return fullPath, nil
}

func writeBinaryImage(data, filename, targetDir string) (string, error) {
	if !binaryPattern.MatchString(data) {
		return "", fmt.Errorf("invalid image base64 format")
	}

	decoded, err := base64.StdEncoding.DecodeString(binaryPattern.ReplaceAllString(data, ""))
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return fullPath, nil
}

func mediaURL(subdir, filename string) string {
	return "/" + strings.ReplaceAll(filepath.Join("media", subdir, filename), "\\", "/")
}

// extractExtension auto-detects file extension from the data-URI MIME type.
func extractExtension(data string) string {
	switch {
	case strings.Contains(data, "data:image/svg+xml"):
		return "svg"
	case strings.Contains(data, "data:image/png"):
		return "png"
	case strings.Contains(data, "data:image/jpeg"), strings.Contains(data, "data:image/jpg"):
		return "jpg"
	case strings.Contains(data, "data:image/webp"):
		return "webp"
	}
	return ""
}
