package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"

	"github.com/chai2010/webp"
	identityapp "github.com/dealerdesk/backend/internal/application/identity"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/disintegration/imaging"
)

const (
	// WebPContentType is the content type of every processed image
	WebPContentType = "image/webp"

	defaultWebPQuality = 85
)

var _ identityapp.ImageProcessor = (*WebPImageProcessor)(nil)

// WebPImageProcessor decodes JPEG, PNG or WebP uploads, shrinks them to fit a
// square bound and re-encodes them as lossy WebP
type WebPImageProcessor struct {
	maxBytes     int64
	maxDimension int
	quality      float32
}

// NewWebPImageProcessor creates a processor. A zero maxBytes or maxDimension
// disables that limit.
func NewWebPImageProcessor(maxBytes int64, maxDimension int) *WebPImageProcessor {
	return &WebPImageProcessor{
		maxBytes:     maxBytes,
		maxDimension: maxDimension,
		quality:      defaultWebPQuality,
	}
}

// Process validates, resizes and encodes an image
func (p *WebPImageProcessor) Process(data []byte) ([]byte, string, error) {
	if len(data) == 0 {
		return nil, "", shared.NewDomainError("INVALID_IMAGE", "Image file is empty")
	}
	if p.maxBytes > 0 && int64(len(data)) > p.maxBytes {
		return nil, "", shared.NewDomainError("IMAGE_TOO_LARGE",
			fmt.Sprintf("Image exceeds the maximum size of %d bytes", p.maxBytes))
	}

	img, err := decodeImage(data)
	if err != nil {
		return nil, "", err
	}

	if p.maxDimension > 0 {
		b := img.Bounds()
		if b.Dx() > p.maxDimension || b.Dy() > p.maxDimension {
			img = imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: p.quality}); err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), WebPContentType, nil
}

func decodeImage(data []byte) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch http.DetectContentType(data) {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(data))
	case "image/webp":
		img, err = webp.Decode(bytes.NewReader(data))
	default:
		return nil, shared.NewDomainError("INVALID_IMAGE", "Image must be JPEG, PNG or WebP")
	}
	if err != nil {
		return nil, shared.WrapDomainError("INVALID_IMAGE", "Image could not be decoded", err)
	}
	return img, nil
}
