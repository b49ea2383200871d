package identity

import "context"

// ImageStore persists company images
type ImageStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	DeleteObject(ctx context.Context, key string) error
	// ObjectURL returns a URL the browser can load the object from
	ObjectURL(ctx context.Context, key string) (string, error)
}

// ImageProcessor normalizes an uploaded image and returns the encoded bytes and
// their content type
type ImageProcessor interface {
	Process(data []byte) ([]byte, string, error)
}
