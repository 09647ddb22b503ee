package service

import (
	"context"
	"io"
)

// ImageStorage writes uploaded product images to the object storage bucket
// and resolves their public URLs.
type ImageStorage interface {
	// Upload writes the object under the given key with the given content
	// type and returns its public URL.
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
