package usecase

import (
	"context"
	"io"
)

// UploadInput describes one product image upload.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadUsecase defines the interface for product image uploads
type UploadUsecase interface {
	// UploadImage validates the file, writes it to object storage and
	// returns its public URL
	UploadImage(ctx context.Context, input *UploadInput) (string, error)
}
