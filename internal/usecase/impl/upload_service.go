package impl

import (
	"context"
	"math/rand"
	"path"
	"strconv"
	"strings"
	"time"

	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/domain/service"
	"raseed/internal/usecase"

	"github.com/pkg/errors"
)

// maxUploadSize caps product images at 5MB.
const maxUploadSize = 5 * 1024 * 1024

// allowedImageTypes is the accepted set of upload content types.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

type uploadService struct {
	storage service.ImageStorage
}

// NewUploadService creates a new upload service instance
func NewUploadService(storage service.ImageStorage) usecase.UploadUsecase {
	return &uploadService{
		storage: storage,
	}
}

// UploadImage validates the file, writes it to object storage and returns
// its public URL.
func (s *uploadService) UploadImage(ctx context.Context, input *usecase.UploadInput) (string, error) {
	if input == nil || input.Content == nil || input.Filename == "" {
		return "", domainerrors.ErrUploadFileMissing
	}
	if _, ok := allowedImageTypes[input.ContentType]; !ok {
		return "", domainerrors.ErrUploadTypeUnsupported
	}
	if input.Size > maxUploadSize {
		return "", domainerrors.ErrUploadTooLarge
	}

	key := objectKey(input.Filename)

	url, err := s.storage.Upload(ctx, key, input.ContentType, input.Content)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload image")
	}

	return url, nil
}

// objectKey builds a collision-resistant storage key keeping the original
// file extension: <unixmilli>-<rand36><ext>.
func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	return strconv.FormatInt(time.Now().UnixMilli(), 10) +
		"-" + strconv.FormatInt(rand.Int63n(36*36*36*36*36*36), 36) + ext
}
