package impl

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	domainerrors "raseed/internal/domain/errors"
	mockSvc "raseed/internal/mocks/service"
	"raseed/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadService_UploadImage(t *testing.T) {
	storage := mockSvc.NewMockImageStorage(t)
	service := NewUploadService(storage)

	ctx := context.Background()
	keyPattern := regexp.MustCompile(`^\d+-[0-9a-z]+\.png$`)

	storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Run(func(_ context.Context, key, _ string, _ io.Reader) {
			assert.Regexp(t, keyPattern, key)
		}).
		Return("https://cdn.example.com/123-abc.png", nil)

	url, err := service.UploadImage(ctx, &usecase.UploadInput{
		Filename:    "Logo.PNG",
		ContentType: "image/png",
		Size:        1024,
		Content:     strings.NewReader("png bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/123-abc.png", url)
}

func TestUploadService_UploadImage_Validation(t *testing.T) {
	storage := mockSvc.NewMockImageStorage(t)
	service := NewUploadService(storage)

	ctx := context.Background()

	tests := []struct {
		name    string
		input   *usecase.UploadInput
		wantErr error
	}{
		{
			name:    "nil input",
			input:   nil,
			wantErr: domainerrors.ErrUploadFileMissing,
		},
		{
			name:    "missing content",
			input:   &usecase.UploadInput{Filename: "a.png", ContentType: "image/png"},
			wantErr: domainerrors.ErrUploadFileMissing,
		},
		{
			name: "missing filename",
			input: &usecase.UploadInput{
				ContentType: "image/png",
				Content:     strings.NewReader("x"),
			},
			wantErr: domainerrors.ErrUploadFileMissing,
		},
		{
			name: "unsupported type",
			input: &usecase.UploadInput{
				Filename:    "doc.pdf",
				ContentType: "application/pdf",
				Size:        1024,
				Content:     strings.NewReader("x"),
			},
			wantErr: domainerrors.ErrUploadTypeUnsupported,
		},
		{
			name: "over size cap",
			input: &usecase.UploadInput{
				Filename:    "big.jpg",
				ContentType: "image/jpeg",
				Size:        maxUploadSize + 1,
				Content:     strings.NewReader("x"),
			},
			wantErr: domainerrors.ErrUploadTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := service.UploadImage(ctx, tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, url)
		})
	}
}

func TestUploadService_UploadImage_SizeCapBoundary(t *testing.T) {
	storage := mockSvc.NewMockImageStorage(t)
	service := NewUploadService(storage)

	ctx := context.Background()

	storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/webp", mock.Anything).
		Return("https://cdn.example.com/key.webp", nil)

	// Exactly at the cap is accepted.
	url, err := service.UploadImage(ctx, &usecase.UploadInput{
		Filename:    "banner.webp",
		ContentType: "image/webp",
		Size:        maxUploadSize,
		Content:     strings.NewReader("x"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}

func TestObjectKey_KeepsExtension(t *testing.T) {
	key := objectKey("Photo.JPG")
	assert.True(t, strings.HasSuffix(key, ".jpg"))

	bare := objectKey("noext")
	assert.NotContains(t, bare, ".")
}
