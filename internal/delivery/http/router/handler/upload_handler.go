package handler

import (
	"net/http"

	"raseed/internal/delivery/http/response"
	domainerrors "raseed/internal/domain/errors"
	"raseed/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for product image uploads.
type UploadHandler struct {
	uc usecase.UploadUsecase
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload accepts a multipart image and returns its public URL.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return domainerrors.ErrUploadFileMissing
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	url, err := h.uc.UploadImage(c.Request().Context(), &usecase.UploadInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded")
}
