package handler

import (
	"net/http"

	"gearshop/internal/delivery/http/response"
	"gearshop/internal/domain/service"
	"gearshop/internal/infra/media"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler proxies admin image uploads to the external CDN.
type MediaHandler struct {
	uploader service.MediaUploader
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(uploader service.MediaUploader) *MediaHandler {
	return &MediaHandler{uploader: uploader}
}

// Upload accepts a multipart image and returns its public URL.
func (h *MediaHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing file field")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := media.Validate(contentType, fileHeader.Size); err != nil {
		return errors.WithStack(err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "products"
	}

	url, err := h.uploader.Upload(c.Request().Context(), folder, fileHeader.Filename, contentType, fileHeader.Size, src)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded")
}
