// Package media uploads images to the external CDN endpoint.
package media

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"gearshop/internal/domain/service"
	"gearshop/internal/errors"

	domainerrors "gearshop/internal/domain/errors"
)

// MaxUploadSize is the largest accepted image in bytes (5MB).
const MaxUploadSize = 5 << 20

// Uploader implements service.MediaUploader over HTTP multipart. The CDN
// responds with a JSON body carrying the public URL of the stored file.
type Uploader struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewUploader creates an uploader for the given CDN endpoint.
func NewUploader(endpoint string, logger *slog.Logger) service.MediaUploader {
	return &Uploader{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// Validate rejects non-image content and oversized files before any network
// call is made.
func Validate(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return domainerrors.ErrMediaRejected.WithDetails("content type must be image/*")
	}
	if size <= 0 || size > MaxUploadSize {
		return domainerrors.ErrMediaRejected.WithDetails("file size must be between 1 byte and 5MB")
	}

	return nil
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload validates the file and streams it to the CDN as multipart form
// data under the given folder label.
func (u *Uploader) Upload(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (string, error) {
	if err := Validate(contentType, size); err != nil {
		return "", err
	}

	pipeReader, pipeWriter := io.Pipe()
	form := multipart.NewWriter(pipeWriter)

	go func() {
		part, err := form.CreateFormFile("file", filename)
		if err == nil {
			_, err = io.Copy(part, r)
		}
		if err == nil {
			err = form.WriteField("folder", folder)
		}
		if err == nil {
			err = form.Close()
		}
		pipeWriter.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, pipeReader)
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "media upload request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("media endpoint returned status %d", resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode media endpoint response")
	}
	if parsed.URL == "" {
		return "", errors.New("media endpoint returned no URL")
	}

	u.logger.Debug("media uploaded",
		slog.String("folder", folder),
		slog.String("filename", filename),
	)

	return parsed.URL, nil
}
