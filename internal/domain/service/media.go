package service

import (
	"context"
	"io"
)

// MediaUploader sends a binary file to the external media CDN and returns
// its public URL. Type and size are validated before any network call.
type MediaUploader interface {
	Upload(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (url string, err error)
}
