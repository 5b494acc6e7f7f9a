package domain

import (
	"context"
	"io"
)

// BlobStorage writes binary objects and resolves their retrieval URLs.
type BlobStorage interface {
	Put(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) error
	URL(ctx context.Context, key string) (string, error)
}

// ImageUploader uploads a single file under a folder and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, file FileUpload, folder string) (string, error)
}
