package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"acaradashboard/internal/domain"
)

var errEmptyURL = errors.New("storage returned an empty url")

type imageUploader struct {
	storage domain.BlobStorage
	now     func() time.Time

	mu         sync.Mutex
	lastMillis int64
}

// NewImageUploader returns an ImageUploader writing to storage. now defaults to time.Now.
func NewImageUploader(storage domain.BlobStorage, now func() time.Time) domain.ImageUploader {
	if now == nil {
		now = time.Now
	}
	return &imageUploader{storage: storage, now: now}
}

// ObjectKey returns the storage key for filename uploaded under folder at millis.
func ObjectKey(folder, filename string, millis int64) string {
	return fmt.Sprintf("%s/%d_%s", folder, millis, filename)
}

// nextMillis returns the current epoch milliseconds, strictly increasing per uploader.
func (u *imageUploader) nextMillis() int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	ms := u.now().UnixMilli()
	if ms <= u.lastMillis {
		ms = u.lastMillis + 1
	}
	u.lastMillis = ms
	return ms
}

// Upload writes file to folder/{epochMillis}_{filename} and returns its URL.
// Failures are returned as *domain.UploadError.
func (u *imageUploader) Upload(ctx context.Context, file domain.FileUpload, folder string) (string, error) {
	key := ObjectKey(folder, file.Filename, u.nextMillis())
	if file.Content == nil {
		return "", &domain.UploadError{Key: key, Err: errors.New("file has no content")}
	}
	if _, err := file.Content.Seek(0, io.SeekStart); err != nil {
		return "", &domain.UploadError{Key: key, Err: fmt.Errorf("rewind: %w", err)}
	}
	if err := u.storage.Put(ctx, key, file.Content, file.Size, file.ContentType); err != nil {
		return "", &domain.UploadError{Key: key, Err: err}
	}
	url, err := u.storage.URL(ctx, key)
	if err != nil {
		return "", &domain.UploadError{Key: key, Err: err}
	}
	if url == "" {
		return "", &domain.UploadError{Key: key, Err: errEmptyURL}
	}
	return url, nil
}
