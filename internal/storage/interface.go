package storage

import (
	"context"
	"io"
	"time"
)

// StorageInterface abstracts the media storage backend. The local
// implementation serves upload/download over the API server itself; a cloud
// backend would hand out real presigned URLs.
type StorageInterface interface {
	// GenerateUploadURL returns a URL the client PUTs the media bytes to.
	// The storage key is encoded in the URL. Expiry enforcement is up to
	// the backend; the local implementation does not enforce it.
	GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error)

	// GenerateDownloadURL returns a URL the client GETs the media from.
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a file exists and returns its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage.
	DeleteFile(ctx context.Context, key string) error

	// SaveFile persists uploaded bytes (used by the local upload handler).
	SaveFile(key string, reader io.Reader) error

	// ReadFile opens a file for reading (used by the local download handler).
	ReadFile(key string) (io.ReadCloser, error)
}
