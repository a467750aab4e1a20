package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// LocalStorageService stores media on the local filesystem and serves it
// through the API server's media endpoints.
type LocalStorageService struct {
	baseURL  string // Server URL (e.g. "http://localhost:8080")
	mediaDir string // Directory holding media files
}

func NewLocalStorageService(baseURL, uploadDir string) (*LocalStorageService, error) {
	mediaDir := filepath.Join(uploadDir, "media")
	if err := os.MkdirAll(mediaDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &LocalStorageService{
		baseURL:  baseURL,
		mediaDir: mediaDir,
	}, nil
}

func (s *LocalStorageService) GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error) {
	// The random path segment keeps issued URLs distinct; it is not checked
	// on upload. The key in the query tells the upload handler where to save.
	uploadToken := uuid.New().String()
	return fmt.Sprintf("%s/api/v1/media/upload/%s?key=%s", s.baseURL, uploadToken, url.QueryEscape(key)), nil
}

func (s *LocalStorageService) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/api/v1/media/download?key=%s", s.baseURL, url.QueryEscape(key)), nil
}

func (s *LocalStorageService) FileExists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(s.localPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (s *LocalStorageService) DeleteFile(ctx context.Context, key string) error {
	err := os.Remove(s.localPath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorageService) SaveFile(key string, reader io.Reader) error {
	fullPath := s.localPath(key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *LocalStorageService) ReadFile(key string) (io.ReadCloser, error) {
	file, err := os.Open(s.localPath(key))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// localPath confines keys to the media directory.
func (s *LocalStorageService) localPath(key string) string {
	return filepath.Join(s.mediaDir, filepath.Clean("/"+key))
}
