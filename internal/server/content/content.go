// Package content stores file payloads on disk under a single root directory.
package content

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by Read when no payload exists at the path
	ErrNotFound = errors.New("content not found")

	// ErrInvalidPayload is returned by Save when the payload is not valid base64
	ErrInvalidPayload = errors.New("invalid base64 payload")

	// ErrOutsideRoot is returned for paths that escape the storage root
	ErrOutsideRoot = errors.New("path is outside of storage root")
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// Store writes and reads payloads under root.
type Store struct {
	logger *slog.Logger
	root   string
}

// NewStore creates a store rooted at root. The directory is created lazily on first Save.
func NewStore(logger *slog.Logger, root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	return &Store{logger: logger, root: abs}, nil
}

// Root returns the absolute storage root.
func (s *Store) Root() string {
	return s.root
}

// Save decodes a base64 payload and writes it under a fresh opaque name.
// Returns the absolute path of the written file.
func (s *Store) Save(ctx context.Context, payload string) (string, error) {
	data, err := decodePayload(payload)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.root, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create storage root: %w", err)
	}

	path := filepath.Join(s.root, uuid.New().String())

	// O_EXCL: имя только что сгенерировано, перезапись чужого файла исключена
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return "", fmt.Errorf("failed to create content file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write content: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close content file: %w", err)
	}

	s.logger.DebugContext(ctx, "content stored", slog.String("path", path), slog.Int("size", len(data)))

	return path, nil
}

// Read returns the bytes stored at path, or ErrNotFound if the file is absent.
func (s *Store) Read(ctx context.Context, path string) ([]byte, error) {
	if err := s.checkInRoot(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	return data, nil
}

// VariantPath returns the path of a size variant produced by the thumbnail worker.
func VariantPath(path, size string) string {
	if size == "" {
		return path
	}
	return path + "_" + size
}

func (s *Store) checkInRoot(path string) error {
	rel, err := filepath.Rel(s.root, filepath.Clean(path))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return ErrOutsideRoot
	}
	return nil
}

func decodePayload(payload string) ([]byte, error) {
	if payload == "" {
		return nil, ErrInvalidPayload
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// клиенты иногда шлют base64 без паддинга
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, ErrInvalidPayload
		}
	}

	return data, nil
}
