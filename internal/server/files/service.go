// Package files implements the file hierarchy: node creation, owner-scoped
// lookup, paginated listing, visibility changes and content retrieval.
package files

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"mime"
	"path/filepath"

	"github.com/iudanet/filesmanager/internal/models"
	"github.com/iudanet/filesmanager/internal/server/content"
	"github.com/iudanet/filesmanager/internal/server/storage"
	"github.com/iudanet/filesmanager/internal/validation"
)

// PageSize количество узлов на странице списка
const PageSize = 20

const defaultContentType = "application/octet-stream"

// ContentStore persists payloads of file and image nodes.
type ContentStore interface {
	Save(ctx context.Context, payload string) (string, error)
	Read(ctx context.Context, path string) ([]byte, error)
}

// ThumbnailDispatcher requests thumbnails for uploaded images.
type ThumbnailDispatcher interface {
	DispatchThumbnail(ctx context.Context, userID, fileID string)
}

// CreateParams describes a node to create.
type CreateParams struct {
	Name     string
	Type     models.FileType
	Data     string
	ParentID models.ParentRef
	IsPublic bool
}

// Content is the payload of a node ready to be served.
type Content struct {
	ContentType string
	Data        []byte
}

// Service is the file hierarchy.
type Service struct {
	logger     *slog.Logger
	storage    storage.FileStorage
	content    ContentStore
	thumbnails ThumbnailDispatcher
}

// NewService creates the file hierarchy service.
func NewService(logger *slog.Logger, fileStorage storage.FileStorage, contentStore ContentStore, thumbnails ThumbnailDispatcher) *Service {
	return &Service{
		logger:     logger,
		storage:    fileStorage,
		content:    contentStore,
		thumbnails: thumbnails,
	}
}

// Create validates params and stores a new node owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID string, params CreateParams) (*models.FileNode, error) {
	if params.Name == "" {
		return nil, ErrMissingName
	}
	if !params.Type.Valid() {
		return nil, ErrMissingType
	}
	if params.Type.HasContent() && params.Data == "" {
		return nil, ErrMissingData
	}

	if !params.ParentID.IsRoot() {
		// Чужая папка неотличима от несуществующей
		parent, err := s.storage.GetUserFile(ctx, params.ParentID.ID(), ownerID)
		if err != nil {
			if errors.Is(err, storage.ErrFileNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, fmt.Errorf("failed to get parent: %w", err)
		}
		if parent.Type != models.FileTypeFolder {
			return nil, ErrParentNotFolder
		}
	}

	node := &models.FileNode{
		OwnerID:  ownerID,
		Name:     params.Name,
		Type:     params.Type,
		ParentID: params.ParentID,
		IsPublic: params.IsPublic,
	}

	if params.Type.HasContent() {
		path, err := s.content.Save(ctx, params.Data)
		if err != nil {
			if errors.Is(err, content.ErrInvalidPayload) {
				return nil, ErrInvalidData
			}
			return nil, fmt.Errorf("failed to store content: %w", err)
		}
		node.LocalPath = path
	}

	if err := s.storage.CreateFile(ctx, node); err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	s.logger.InfoContext(ctx, "file created",
		slog.String("file_id", node.ID),
		slog.String("user_id", ownerID),
		slog.String("type", string(node.Type)))

	if node.Type == models.FileTypeImage && s.thumbnails != nil {
		s.thumbnails.DispatchThumbnail(ctx, ownerID, node.ID)
	}

	return node, nil
}

// GetByID returns a node regardless of its owner.
func (s *Service) GetByID(ctx context.Context, id string) (*models.FileNode, error) {
	node, err := s.storage.GetFileByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return node, nil
}

// GetOwned returns a node only if callerID owns it.
func (s *Service) GetOwned(ctx context.Context, id, callerID string) (*models.FileNode, error) {
	node, err := s.storage.GetUserFile(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return node, nil
}

// List returns one page of callerID's nodes under parent, in creation order.
// Pages are zero-based; negative pages are treated as the first page,
// pages whose offset overflows int are empty.
func (s *Service) List(ctx context.Context, callerID string, parent models.ParentRef, page int) ([]*models.FileNode, error) {
	if page < 0 {
		page = 0
	}
	// Смещение за пределами int: страница заведомо пустая
	if page > math.MaxInt/PageSize {
		return []*models.FileNode{}, nil
	}

	nodes, err := s.storage.ListUserFiles(ctx, callerID, parent, PageSize, page*PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return nodes, nil
}

// SetVisibility changes isPublic of a node owned by callerID.
func (s *Service) SetVisibility(ctx context.Context, id, callerID string, isPublic bool) (*models.FileNode, error) {
	node, err := s.storage.SetFilePublic(ctx, id, callerID, isPublic)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update visibility: %w", err)
	}

	s.logger.InfoContext(ctx, "file visibility changed",
		slog.String("file_id", id),
		slog.Bool("is_public", isPublic))

	return node, nil
}

// ReadContent returns the payload of a node for caller (nil means anonymous).
// Private nodes of other users are reported as ErrNotFound.
func (s *Service) ReadContent(ctx context.Context, id string, caller *models.User, size string) (*Content, error) {
	node, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner := caller != nil && node.IsOwnedBy(caller.ID)
	if !node.IsPublic && !owner {
		return nil, ErrNotFound
	}

	if node.Type == models.FileTypeFolder {
		return nil, ErrFolderHasNoContent
	}

	// Другие размеры воркер не создает
	if size != "" && !validation.IsThumbnailSize(size) {
		return nil, ErrNotFound
	}

	data, err := s.content.Read(ctx, content.VariantPath(node.LocalPath, size))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	return &Content{
		ContentType: ContentTypeOf(node.Name),
		Data:        data,
	}, nil
}

// Count returns the number of stored nodes.
func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.storage.CountFiles(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count files: %w", err)
	}
	return n, nil
}

// ContentTypeOf infers a MIME type from the extension of name.
func ContentTypeOf(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return defaultContentType
}
