package storage

import (
	"context"

	"github.com/iudanet/filesmanager/internal/models"
)

// FileStorage defines interface for file node persistence
type FileStorage interface {
	// CreateFile stores a new node. The storage assigns ID and CreatedAt;
	// both are written back into file.
	CreateFile(ctx context.Context, file *models.FileNode) error

	// GetFileByID retrieves node by ID regardless of owner
	// Returns ErrFileNotFound if node doesn't exist
	GetFileByID(ctx context.Context, id string) (*models.FileNode, error)

	// GetUserFile retrieves node by ID only if it belongs to ownerID
	// Returns ErrFileNotFound if node doesn't exist or has another owner
	GetUserFile(ctx context.Context, id, ownerID string) (*models.FileNode, error)

	// ListUserFiles returns nodes of ownerID directly under parent, in creation order.
	// The root parent is matched exactly, it is not a wildcard.
	// Returns empty slice if nothing matches
	ListUserFiles(ctx context.Context, ownerID string, parent models.ParentRef, limit, offset int) ([]*models.FileNode, error)

	// SetFilePublic updates visibility of the node identified by (id, ownerID)
	// Returns ErrFileNotFound if no such node exists
	SetFilePublic(ctx context.Context, id, ownerID string, isPublic bool) (*models.FileNode, error)

	// CountFiles returns the number of stored nodes
	CountFiles(ctx context.Context) (int64, error)
}
