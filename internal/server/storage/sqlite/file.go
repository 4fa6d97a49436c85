package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/filesmanager/internal/models"
	"github.com/iudanet/filesmanager/internal/server/storage"
)

const fileColumns = `id, user_id, name, type, parent_id, is_public, local_path, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// CreateFile stores a new node and assigns its ID
func (s *Storage) CreateFile(ctx context.Context, file *models.FileNode) error {
	// UUIDv7 упорядочен по времени; порядок выдачи все равно задает seq
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate file id: %w", err)
	}

	createdAt := time.Now().UTC()

	query := `
		INSERT INTO files (id, user_id, name, type, parent_id, is_public, local_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		id.String(),
		file.OwnerID,
		file.Name,
		string(file.Type),
		parentToNull(file.ParentID),
		file.IsPublic,
		stringToNull(file.LocalPath),
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert file: %w", err)
	}

	file.ID = id.String()
	file.CreatedAt = createdAt

	return nil
}

// GetFileByID retrieves node by ID regardless of owner
func (s *Storage) GetFileByID(ctx context.Context, id string) (*models.FileNode, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = ?`

	file, err := scanFile(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}

	return file, nil
}

// GetUserFile retrieves node by ID if it belongs to ownerID
func (s *Storage) GetUserFile(ctx context.Context, id, ownerID string) (*models.FileNode, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = ? AND user_id = ?`

	file, err := scanFile(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		return nil, err
	}

	return file, nil
}

// ListUserFiles returns one page of ownerID's nodes under parent in creation order
func (s *Storage) ListUserFiles(ctx context.Context, ownerID string, parent models.ParentRef, limit, offset int) ([]*models.FileNode, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if parent.IsRoot() {
		query := `SELECT ` + fileColumns + ` FROM files
			WHERE user_id = ? AND parent_id IS NULL
			ORDER BY seq ASC
			LIMIT ? OFFSET ?`
		rows, err = s.db.QueryContext(ctx, query, ownerID, limit, offset)
	} else {
		query := `SELECT ` + fileColumns + ` FROM files
			WHERE user_id = ? AND parent_id = ?
			ORDER BY seq ASC
			LIMIT ? OFFSET ?`
		rows, err = s.db.QueryContext(ctx, query, ownerID, parent.ID(), limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	files := make([]*models.FileNode, 0, limit)

	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return files, nil
}

// SetFilePublic updates visibility of the node owned by ownerID
func (s *Storage) SetFilePublic(ctx context.Context, id, ownerID string, isPublic bool) (*models.FileNode, error) {
	// Одно условное обновление по (id, user_id)
	query := `UPDATE files SET is_public = ? WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, isPublic, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to update file visibility: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return nil, storage.ErrFileNotFound
	}

	return s.GetUserFile(ctx, id, ownerID)
}

// CountFiles returns the number of stored nodes
func (s *Storage) CountFiles(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM files`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count files: %w", err)
	}
	return count, nil
}

func scanFile(row rowScanner) (*models.FileNode, error) {
	var (
		file      models.FileNode
		fileType  string
		parentID  sql.NullString
		localPath sql.NullString
	)

	err := row.Scan(
		&file.ID,
		&file.OwnerID,
		&file.Name,
		&fileType,
		&parentID,
		&file.IsPublic,
		&localPath,
		&file.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to scan file: %w", err)
	}

	file.Type = models.FileType(fileType)
	if parentID.Valid {
		file.ParentID = models.ParentNode(parentID.String)
	}
	file.LocalPath = localPath.String

	return &file, nil
}

func parentToNull(p models.ParentRef) sql.NullString {
	if p.IsRoot() {
		return sql.NullString{}
	}
	return sql.NullString{String: p.ID(), Valid: true}
}

func stringToNull(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
