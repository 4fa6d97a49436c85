package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/filesmanager/internal/models"
)

// EnqueueThumbnailJob appends a pending job to the thumbnail outbox
func (s *Storage) EnqueueThumbnailJob(ctx context.Context, job *models.ThumbnailJob) error {
	query := `
		INSERT INTO thumbnail_jobs (user_id, file_id, name, status, created_at)
		VALUES (?, ?, ?, 'pending', ?)
	`

	if _, err := s.db.ExecContext(ctx, query, job.UserID, job.FileID, job.Name, job.CreatedAt); err != nil {
		return fmt.Errorf("failed to enqueue thumbnail job: %w", err)
	}

	return nil
}

// PendingThumbnailJobs returns up to limit pending jobs, oldest first
func (s *Storage) PendingThumbnailJobs(ctx context.Context, limit int) ([]*models.ThumbnailJob, error) {
	query := `
		SELECT user_id, file_id, name, created_at
		FROM thumbnail_jobs
		WHERE status = 'pending'
		ORDER BY id ASC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query thumbnail jobs: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var jobs []*models.ThumbnailJob

	for rows.Next() {
		job := &models.ThumbnailJob{}
		if err := rows.Scan(&job.UserID, &job.FileID, &job.Name, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan thumbnail job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return jobs, nil
}
