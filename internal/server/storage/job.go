package storage

import (
	"context"

	"github.com/iudanet/filesmanager/internal/models"
)

// JobQueue defines the inbox of the external thumbnail worker
type JobQueue interface {
	// EnqueueThumbnailJob appends a pending job
	EnqueueThumbnailJob(ctx context.Context, job *models.ThumbnailJob) error
}
