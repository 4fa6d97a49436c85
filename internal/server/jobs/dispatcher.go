// Package jobs hands thumbnail generation requests to the external worker.
package jobs

import (
	"context"
	"log/slog"

	"github.com/iudanet/filesmanager/internal/models"
	"github.com/iudanet/filesmanager/internal/server/storage"
)

// Dispatcher enqueues thumbnail jobs on a best-effort basis.
type Dispatcher struct {
	logger *slog.Logger
	queue  storage.JobQueue
}

// NewDispatcher creates a dispatcher writing into queue.
func NewDispatcher(logger *slog.Logger, queue storage.JobQueue) *Dispatcher {
	return &Dispatcher{
		logger: logger,
		queue:  queue,
	}
}

// DispatchThumbnail enqueues a thumbnail job for an uploaded image.
// Failures are logged and swallowed.
func (d *Dispatcher) DispatchThumbnail(ctx context.Context, userID, fileID string) {
	job := models.NewThumbnailJob(userID, fileID)

	if err := d.queue.EnqueueThumbnailJob(ctx, job); err != nil {
		d.logger.WarnContext(ctx, "failed to enqueue thumbnail job",
			slog.String("user_id", userID),
			slog.String("file_id", fileID),
			slog.Any("error", err))
		return
	}

	d.logger.InfoContext(ctx, "thumbnail job enqueued", slog.String("name", job.Name))
}
