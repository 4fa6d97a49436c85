package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/filesmanager/internal/models"
)

func TestJobQueue_EnqueueThumbnailJob(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	jobs, err := s.PendingThumbnailJobs(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, jobs)

	require.NoError(t, s.EnqueueThumbnailJob(ctx, models.NewThumbnailJob("u1", "f1")))
	require.NoError(t, s.EnqueueThumbnailJob(ctx, models.NewThumbnailJob("u1", "f2")))

	jobs, err = s.PendingThumbnailJobs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "f1", jobs[0].FileID)
	assert.Equal(t, "f2", jobs[1].FileID)
	assert.Equal(t, "Image thumbnail [u1-f1]", jobs[0].Name)

	jobs, err = s.PendingThumbnailJobs(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}
