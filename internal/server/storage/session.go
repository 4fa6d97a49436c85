package storage

import (
	"context"

	"github.com/iudanet/filesmanager/internal/models"
)

// SessionStorage defines interface for session token persistence with expiration
type SessionStorage interface {
	// SaveSession stores token -> user mapping until session.ExpiresAt
	// Returns ErrTokenExists if the token is already present
	SaveSession(ctx context.Context, session *models.Session) error

	// GetSession retrieves a live session by token
	// Returns ErrSessionNotFound if token was never issued or has expired
	GetSession(ctx context.Context, token string) (*models.Session, error)

	// DeleteSession removes the token; deleting a missing token is not an error
	DeleteSession(ctx context.Context, token string) error

	// DeleteExpiredSessions removes all expired sessions
	// Returns number of deleted sessions
	DeleteExpiredSessions(ctx context.Context) (int, error)

	// Ping reports whether the store is usable
	Ping(ctx context.Context) error
}
