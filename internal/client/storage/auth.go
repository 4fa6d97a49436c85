package storage

import (
	"context"
	"time"
)

// AuthStorage defines interface for storing the session of the local user.
// Sessions are kept per server URL so the same client can talk to several servers.
type AuthStorage interface {
	// SaveAuth stores the session for auth.Server, replacing any previous one.
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves the session for server.
	// Returns ErrAuthNotFound if the user never logged in there.
	GetAuth(ctx context.Context, server string) (*AuthData, error)

	// DeleteAuth removes the session for server (logout).
	// Returns ErrAuthNotFound if there is nothing to remove.
	DeleteAuth(ctx context.Context, server string) error

	// IsAuthenticated reports whether a session for server exists.
	IsAuthenticated(ctx context.Context, server string) (bool, error)
}

// AuthData represents the locally stored session.
// Token is the opaque session token returned by GET /connect.
type AuthData struct {
	CreatedAt time.Time `json:"created_at"`
	Server    string    `json:"server"`
	Email     string    `json:"email"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
}
