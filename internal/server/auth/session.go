package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/filesmanager/internal/crypto"
	"github.com/iudanet/filesmanager/internal/models"
	"github.com/iudanet/filesmanager/internal/server/storage"
)

// DefaultSessionTTL время жизни сессии по умолчанию
const DefaultSessionTTL = 24 * time.Hour

// maxIssueAttempts сколько раз пробуем новый токен при коллизии
const maxIssueAttempts = 3

// ErrSessionNotFound is returned by Resolve for unknown, revoked or expired tokens
var ErrSessionNotFound = errors.New("session not found")

// SessionManager issues, resolves and revokes opaque session tokens.
type SessionManager struct {
	logger   *slog.Logger
	storage  storage.SessionStorage
	now      func() time.Time
	generate func() (string, error)
	ttl      time.Duration
}

// NewSessionManager creates a session manager; ttl <= 0 means DefaultSessionTTL.
func NewSessionManager(logger *slog.Logger, sessionStorage storage.SessionStorage, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{
		logger:   logger,
		storage:  sessionStorage,
		ttl:      ttl,
		now:      time.Now,
		generate: crypto.GenerateToken,
	}
}

// TTL returns the lifetime of newly issued sessions.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a session for userID and returns its token.
func (m *SessionManager) Issue(ctx context.Context, userID string) (string, error) {
	for attempt := 1; attempt <= maxIssueAttempts; attempt++ {
		token, err := m.generate()
		if err != nil {
			return "", fmt.Errorf("failed to generate session token: %w", err)
		}

		session := &models.Session{
			Token:     token,
			UserID:    userID,
			ExpiresAt: m.now().Add(m.ttl),
		}

		err = m.storage.SaveSession(ctx, session)
		if err == nil {
			return token, nil
		}
		if !errors.Is(err, storage.ErrTokenExists) {
			return "", fmt.Errorf("failed to save session: %w", err)
		}

		m.logger.WarnContext(ctx, "session token collision, regenerating", slog.Int("attempt", attempt))
	}

	return "", fmt.Errorf("failed to issue session: %w", storage.ErrTokenExists)
}

// Resolve returns the user id bound to token.
// Store failures are returned as is and never reported as ErrSessionNotFound.
func (m *SessionManager) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrSessionNotFound
	}

	session, err := m.storage.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return "", ErrSessionNotFound
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	return session.UserID, nil
}

// Revoke deletes the session; revoking an unknown token is not an error.
func (m *SessionManager) Revoke(ctx context.Context, token string) error {
	if err := m.storage.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// RunSweeper periodically removes expired sessions until ctx is done.
func (m *SessionManager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := m.storage.DeleteExpiredSessions(ctx)
			if err != nil {
				m.logger.ErrorContext(ctx, "failed to delete expired sessions", slog.Any("error", err))
				continue
			}
			if deleted > 0 {
				m.logger.InfoContext(ctx, "expired sessions deleted", slog.Int("count", deleted))
			}
		}
	}
}
