// Package auth resolves the caller of an HTTP request from a session token
// or HTTP Basic credentials.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/filesmanager/internal/models"
	"github.com/iudanet/filesmanager/internal/server/users"
)

// TokenHeader заголовок с сессионным токеном
const TokenHeader = "X-Token"

// ErrUnauthenticated is returned when no credential form identifies a user
var ErrUnauthenticated = errors.New("unauthenticated")

// UserDirectory is the part of users.Directory the gate needs.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// AuthenticatedRequest is a request together with its resolved caller.
// User is nil for anonymous requests.
type AuthenticatedRequest struct {
	*http.Request
	User  *models.User
	Token string
}

// Anonymous reports whether no caller was resolved.
func (r *AuthenticatedRequest) Anonymous() bool {
	return r.User == nil
}

// Gate authenticates incoming requests.
type Gate struct {
	logger   *slog.Logger
	sessions *SessionManager
	users    UserDirectory
}

// NewGate creates an authentication gate.
func NewGate(logger *slog.Logger, sessions *SessionManager, directory UserDirectory) *Gate {
	return &Gate{
		logger:   logger,
		sessions: sessions,
		users:    directory,
	}
}

// SessionToken extracts the session token from X-Token or Authorization: Bearer.
func SessionToken(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(TokenHeader)); token != "" {
		return token
	}

	scheme, value, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(value)
	}

	return ""
}

// Authenticate resolves the caller or fails with ErrUnauthenticated.
// A supplied session token takes precedence; Basic credentials are only
// consulted when no token is present.
func (g *Gate) Authenticate(r *http.Request) (*AuthenticatedRequest, error) {
	req, err := g.TryAuthenticate(r)
	if err != nil {
		return nil, err
	}
	if req.Anonymous() {
		return nil, ErrUnauthenticated
	}
	return req, nil
}

// TryAuthenticate never fails on bad credentials: it returns an anonymous
// request instead. Only infrastructure errors are returned.
func (g *Gate) TryAuthenticate(r *http.Request) (*AuthenticatedRequest, error) {
	ctx := r.Context()

	if token := SessionToken(r); token != "" {
		user, err := g.userFromSession(ctx, token)
		if err != nil {
			if errors.Is(err, ErrUnauthenticated) {
				return &AuthenticatedRequest{Request: r}, nil
			}
			return nil, err
		}
		return &AuthenticatedRequest{Request: r, User: user, Token: token}, nil
	}

	if _, _, ok := r.BasicAuth(); ok {
		user, err := g.AuthenticateBasic(r)
		if err != nil {
			if errors.Is(err, ErrUnauthenticated) {
				return &AuthenticatedRequest{Request: r}, nil
			}
			return nil, err
		}
		return &AuthenticatedRequest{Request: r, User: user}, nil
	}

	return &AuthenticatedRequest{Request: r}, nil
}

// AuthenticateSession accepts only a session token.
func (g *Gate) AuthenticateSession(r *http.Request) (*AuthenticatedRequest, error) {
	token := SessionToken(r)
	if token == "" {
		return nil, ErrUnauthenticated
	}

	user, err := g.userFromSession(r.Context(), token)
	if err != nil {
		return nil, err
	}

	return &AuthenticatedRequest{Request: r, User: user, Token: token}, nil
}

// AuthenticateBasic checks Authorization: Basic base64(email:password).
func (g *Gate) AuthenticateBasic(r *http.Request) (*models.User, error) {
	ctx := r.Context()

	// BasicAuth делит по первому ':', пароль может содержать ':'
	email, password, ok := r.BasicAuth()
	if !ok || email == "" || password == "" {
		return nil, ErrUnauthenticated
	}

	user, err := g.users.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			g.logger.WarnContext(ctx, "basic authentication failed")
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	return user, nil
}

func (g *Gate) userFromSession(ctx context.Context, token string) (*models.User, error) {
	userID, err := g.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	user, err := g.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			g.logger.WarnContext(ctx, "session refers to missing user", slog.String("user_id", userID))
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return user, nil
}
