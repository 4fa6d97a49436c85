package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/filesmanager/internal/models"
	"github.com/iudanet/filesmanager/internal/server/auth"
	"github.com/iudanet/filesmanager/pkg/api"
)

// BasicAuthenticator проверяет Basic credentials запроса
type BasicAuthenticator interface {
	AuthenticateBasic(r *http.Request) (*models.User, error)
}

// SessionIssuer выдает и отзывает сессии
type SessionIssuer interface {
	Issue(ctx context.Context, userID string) (string, error)
	Revoke(ctx context.Context, token string) error
}

// AuthHandler обрабатывает /connect и /disconnect
type AuthHandler struct {
	logger   *slog.Logger
	basic    BasicAuthenticator
	sessions SessionIssuer
}

// NewAuthHandler создает handler для авторизации
func NewAuthHandler(logger *slog.Logger, basic BasicAuthenticator, sessions SessionIssuer) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		basic:    basic,
		sessions: sessions,
	}
}

// Connect обрабатывает GET /connect
// Обменивает Basic credentials на сессионный токен
func (h *AuthHandler) Connect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.basic.AuthenticateBasic(r)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			sendError(h.logger, w, msgUnauthorized, http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to authenticate user", slog.Any("error", err))
		sendError(h.logger, w, msgInternalError, http.StatusInternalServerError)
		return
	}

	token, err := h.sessions.Issue(ctx, user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue session", slog.Any("error", err))
		sendError(h.logger, w, msgInternalError, http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user connected", slog.String("user_id", user.ID))

	sendJSON(h.logger, w, api.TokenResponse{Token: token}, http.StatusOK)
}

// Disconnect обрабатывает GET /disconnect
// Отзывает токен, которым подписан запрос
func (h *AuthHandler) Disconnect(w http.ResponseWriter, r *auth.AuthenticatedRequest) {
	ctx := r.Context()

	if err := h.sessions.Revoke(ctx, r.Token); err != nil {
		h.logger.ErrorContext(ctx, "failed to revoke session", slog.Any("error", err))
		sendError(h.logger, w, msgInternalError, http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user disconnected", slog.String("user_id", r.User.ID))

	w.WriteHeader(http.StatusNoContent)
}
