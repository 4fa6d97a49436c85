package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/filesmanager/internal/models"
	"github.com/iudanet/filesmanager/internal/server/auth"
	"github.com/iudanet/filesmanager/internal/server/users"
	"github.com/iudanet/filesmanager/pkg/api"
)

// UserRegistrar создает пользователей
type UserRegistrar interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
}

// UserHandler обрабатывает запросы /users
type UserHandler struct {
	logger *slog.Logger
	users  UserRegistrar
}

// NewUserHandler создает handler пользователей
func NewUserHandler(logger *slog.Logger, registrar UserRegistrar) *UserHandler {
	return &UserHandler{
		logger: logger,
		users:  registrar,
	}
}

// Create обрабатывает POST /users
// Регистрация нового пользователя
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode create user request", slog.Any("error", err))
		sendError(h.logger, w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	user, err := h.users.Register(ctx, req.Email, req.Password)
	if err != nil {
		var verr *users.ValidationError
		if errors.As(err, &verr) {
			h.logger.WarnContext(ctx, "user registration rejected", slog.String("reason", verr.Message))
			sendError(h.logger, w, verr.Message, http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
		sendError(h.logger, w, msgInternalError, http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.UserResponse{ID: user.ID, Email: user.Email}, http.StatusCreated)
}

// Me обрабатывает GET /users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *auth.AuthenticatedRequest) {
	sendJSON(h.logger, w, api.UserResponse{ID: r.User.ID, Email: r.User.Email}, http.StatusOK)
}
