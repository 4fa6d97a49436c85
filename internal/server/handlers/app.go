package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/filesmanager/pkg/api"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// Counter возвращает число записей
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// AppHandler обрабатывает служебные запросы /status и /stats
type AppHandler struct {
	logger   *slog.Logger
	sessions Pinger
	db       Pinger
	users    Counter
	files    Counter
}

// NewAppHandler создает handler служебных запросов
func NewAppHandler(logger *slog.Logger, sessions, db Pinger, users, files Counter) *AppHandler {
	return &AppHandler{
		logger:   logger,
		sessions: sessions,
		db:       db,
		users:    users,
		files:    files,
	}
}

// Status обрабатывает GET /status
// Сообщает доступность хранилища сессий и базы данных
func (h *AppHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := api.StatusResponse{
		Redis: h.alive(ctx, "sessions", h.sessions),
		DB:    h.alive(ctx, "db", h.db),
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

func (h *AppHandler) alive(ctx context.Context, name string, p Pinger) bool {
	if err := p.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "store is not alive", slog.String("store", name), slog.Any("error", err))
		return false
	}
	return true
}

// Stats обрабатывает GET /stats
// Возвращает число пользователей и файлов
func (h *AppHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.users.Count(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to count users", slog.Any("error", err))
		sendError(h.logger, w, msgInternalError, http.StatusInternalServerError)
		return
	}

	files, err := h.files.Count(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to count files", slog.Any("error", err))
		sendError(h.logger, w, msgInternalError, http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.StatsResponse{Users: users, Files: files}, http.StatusOK)
}
