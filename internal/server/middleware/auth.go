package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/filesmanager/internal/server/auth"
)

// AuthenticatedHandlerFunc обработчик, получающий уже разрешенного вызывающего
type AuthenticatedHandlerFunc func(w http.ResponseWriter, r *auth.AuthenticatedRequest)

// Authenticator это часть auth.Gate, нужная адаптерам
type Authenticator interface {
	Authenticate(r *http.Request) (*auth.AuthenticatedRequest, error)
	TryAuthenticate(r *http.Request) (*auth.AuthenticatedRequest, error)
	AuthenticateSession(r *http.Request) (*auth.AuthenticatedRequest, error)
}

// Auth связывает Authenticator с обработчиками
type Auth struct {
	logger *slog.Logger
	gate   Authenticator
}

// NewAuth создает адаптеры аутентификации
func NewAuth(logger *slog.Logger, gate Authenticator) *Auth {
	return &Auth{logger: logger, gate: gate}
}

// Require пропускает запрос с токеном сессии или Basic, иначе 401
func (a *Auth) Require(next AuthenticatedHandlerFunc) http.HandlerFunc {
	return a.wrap(a.gate.Authenticate, next)
}

// RequireSession пропускает только запрос с токеном сессии, иначе 401
func (a *Auth) RequireSession(next AuthenticatedHandlerFunc) http.HandlerFunc {
	return a.wrap(a.gate.AuthenticateSession, next)
}

// Optional пропускает любой запрос; User равен nil для анонима
func (a *Auth) Optional(next AuthenticatedHandlerFunc) http.HandlerFunc {
	return a.wrap(a.gate.TryAuthenticate, next)
}

func (a *Auth) wrap(resolve func(*http.Request) (*auth.AuthenticatedRequest, error), next AuthenticatedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := resolve(r)
		if err != nil {
			if errors.Is(err, auth.ErrUnauthenticated) {
				writeError(w, msgUnauthorized, http.StatusUnauthorized)
				return
			}
			// Недоступное хранилище это не "не найдено"
			a.logger.ErrorContext(r.Context(), "failed to authenticate request", slog.Any("error", err))
			writeError(w, msgInternalError, http.StatusInternalServerError)
			return
		}

		if req.User != nil {
			a.logger.DebugContext(r.Context(), "User authenticated", slog.String("user_id", req.User.ID))
		}

		next(w, req)
	}
}
