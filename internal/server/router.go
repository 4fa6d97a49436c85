// Package server wires handlers, middleware and services into the HTTP surface.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/filesmanager/internal/server/auth"
	"github.com/iudanet/filesmanager/internal/server/files"
	"github.com/iudanet/filesmanager/internal/server/handlers"
	"github.com/iudanet/filesmanager/internal/server/middleware"
	"github.com/iudanet/filesmanager/internal/server/users"
)

// Dependencies собранные в main компоненты
type Dependencies struct {
	Logger        *slog.Logger
	Gate          *auth.Gate
	Sessions      *auth.SessionManager
	Users         *users.Directory
	Files         *files.Service
	SessionStore  handlers.Pinger
	Database      handlers.Pinger
	AuthRateLimit int // запросов в минуту на IP для /connect и POST /users, 0 отключает
}

// NewRouter returns the HTTP handler and a function releasing background resources.
func NewRouter(deps Dependencies) (http.Handler, func()) {
	logger := deps.Logger

	appHandler := handlers.NewAppHandler(logger, deps.SessionStore, deps.Database, deps.Users, deps.Files)
	userHandler := handlers.NewUserHandler(logger, deps.Users)
	authHandler := handlers.NewAuthHandler(logger, deps.Gate, deps.Sessions)
	fileHandler := handlers.NewFileHandler(logger, deps.Files)

	authMW := middleware.NewAuth(logger, deps.Gate)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /status", appHandler.Status)
	mux.HandleFunc("GET /stats", appHandler.Stats)

	mux.HandleFunc("POST /users", userHandler.Create)
	mux.HandleFunc("GET /users/me", authMW.Require(userHandler.Me))

	mux.HandleFunc("GET /connect", authHandler.Connect)
	mux.HandleFunc("GET /disconnect", authMW.RequireSession(authHandler.Disconnect))

	mux.HandleFunc("POST /files", authMW.RequireSession(fileHandler.Create))
	mux.HandleFunc("GET /files", authMW.RequireSession(fileHandler.Index))
	mux.HandleFunc("GET /files/{id}", authMW.RequireSession(fileHandler.Show))
	mux.HandleFunc("PUT /files/{id}/publish", authMW.RequireSession(fileHandler.Publish))
	mux.HandleFunc("PUT /files/{id}/unpublish", authMW.RequireSession(fileHandler.Unpublish))
	mux.HandleFunc("GET /files/{id}/data", authMW.Optional(fileHandler.Data))

	rateLimit, stop := middleware.RateLimit(logger,
		middleware.RateLimitRule{Route: "GET /connect", Rate: deps.AuthRateLimit, Window: time.Minute},
		middleware.RateLimitRule{Route: "POST /users", Rate: deps.AuthRateLimit, Window: time.Minute},
	)

	var handler http.Handler = mux
	handler = rateLimit(handler)
	handler = middleware.AccessLog(logger, "/status")(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler, stop
}
