package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/filesmanager/internal/models"
	"github.com/iudanet/filesmanager/internal/server/auth"
	"github.com/iudanet/filesmanager/internal/server/files"
	"github.com/iudanet/filesmanager/pkg/api"
)

// FileService это часть files.Service, нужная обработчикам
type FileService interface {
	Create(ctx context.Context, ownerID string, params files.CreateParams) (*models.FileNode, error)
	GetOwned(ctx context.Context, id, callerID string) (*models.FileNode, error)
	List(ctx context.Context, callerID string, parent models.ParentRef, page int) ([]*models.FileNode, error)
	SetVisibility(ctx context.Context, id, callerID string, isPublic bool) (*models.FileNode, error)
	ReadContent(ctx context.Context, id string, caller *models.User, size string) (*files.Content, error)
}

// FileHandler обрабатывает запросы /files
type FileHandler struct {
	logger *slog.Logger
	files  FileService
}

// NewFileHandler создает handler файлов
func NewFileHandler(logger *slog.Logger, service FileService) *FileHandler {
	return &FileHandler{
		logger: logger,
		files:  service,
	}
}

// Create обрабатывает POST /files
func (h *FileHandler) Create(w http.ResponseWriter, r *auth.AuthenticatedRequest) {
	ctx := r.Context()

	var req api.CreateFileRequest
	if err := decodeJSON(w, r.Request, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode create file request", slog.Any("error", err))
		sendError(h.logger, w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	node, err := h.files.Create(ctx, r.User.ID, files.CreateParams{
		Name:     req.Name,
		Type:     req.Type,
		Data:     req.Data,
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	sendJSON(h.logger, w, api.NewFile(node), http.StatusCreated)
}

// Show обрабатывает GET /files/{id}
func (h *FileHandler) Show(w http.ResponseWriter, r *auth.AuthenticatedRequest) {
	ctx := r.Context()

	node, err := h.files.GetOwned(ctx, r.PathValue("id"), r.User.ID)
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	sendJSON(h.logger, w, api.NewFile(node), http.StatusOK)
}

// Index обрабатывает GET /files?parentId=&page=
func (h *FileHandler) Index(w http.ResponseWriter, r *auth.AuthenticatedRequest) {
	ctx := r.Context()
	query := r.URL.Query()

	parent := models.ParseParentRef(query.Get("parentId"))
	page := parsePage(query.Get("page"))

	nodes, err := h.files.List(ctx, r.User.ID, parent, page)
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	sendJSON(h.logger, w, api.NewFiles(nodes), http.StatusOK)
}

// Publish обрабатывает PUT /files/{id}/publish
func (h *FileHandler) Publish(w http.ResponseWriter, r *auth.AuthenticatedRequest) {
	h.setVisibility(w, r, true)
}

// Unpublish обрабатывает PUT /files/{id}/unpublish
func (h *FileHandler) Unpublish(w http.ResponseWriter, r *auth.AuthenticatedRequest) {
	h.setVisibility(w, r, false)
}

func (h *FileHandler) setVisibility(w http.ResponseWriter, r *auth.AuthenticatedRequest, isPublic bool) {
	ctx := r.Context()

	node, err := h.files.SetVisibility(ctx, r.PathValue("id"), r.User.ID, isPublic)
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	sendJSON(h.logger, w, api.NewFile(node), http.StatusOK)
}

// Data обрабатывает GET /files/{id}/data?size=
// Публичный файл доступен без авторизации, приватный только владельцу
func (h *FileHandler) Data(w http.ResponseWriter, r *auth.AuthenticatedRequest) {
	ctx := r.Context()

	c, err := h.files.ReadContent(ctx, r.PathValue("id"), r.User, r.URL.Query().Get("size"))
	if err != nil {
		h.sendServiceError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", c.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(c.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(c.Data); err != nil {
		h.logger.WarnContext(ctx, "failed to write file content", slog.Any("error", err))
	}
}

// sendServiceError переводит ошибки files.Service в HTTP ответ
func (h *FileHandler) sendServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *files.ValidationError
	switch {
	case errors.As(err, &verr):
		sendError(h.logger, w, verr.Message, http.StatusBadRequest)
	case errors.Is(err, files.ErrNotFound):
		sendError(h.logger, w, msgNotFound, http.StatusNotFound)
	case errors.Is(err, files.ErrFolderHasNoContent):
		sendError(h.logger, w, msgFolderNoContent, http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, "file operation failed", slog.Any("error", err))
		sendError(h.logger, w, msgInternalError, http.StatusInternalServerError)
	}
}

// parsePage разбирает номер страницы; мусор и отрицательные значения дают 0
func parsePage(s string) int {
	page, err := strconv.Atoi(s)
	if err != nil || page < 0 {
		return 0
	}
	return page
}
