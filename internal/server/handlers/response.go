package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/filesmanager/pkg/api"
)

// Сообщения об ошибках, которые видит клиент
const (
	msgUnauthorized    = "Unauthorized"
	msgNotFound        = "Not found"
	msgInternalError   = "Internal server error"
	msgInvalidBody     = "Invalid request body"
	msgFolderNoContent = "A folder doesn't have content"
)

// maxBodySize ограничение тела запроса (base64 содержимое файла)
const maxBodySize = 64 << 20

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой в виде {"error": message}
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	sendJSON(logger, w, api.ErrorResponse{Error: message}, statusCode)
}

// decodeJSON читает тело запроса в dst с ограничением размера
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	return json.NewDecoder(r.Body).Decode(dst)
}
