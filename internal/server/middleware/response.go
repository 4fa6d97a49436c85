package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/filesmanager/pkg/api"
)

// Сообщения об ошибках, которые видит клиент
const (
	msgUnauthorized  = "Unauthorized"
	msgInternalError = "Internal server error"
	msgTooMany       = "Too many requests"
)

// writeError отправляет {"error": message} с заданным статусом
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: message})
}
