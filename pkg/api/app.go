package api

// StatusResponse представляет ответ GET /status.
// Имена полей сохранены для совместимости клиентов: redis это хранилище сессий, db документное хранилище.
type StatusResponse struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

// StatsResponse представляет ответ GET /stats
type StatsResponse struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}
