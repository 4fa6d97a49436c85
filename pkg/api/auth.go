package api

// CreateUserRequest представляет запрос на регистрацию (POST /users)
type CreateUserRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде, хранится только bcrypt хеш
}

// UserResponse представляет публичные данные пользователя
type UserResponse struct {
	ID    string `json:"id"`    // UUID пользователя
	Email string `json:"email"` // email пользователя
}

// TokenResponse представляет ответ GET /connect
type TokenResponse struct {
	Token string `json:"token"` // непрозрачный сессионный токен
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"` // сообщение для клиента
}
