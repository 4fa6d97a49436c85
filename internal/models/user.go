package models

import "time"

// User представляет пользователя в системе
type User struct {
	CreatedAt      time.Time `json:"created_at"` // время регистрации
	ID             string    `json:"id"`         // UUID пользователя
	Email          string    `json:"email"`      // уникальный email
	PasswordDigest string    `json:"-"`          // bcrypt хеш пароля, наружу не отдается
}

// Session представляет сессию, выданную при логине
type Session struct {
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	Token     string    `json:"-"`          // непрозрачный токен, ключ в хранилище
	UserID    string    `json:"user_id"`    // ID пользователя
}

// Expired сообщает, истекла ли сессия к моменту now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
