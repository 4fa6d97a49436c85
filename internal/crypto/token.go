package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenSize размер случайной части сессионного токена в байтах
const TokenSize = 32

// GenerateToken создает непрозрачный случайный токен (base64url без паддинга)
func GenerateToken() (string, error) {
	b := make([]byte, TokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
