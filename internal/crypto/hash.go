package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost стоимость bcrypt для хранимых паролей
var PasswordCost = bcrypt.DefaultCost

// ErrPasswordMismatch возвращается, когда пароль не совпадает с хешем
var ErrPasswordMismatch = errors.New("invalid password")

// HashPassword возвращает bcrypt-хеш пароля для хранения в UserDirectory
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword сравнивает пароль с сохраненным хешем.
// bcrypt сравнивает хеши за постоянное время.
func VerifyPassword(password, digest string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if digest == "" {
		return fmt.Errorf("password digest cannot be empty")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}
