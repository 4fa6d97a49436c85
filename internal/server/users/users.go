// Package users implements the user directory: signup, lookup and
// password verification on top of storage.UserStorage.
package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/filesmanager/internal/crypto"
	"github.com/iudanet/filesmanager/internal/models"
	"github.com/iudanet/filesmanager/internal/server/storage"
	"github.com/iudanet/filesmanager/internal/validation"
)

// ValidationError is a client-facing signup error.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrMissingEmail    = &ValidationError{Message: "Missing email"}
	ErrMissingPassword = &ValidationError{Message: "Missing password"}
	ErrInvalidEmail    = &ValidationError{Message: "Invalid email"}
	ErrInvalidPassword = &ValidationError{Message: "Invalid password"}
	ErrAlreadyExists   = &ValidationError{Message: "Already exist"}
)

var (
	// ErrNotFound is returned when no user matches the lookup
	ErrNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned by Authenticate for an unknown email or wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Directory manages user records.
type Directory struct {
	logger  *slog.Logger
	storage storage.UserStorage
	now     func() time.Time
}

// NewDirectory creates a user directory.
func NewDirectory(logger *slog.Logger, userStorage storage.UserStorage) *Directory {
	return &Directory{
		logger:  logger,
		storage: userStorage,
		now:     time.Now,
	}
}

// Register creates a user with a bcrypt digest of password.
func (d *Directory) Register(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	email = validation.NormalizeEmail(email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, ErrInvalidPassword
	}

	digest, err := crypto.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	user := &models.User{
		ID:             id.String(),
		Email:          email,
		PasswordDigest: digest,
		CreatedAt:      d.now().UTC(),
	}

	if err := d.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	d.logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID))

	return user, nil
}

// GetByID returns the user with the given id or ErrNotFound.
func (d *Directory) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := d.storage.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// GetByEmail returns the user with the given email or ErrNotFound.
func (d *Directory) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := d.storage.GetUserByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// Authenticate verifies email and password.
// Unknown email and wrong password are both reported as ErrInvalidCredentials.
func (d *Directory) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := d.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := crypto.VerifyPassword(password, user.PasswordDigest); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	return user, nil
}

// Count returns the number of registered users.
func (d *Directory) Count(ctx context.Context) (int64, error) {
	n, err := d.storage.CountUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
