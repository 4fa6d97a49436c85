package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrFileNotFound indicates that file node was not found (or is not owned by the caller)
	ErrFileNotFound = errors.New("file not found")

	// ErrSessionNotFound indicates that session token was never issued or has expired
	ErrSessionNotFound = errors.New("session not found")

	// ErrTokenExists indicates that a session with the same token is already stored
	ErrTokenExists = errors.New("session token already exists")
)
