package files

import "errors"

// ValidationError is a client-facing error of Create.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrMissingName     = &ValidationError{Message: "Missing name"}
	ErrMissingType     = &ValidationError{Message: "Missing type"}
	ErrMissingData     = &ValidationError{Message: "Missing data"}
	ErrInvalidData     = &ValidationError{Message: "Invalid data"}
	ErrParentNotFound  = &ValidationError{Message: "Parent not found"}
	ErrParentNotFolder = &ValidationError{Message: "Parent is not a folder"}
)

var (
	// ErrNotFound covers both missing nodes and nodes the caller may not see
	ErrNotFound = errors.New("file not found")

	// ErrFolderHasNoContent is returned when content of a folder is requested
	ErrFolderHasNoContent = errors.New("a folder doesn't have content")
)
