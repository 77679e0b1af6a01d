package errors

import "fmt"

// ErrorCode represents a repvault error code.
type ErrorCode string

const (
	ErrNoVault        ErrorCode = "NO_VAULT"        // 412 — no vault configured
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404
	ErrReadFailed     ErrorCode = "READ_FAILED"     // 500
	ErrWriteFailed    ErrorCode = "WRITE_FAILED"    // 500
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// VaultError represents a structured error with code, status, and details.
type VaultError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *VaultError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewNoVault creates a 412 error for when no vault folder is configured.
// Fatal to any I/O, surfaced to the caller immediately, never retried.
func NewNoVault() *VaultError {
	return &VaultError{
		Code:    ErrNoVault,
		Status:  412,
		Message: "no vault folder configured; set vault in config or pass --vault",
	}
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *VaultError {
	return &VaultError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a missing file or folder.
func NewNotFound(relPath string) *VaultError {
	return &VaultError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("not found in vault: %s", relPath),
		Details: map[string]any{"path": relPath},
	}
}

// NewReadFailed creates a 500 error for an unreadable file.
func NewReadFailed(relPath string, err error) *VaultError {
	return &VaultError{
		Code:    ErrReadFailed,
		Status:  500,
		Message: fmt.Sprintf("could not read %s: %v", relPath, err),
		Details: map[string]any{"path": relPath},
	}
}

// NewWriteFailed creates a 500 error for a failed write.
// Write failures abort the remaining steps of a save and are user-visible.
func NewWriteFailed(relPath string, err error) *VaultError {
	return &VaultError{
		Code:    ErrWriteFailed,
		Status:  500,
		Message: fmt.Sprintf("could not write %s: %v", relPath, err),
		Details: map[string]any{"path": relPath},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *VaultError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &VaultError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a VaultError with the given code.
func Is(err error, code ErrorCode) bool {
	if vErr, ok := err.(*VaultError); ok {
		return vErr.Code == code
	}
	return false
}
