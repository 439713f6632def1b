package types

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the store, services and handlers.
// Wrap them with %w and test with errors.Is.
var (
	// ErrStorageRead is returned when a document is missing, unreadable or not valid JSON.
	ErrStorageRead = errors.New("storage read error")

	// ErrStorageWrite is returned when a document could not be persisted.
	ErrStorageWrite = errors.New("storage write error")

	// ErrNotFound is returned when the requested key is absent.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned for malformed pagination parameters or request bodies.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConflict is returned when a write would break a uniqueness rule.
	ErrConflict = errors.New("conflict")
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// IsStorageError reports whether err came from the persistence layer.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorageRead) || errors.Is(err, ErrStorageWrite)
}
