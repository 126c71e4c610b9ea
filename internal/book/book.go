package book

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotFound is returned when no book matches the requested id.
var ErrNotFound = errors.New("book not found")

// ErrInvalidID is returned when an identifier cannot be used as a book id.
var ErrInvalidID = errors.New("invalid book id")

// Book represents a book entity.
type Book struct {
	ID     int64
	Title  string
	Author string
	Notes  string
}

// BackendError wraps a failed query. Op names the repository operation.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("book %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// IsBackendFailure reports whether err came from the store rather than from a lookup miss.
func IsBackendFailure(err error) bool {
	var be *BackendError
	return errors.As(err, &be)
}

// ParseID converts a path or form value into a book id.
func ParseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
