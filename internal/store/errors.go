package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the stores. Handlers map these onto HTTP
// status codes; callers should match with errors.Is.
var (
	ErrNotFound           = errors.New("record not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrForbidden          = errors.New("operation not permitted")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyTitle         = errors.New("title must not be empty")
)

// PartialDeleteError reports a media delete where the database row was
// removed but the content file was not. The row is gone, so the delete is
// not retriable through the normal path; callers must reconcile the upload
// directory instead of treating this as a plain failure.
type PartialDeleteError struct {
	MediaID    uint   // Deleted media row id
	StoredName string // Content reference left behind on disk
	Err        error  // Underlying removal error
}

func (e *PartialDeleteError) Error() string {
	return fmt.Sprintf("media %d deleted but content %q not removed: %v", e.MediaID, e.StoredName, e.Err)
}

func (e *PartialDeleteError) Unwrap() error {
	return e.Err
}
