package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors shared across layers.
var (
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrSubmissionInProgress = errors.New("submission already in progress")
)

// GenericFailureMessage is the only detail shown to callers when an upload or
// write fails.
const GenericFailureMessage = "Terjadi kesalahan di server!"

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

// Fields returns the invalid field names in sorted order.
func (f FieldErrors) Fields() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidationError is returned when a submission fails the validation schema.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields.Fields(), ", ")
}

// UploadError is returned when a file could not be written to blob storage or
// its public URL could not be resolved.
type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.Key, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// OperationError wraps an upload or persistence failure of a user action.
// Callers only ever see GenericFailureMessage.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *OperationError) Unwrap() error { return e.Err }

// Message returns the text safe to show to the user.
func (e *OperationError) Message() string { return GenericFailureMessage }
