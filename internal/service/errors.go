package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrMemberNotFound   = errors.New("member not found")
	ErrTestTypeNotFound = errors.New("test type not found")
	ErrUploadConflict   = errors.New("a result file already exists for this member, type and date")
)

// InvalidInputError rejects a single input field before any store I/O.
type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	return "invalid " + e.Field
}

// BookkeepingError wraps a relational failure that occurred after the result
// file was uploaded. By the time the caller sees it, the compensating delete
// has already been attempted.
type BookkeepingError struct {
	Err error
}

func (e *BookkeepingError) Error() string {
	return fmt.Sprintf("bookkeeping failed: %v", e.Err)
}

func (e *BookkeepingError) Unwrap() error {
	return e.Err
}
