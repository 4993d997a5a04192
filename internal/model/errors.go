package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")

	// ErrConflict marks a losing concurrent write: the record the caller
	// observed changed before the conditional update applied. Retryable
	// after re-resolving state.
	ErrConflict = errors.New("conflict")

	// ErrInvalidRange marks malformed query bounds. Not retryable without
	// the caller fixing the input.
	ErrInvalidRange = errors.New("invalid range")

	// ErrUnavailable marks a store I/O failure or timeout. For mutations the
	// outcome is ambiguous: the write may or may not have applied.
	ErrUnavailable = errors.New("unavailable")
)

func NewError(model string, err error) error {
	return fmt.Errorf("%s: %w", strings.ToLower(model), err)
}
