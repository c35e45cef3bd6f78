package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	// ErrInternal marks a broken league invariant detected by a workflow.
	ErrInternal = errors.New("internal error")
)
