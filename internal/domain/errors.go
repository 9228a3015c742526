package domain

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrStorageFailure = errors.New("storage failure")
	ErrConflict       = errors.New("already exists")
	ErrForbidden      = errors.New("forbidden")
)
