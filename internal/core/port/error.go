package port

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrUnknownKind    = errors.New("unknown record kind")
	ErrInvalidPayload = errors.New("invalid payload")
)
