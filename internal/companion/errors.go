package companion

import "errors"

var (
	// ErrUnknownMethod is returned for a channel method the companion does
	// not serve.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrImageNotFound is returned when the requested image does not exist.
	ErrImageNotFound = errors.New("image was not found")
)
