package adapter

import "errors"

var (
	// ErrDisconnected means the companion could not be reached.
	ErrDisconnected = errors.New("companion is not connected")
	// ErrTimeout means no response arrived within the request deadline.
	ErrTimeout = errors.New("companion request timed out")
	// ErrApplication means the companion answered with an embedded error.
	ErrApplication = errors.New("companion application error")
	// ErrMalformedResponse means the response envelope could not be decoded.
	ErrMalformedResponse = errors.New("malformed companion response")
)

// HTTP status errors returned by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("request signature rejected")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("companion internal error")
)
