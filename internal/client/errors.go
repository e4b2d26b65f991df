package client

import "errors"

var (
	// ErrUnknownPage is returned by Run for a page the App cannot serve.
	ErrUnknownPage = errors.New("unknown page")
	// ErrFetchNotStarted is returned when an update page could not open its
	// fetch session.
	ErrFetchNotStarted = errors.New("fetch session was not started")
)
