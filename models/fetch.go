package models

// FetchMode selects how a fetch session interacts with the user.
type FetchMode string

const (
	// FetchDisplay surfaces status messages and refreshes the view.
	FetchDisplay FetchMode = "display"
	// FetchSilent runs without interactive status and exits afterwards.
	FetchSilent FetchMode = "silent"
)
