package directory

import (
	"context"
	"errors"
	"net"
)

// Error is the closed set of failures a location search can end in.
// Each value carries a fixed user-facing message.
type Error int

const (
	ErrNetwork Error = iota + 1
	ErrInvalidResponse
	ErrNoResults
	ErrInvalidQuery
	ErrRateLimit
	ErrServer
)

func (e Error) Error() string {
	switch e {
	case ErrNetwork:
		return "Unable to connect. Please check your internet connection."
	case ErrInvalidResponse:
		return "Received an invalid response from the server."
	case ErrNoResults:
		return "No locations found. Try a different search."
	case ErrInvalidQuery:
		return "Please enter a valid search term."
	case ErrRateLimit:
		return "Too many searches. Please wait a moment and try again."
	default:
		return "Something went wrong. Please try again later."
	}
}

// Code is a stable machine-readable name for e.
func (e Error) Code() string {
	switch e {
	case ErrNetwork:
		return "network"
	case ErrInvalidResponse:
		return "invalid_response"
	case ErrNoResults:
		return "no_results"
	case ErrInvalidQuery:
		return "invalid_query"
	case ErrRateLimit:
		return "rate_limit"
	default:
		return "server"
	}
}

// Classify maps any error onto the closed set. Errors already in the set are
// returned unchanged; timeouts and network errors become ErrNetwork and
// everything else ErrServer.
func Classify(err error) Error {
	var e Error
	if errors.As(err, &e) {
		return e
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return ErrNetwork
	}
	return ErrServer
}
