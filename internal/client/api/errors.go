package api

import "fmt"

// AuthError reports a rejected login. Message is the server-provided reason,
// or a generic fallback when the server sent none.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// FetchError reports a failed list or detail call: either a non-2xx response
// (StatusCode set, Err nil) or a transport failure (Err set, StatusCode 0).
type FetchError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
