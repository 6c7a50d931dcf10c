package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoCachedAccount = errors.New("no cached account available for silent sign-in")
	ErrEmptyToken      = errors.New("identity provider returned an empty id token")
)

// AuthError wraps a failed token acquisition with the stage that failed
type AuthError struct {
	Err   error
	Stage TokenSource
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s token acquisition failed: %v", e.Stage, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// APIError wraps a request that never produced an HTTP response
type APIError struct {
	Err       error
	Method    string
	URL       string
	Operation string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s failed during %s: %v", e.Method, e.URL, e.Operation, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
