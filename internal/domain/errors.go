package domain

import "fmt"

// AuthError means the upstream access token could not be acquired or
// refreshed. It aborts the whole worker tick; the queue position is preserved
// and retried unchanged on the next tick.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("upstream auth: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// FetchError means one specific upstream endpoint call failed. It aborts only
// the current content-type sub-task; other types and cities proceed.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MissingFieldError is returned by payload accessors when the cached snapshot
// lacks a field the pipeline needs. Callers branch on it explicitly instead
// of null-coalescing.
type MissingFieldError struct {
	ContentType ContentType
	Field       string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("payload for %s missing field %q", e.ContentType, e.Field)
}
