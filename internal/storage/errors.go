package storage

import "errors"

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("resource not found")

// ErrUnavailable wraps every other store failure (connection, timeout,
// constraint, scan). Callers treat it as an internal error.
var ErrUnavailable = errors.New("store unavailable")
