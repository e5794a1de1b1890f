// Package repository defines error types that are reused across the
// data access layer. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific errors.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no rows, for example
// requesting the latest measurement of a user that has none. Handlers
// should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
