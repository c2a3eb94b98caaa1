package storage

import "errors"

// Sentinel errors returned by storage areas. Callers match them with
// [errors.Is].
var (
	// ErrAreaClosed is returned after Close when an operation is attempted
	// against a backing store that is no longer open.
	ErrAreaClosed = errors.New("storage area is closed")

	// ErrUnavailable is returned when the backing store cannot be reached
	// at all. Vault readers treat it as an empty vault rather than failing
	// the whole operation.
	ErrUnavailable = errors.New("storage unavailable")
)
