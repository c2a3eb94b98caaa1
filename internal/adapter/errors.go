package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the remote service rejects the
	// session token. The caller should treat the session as expired.
	ErrUnauthorized = errors.New("remote service rejected the session")

	// ErrNotFound is returned for operations targeting a record the
	// remote service does not know.
	ErrNotFound = errors.New("remote record not found")

	// ErrRemoteUnavailable covers network failures, timeouts, and 5xx
	// answers. Callers fall back to local-only data; nothing blocks on it.
	ErrRemoteUnavailable = errors.New("remote service unavailable")

	// ErrMessageIgnored is returned by the daemon client when the vault
	// service answered {status:"ignored"}: the two sides disagree about
	// the protocol, which is a bug, not a user error.
	ErrMessageIgnored = errors.New("vault service ignored the message")
)
