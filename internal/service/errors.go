package service

import "errors"

var (
	// ErrNoActiveUser is returned by save and delete when neither an
	// explicit id nor the persisted session yields an identity. It is
	// fatal for that call only and is never retried by the service.
	ErrNoActiveUser = errors.New("no active user for vault operation")
)
