package session

import (
	"context"

	"github.com/vaultlocker/vaultlocker/models"
)

// Resolver determines the active user identity for a vault operation. It
// only ever reads session state; it never mutates it.
type Resolver interface {
	// ActiveUserID returns the identity governing the current operation.
	// An explicit caller-supplied id wins outright; otherwise the
	// persisted session user is consulted, then the session token's
	// subject claim. Returns "" when no identity is resolvable; callers
	// decide whether that is fatal (save, delete) or just means an empty
	// vault (list).
	ActiveUserID(ctx context.Context, explicit string) string
}

// Manager owns the session lifecycle: created on login/registration,
// mirrored across the page-level and extension-level storage areas for
// cross-context visibility, destroyed on logout.
type Manager interface {
	// Current returns the persisted session, preferring the
	// extension-level area. The zero Session (Valid() == false) means
	// nobody is logged in.
	Current(ctx context.Context) (models.Session, error)

	// Save persists token and user into both storage areas.
	Save(ctx context.Context, token string, user models.SessionUser) error

	// Clear removes the session from both areas and purges the departing
	// user's vault key along with the bare single-tenant fallback key.
	Clear(ctx context.Context) error
}
