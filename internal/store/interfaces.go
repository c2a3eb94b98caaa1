package store

import (
	"context"

	"github.com/vaultlocker/vaultlocker/models"
)

// VaultStore is the persistence layer for credential records. It owns the
// storage key layout across all schema generations; nothing else reads or
// writes keys matching credentials* or users.
type VaultStore interface {
	// List returns the user's raw credential records, trying the
	// current-generation key first and falling back to legacy layouts when
	// it is empty. Reads never rewrite legacy data.
	List(ctx context.Context, userID string) ([]models.Credential, error)

	// Put replaces the user's vault with records, always under the
	// current-generation key.
	Put(ctx context.Context, userID string, records []models.Credential) error

	// CredentialsKey returns the storage key of the user's vault:
	// credentials_<userID>, or the bare single-tenant key when userID is
	// empty.
	CredentialsKey(userID string) string
}
