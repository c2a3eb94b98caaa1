package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/vaultlocker/vaultlocker/models"
)

// VaultAPI is the four-operation surface of the vault. The background
// service implements it in-process; UI contexts reach the same surface
// through the daemon client, so the reconciler never cares which side of the
// message channel it is on.
//
// explicitUserID overrides session resolution when non-empty; "" means
// "whoever is logged in".
type VaultAPI interface {
	// Save encrypts the password, generates a fresh id, and appends the
	// record to the active user's vault. Fails with ErrNoActiveUser when
	// no identity is resolvable.
	Save(ctx context.Context, explicitUserID string, input models.CredentialInput) (models.Credential, error)

	// List returns the metadata listing (id, site, username). No active
	// user means an empty listing, never an error.
	List(ctx context.Context, explicitUserID string) ([]models.DecryptedCredential, error)

	// ListWithSecrets returns fully decrypted records. Records that fail
	// to decrypt, or that carry no envelope, are silently skipped.
	ListWithSecrets(ctx context.Context, explicitUserID string) ([]models.DecryptedCredential, error)

	// Delete removes the record with the given id. A missing id is a
	// no-op success; a missing active user is ErrNoActiveUser.
	Delete(ctx context.Context, explicitUserID, id string) error
}

// RemoteVault is the slice of the remote account service the reconciler
// consumes: the credential listing of record and remote deletes. Records
// travel plaintext over the secured transport.
type RemoteVault interface {
	FetchCredentials(ctx context.Context, token string) ([]models.DecryptedCredential, error)
	DeleteCredential(ctx context.Context, id, token string) error
}
