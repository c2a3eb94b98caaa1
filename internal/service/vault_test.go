package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultlocker/vaultlocker/internal/crypto"
	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/internal/session"
	"github.com/vaultlocker/vaultlocker/internal/storage"
	"github.com/vaultlocker/vaultlocker/internal/store"
	"github.com/vaultlocker/vaultlocker/models"
)

// vaultFixture wires a full in-memory stack: storage areas, vault store,
// session manager, resolver, and the service under test.
type vaultFixture struct {
	svc      VaultAPI
	store    store.VaultStore
	sessions session.Manager
	cipher   crypto.Cipher
}

func newVaultFixture(t *testing.T) *vaultFixture {
	t.Helper()

	extension, err := storage.NewFileArea("")
	require.NoError(t, err)
	page, err := storage.NewFileArea("")
	require.NoError(t, err)

	cipher := crypto.NewCipher()
	vaultStore := store.NewVaultStore(extension, cipher, logger.Nop())
	sessions := session.NewManager(extension, page, vaultStore, logger.Nop())
	resolver := session.NewResolver(sessions, logger.Nop())

	return &vaultFixture{
		svc:      NewVaultService(vaultStore, resolver, cipher, logger.Nop()),
		store:    vaultStore,
		sessions: sessions,
		cipher:   cipher,
	}
}

func (f *vaultFixture) login(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, f.sessions.Save(context.Background(), "test-token", models.SessionUser{ID: models.StringlyID(userID)}))
}

func TestVaultService_SaveThenListWithSecrets(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.login(t, "u1")

	saved, err := f.svc.Save(ctx, "", models.CredentialInput{
		Site:     "example.com",
		Username: "alice",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	require.NotNil(t, saved.Encrypted)

	listing, err := f.svc.ListWithSecrets(ctx, "")
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, saved.ID, listing[0].ID)
	assert.Equal(t, "example.com", listing[0].Site)
	assert.Equal(t, "alice", listing[0].Username)
	assert.Equal(t, "hunter2", listing[0].Password)
}

func TestVaultService_SaveGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.login(t, "u1")

	first, err := f.svc.Save(ctx, "", models.CredentialInput{Site: "a", Password: "p"})
	require.NoError(t, err)
	second, err := f.svc.Save(ctx, "", models.CredentialInput{Site: "a", Password: "p"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestVaultService_SaveWithoutUserFails(t *testing.T) {
	f := newVaultFixture(t)

	_, err := f.svc.Save(context.Background(), "", models.CredentialInput{Site: "x", Password: "p"})
	assert.ErrorIs(t, err, ErrNoActiveUser)
}

func TestVaultService_DeleteWithoutUserFails(t *testing.T) {
	f := newVaultFixture(t)

	err := f.svc.Delete(context.Background(), "", "some-id")
	assert.ErrorIs(t, err, ErrNoActiveUser)
}

func TestVaultService_ListWithoutUserIsEmptyNotError(t *testing.T) {
	f := newVaultFixture(t)

	listing, err := f.svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, listing)

	withSecrets, err := f.svc.ListWithSecrets(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, withSecrets)
}

func TestVaultService_ExplicitUserOverridesSession(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.login(t, "session-user")

	_, err := f.svc.Save(ctx, "explicit-user", models.CredentialInput{Site: "x", Password: "p"})
	require.NoError(t, err)

	sessionListing, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, sessionListing, "session user's vault must stay empty")

	explicitListing, err := f.svc.List(ctx, "explicit-user")
	require.NoError(t, err)
	assert.Len(t, explicitListing, 1)
}

func TestVaultService_NamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)

	_, err := f.svc.Save(ctx, "alice", models.CredentialInput{Site: "a.example.com", Password: "pa"})
	require.NoError(t, err)

	listing, err := f.svc.List(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, listing)
}

func TestVaultService_ListHidesSecrets(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.login(t, "u1")

	_, err := f.svc.Save(ctx, "", models.CredentialInput{Site: "x", Username: "u", Password: "secret"})
	require.NoError(t, err)

	listing, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Empty(t, listing[0].Password)
}

func TestVaultService_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.login(t, "u1")

	saved, err := f.svc.Save(ctx, "", models.CredentialInput{Site: "x", Password: "p"})
	require.NoError(t, err)

	// Deleting an id that never existed succeeds and changes nothing.
	require.NoError(t, f.svc.Delete(ctx, "", "no-such-id"))
	listing, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, listing, 1)

	// First real delete removes the record; a re-delivered delete is a
	// no-op success.
	require.NoError(t, f.svc.Delete(ctx, "", saved.ID))
	require.NoError(t, f.svc.Delete(ctx, "", saved.ID))

	listing, err = f.svc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, listing)
}

func TestVaultService_PartialCorruptionResilience(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.login(t, "u1")

	for _, site := range []string{"one.example.com", "two.example.com", "three.example.com"} {
		_, err := f.svc.Save(ctx, "", models.CredentialInput{Site: site, Password: "p-" + site})
		require.NoError(t, err)
	}

	// Corrupt the ciphertext of the middle record in place.
	records, err := f.store.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 3)
	records[1].Encrypted.Ciphertext[0] ^= 0xFF
	require.NoError(t, f.store.Put(ctx, "u1", records))

	listing, err := f.svc.ListWithSecrets(ctx, "")
	require.NoError(t, err)
	require.Len(t, listing, 2, "exactly the readable records, no error")
	assert.Equal(t, "one.example.com", listing[0].Site)
	assert.Equal(t, "three.example.com", listing[1].Site)

	// The metadata listing still shows all three.
	metadata, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, metadata, 3)
}

func TestVaultService_RecordWithoutEnvelopeSkippedInSecretsListing(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.login(t, "u1")

	require.NoError(t, f.store.Put(ctx, "u1", []models.Credential{
		{ID: "plain-1", Site: "plain.example.com", Username: "legacy"},
	}))

	metadata, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, metadata, 1)

	withSecrets, err := f.svc.ListWithSecrets(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, withSecrets)
}

func TestVaultService_ConcurrentSavesDoNotLoseRecords(t *testing.T) {
	ctx := context.Background()
	f := newVaultFixture(t)
	f.login(t, "u1")

	const writers = 8
	done := make(chan error, writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			_, err := f.svc.Save(ctx, "", models.CredentialInput{
				Site:     "concurrent.example.com",
				Password: "p",
			})
			done <- err
		}(i)
	}
	for i := 0; i < writers; i++ {
		require.NoError(t, <-done)
	}

	listing, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, listing, writers)
}
