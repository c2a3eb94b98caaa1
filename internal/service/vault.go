// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vaultlocker/vaultlocker/internal/crypto"
	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/internal/session"
	"github.com/vaultlocker/vaultlocker/internal/store"
	"github.com/vaultlocker/vaultlocker/models"
)

// vaultService is the background-process implementation of [VaultAPI]: the
// sole reader and writer of the vault store. Secrets are encrypted before
// every write and decrypted only when the secrets listing asks for them.
type vaultService struct {
	store    store.VaultStore
	resolver session.Resolver
	cipher   crypto.Cipher
	logger   *logger.Logger

	userLocks *keyedMutex
	newID     func() string
}

// NewVaultService constructs the vault service.
func NewVaultService(vaultStore store.VaultStore, resolver session.Resolver, cipher crypto.Cipher, log *logger.Logger) VaultAPI {
	return &vaultService{
		store:     vaultStore,
		resolver:  resolver,
		cipher:    cipher,
		logger:    log,
		userLocks: newKeyedMutex(),
		newID:     newRecordID,
	}
}

// newRecordID generates a time-ordered unique record id, falling back to a
// random one if the monotonic source fails.
func newRecordID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// Save implements [VaultAPI]. Only the password goes inside the envelope;
// site and username stay plaintext metadata in the current generation.
func (s *vaultService) Save(ctx context.Context, explicitUserID string, input models.CredentialInput) (models.Credential, error) {
	log := logger.FromContext(ctx)

	userID := s.resolver.ActiveUserID(ctx, explicitUserID)
	if userID == "" {
		return models.Credential{}, ErrNoActiveUser
	}

	env, err := s.cipher.Encrypt(models.SecretPayload{Password: input.Password})
	if err != nil {
		return models.Credential{}, fmt.Errorf("encrypt credential secret: %w", err)
	}

	record := models.Credential{
		ID:        s.newID(),
		Site:      input.Site,
		Username:  input.Username,
		Encrypted: &env,
	}

	unlock := s.userLocks.lock(userID)
	defer unlock()

	records, err := s.store.List(ctx, userID)
	if err != nil {
		return models.Credential{}, fmt.Errorf("read vault before save: %w", err)
	}

	if err := s.store.Put(ctx, userID, append(records, record)); err != nil {
		return models.Credential{}, err
	}

	log.Info().
		Str("user_id", userID).
		Str("credential_id", record.ID).
		Str("site", record.Site).
		Msg("credential saved")

	return record, nil
}

// List implements [VaultAPI].
func (s *vaultService) List(ctx context.Context, explicitUserID string) ([]models.DecryptedCredential, error) {
	userID := s.resolver.ActiveUserID(ctx, explicitUserID)
	if userID == "" {
		logger.FromContext(ctx).Warn().Msg("credential listing requested without active user")
		return []models.DecryptedCredential{}, nil
	}

	records, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list vault: %w", err)
	}

	listing := make([]models.DecryptedCredential, 0, len(records))
	for _, record := range records {
		listing = append(listing, models.DecryptedCredential{
			ID:       record.ID,
			Site:     record.Site,
			Username: record.Username,
		})
	}
	return listing, nil
}

// ListWithSecrets implements [VaultAPI]. A record that cannot be decrypted
// is dropped from the result, never surfaced as a partial error: one corrupt
// entry must not hide the rest of the vault.
func (s *vaultService) ListWithSecrets(ctx context.Context, explicitUserID string) ([]models.DecryptedCredential, error) {
	log := logger.FromContext(ctx)

	userID := s.resolver.ActiveUserID(ctx, explicitUserID)
	if userID == "" {
		return []models.DecryptedCredential{}, nil
	}

	records, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list vault: %w", err)
	}

	listing := make([]models.DecryptedCredential, 0, len(records))
	for _, record := range records {
		if record.Encrypted == nil || record.Encrypted.IsZero() {
			continue
		}

		var payload models.SecretPayload
		if err := s.cipher.Decrypt(*record.Encrypted, &payload); err != nil {
			var decErr *crypto.DecryptionError
			if errors.As(err, &decErr) {
				log.Warn().
					Str("user_id", userID).
					Str("credential_id", record.ID).
					Msg("skipping unreadable credential")
				continue
			}
			return nil, fmt.Errorf("decrypt credential %s: %w", record.ID, err)
		}

		listing = append(listing, models.DecryptedCredential{
			ID:       record.ID,
			Site:     record.Site,
			Username: record.Username,
			Password: payload.Password,
		})
	}

	return listing, nil
}

// Delete implements [VaultAPI]. Filtering an absent id leaves the list
// unchanged and reports success, so re-delivered deletes are harmless.
func (s *vaultService) Delete(ctx context.Context, explicitUserID, id string) error {
	log := logger.FromContext(ctx)

	userID := s.resolver.ActiveUserID(ctx, explicitUserID)
	if userID == "" {
		return ErrNoActiveUser
	}

	unlock := s.userLocks.lock(userID)
	defer unlock()

	records, err := s.store.List(ctx, userID)
	if err != nil {
		return fmt.Errorf("read vault before delete: %w", err)
	}

	filtered := make([]models.Credential, 0, len(records))
	for _, record := range records {
		if record.ID != id {
			filtered = append(filtered, record)
		}
	}

	if err := s.store.Put(ctx, userID, filtered); err != nil {
		return err
	}

	log.Info().
		Str("user_id", userID).
		Str("credential_id", id).
		Int("remaining", len(filtered)).
		Msg("credential deleted")

	return nil
}
