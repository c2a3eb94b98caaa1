// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/vaultlocker/vaultlocker/internal/crypto"
	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/internal/storage"
	"github.com/vaultlocker/vaultlocker/models"
)

// Storage keys of the three on-disk schema generations. Generation 3 is the
// only one ever written; 1 and 2 are read-compatibility layouts.
const (
	// keyCredentials is the bare single-tenant key (generation 1) and the
	// resolved key when no user id is available.
	keyCredentials = "credentials"

	// keyCredentialsPrefix namespaces per-user vaults (generation 3).
	keyCredentialsPrefix = "credentials_"

	// keyUsers holds the nested users[id].vault layout (generation 2).
	keyUsers = "users"
)

// legacyUserEntry is one value of the generation-2 users map.
type legacyUserEntry struct {
	Vault []models.Credential `json:"vault"`
}

type vaultStore struct {
	area   storage.Area
	cipher crypto.Cipher
	logger *logger.Logger
}

// NewVaultStore constructs the VaultStore over the extension-level storage
// area. The cipher is needed only on the legacy read path, to backfill
// plaintext metadata out of fully-encrypted records.
func NewVaultStore(area storage.Area, cipher crypto.Cipher, log *logger.Logger) VaultStore {
	return &vaultStore{area: area, cipher: cipher, logger: log}
}

// SingleTenantKey returns the bare pre-multi-user vault key. The session
// manager purges it on logout alongside the per-user key.
func SingleTenantKey() string {
	return keyCredentials
}

// CredentialsKey implements [VaultStore].
func (s *vaultStore) CredentialsKey(userID string) string {
	if userID == "" {
		return keyCredentials
	}
	return keyCredentialsPrefix + userID
}

// List implements [VaultStore]. The read chain: current-generation key
// first; if and only if it is empty, the legacy nested layout. A missing
// backing store degrades to an empty vault.
func (s *vaultStore) List(ctx context.Context, userID string) ([]models.Credential, error) {
	records, err := s.readKey(ctx, s.CredentialsKey(userID))
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			s.logger.Warn().Str("user_id", userID).Msg("storage unavailable, treating vault as empty")
			return nil, nil
		}
		return nil, err
	}

	if len(records) > 0 || userID == "" {
		return records, nil
	}

	return s.readLegacyVault(ctx, userID)
}

// Put implements [VaultStore]. Writes always target the current-generation
// key; lazy migration means legacy layouts are left exactly as they were.
func (s *vaultStore) Put(ctx context.Context, userID string, records []models.Credential) error {
	if records == nil {
		records = []models.Credential{}
	}

	key := s.CredentialsKey(userID)
	if err := s.area.Set(ctx, map[string]any{key: records}); err != nil {
		s.logger.Err(err).
			Str("func", "vaultStore.Put").
			Str("user_id", userID).
			Msg("failed to persist vault")
		return fmt.Errorf("persist vault under %q: %w", key, err)
	}

	return nil
}

func (s *vaultStore) readKey(ctx context.Context, key string) ([]models.Credential, error) {
	var records []models.Credential
	if _, err := storage.GetJSON(ctx, s.area, key, &records); err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("read vault key %q: %w", key, err)
	}
	return records, nil
}

// readLegacyVault reads the generation-2 users[userID].vault list and
// opportunistically backfills missing site/username metadata by opening the
// legacy envelope, which covered the whole record. Backfill failures keep
// whatever plaintext is already there; the record still lists.
func (s *vaultStore) readLegacyVault(ctx context.Context, userID string) ([]models.Credential, error) {
	users := make(map[string]legacyUserEntry)
	found, err := storage.GetJSON(ctx, s.area, keyUsers, &users)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			return nil, nil
		}
		return nil, fmt.Errorf("read legacy users key: %w", err)
	}
	if !found {
		return nil, nil
	}

	vault := users[userID].Vault
	if len(vault) == 0 {
		return nil, nil
	}

	normalized := make([]models.Credential, 0, len(vault))
	for _, entry := range vault {
		record := models.Credential{
			ID:        entry.ID,
			Site:      entry.Site,
			Username:  entry.Username,
			Encrypted: entry.Encrypted,
		}

		if (record.Site == "" || record.Username == "") && entry.Encrypted != nil {
			var payload models.SecretPayload
			if err := s.cipher.Decrypt(*entry.Encrypted, &payload); err != nil {
				s.logger.Warn().
					Str("user_id", userID).
					Str("credential_id", entry.ID).
					Err(err).
					Msg("could not backfill legacy metadata")
			} else {
				if record.Site == "" {
					record.Site = payload.Site
				}
				if record.Username == "" {
					record.Username = payload.Username
				}
			}
		}

		normalized = append(normalized, record)
	}

	return normalized, nil
}
