// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/internal/session"
	"github.com/vaultlocker/vaultlocker/models"
)

// Reconciler is the UI-side merge of the locally cached vault with the
// remote service of record. It owns an explicit session snapshot and a
// credential cache: created on bootstrap, replaced on login/logout,
// invalidated on every sync. There is no module-level state.
type Reconciler struct {
	vault    VaultAPI
	remote   RemoteVault
	sessions session.Manager
	logger   *logger.Logger

	mu      sync.RWMutex
	session models.Session
	cache   []models.DecryptedCredential
}

// NewReconciler constructs a Reconciler. Call Bootstrap before the first
// Load so the session snapshot is populated.
func NewReconciler(vault VaultAPI, remote RemoteVault, sessions session.Manager, log *logger.Logger) *Reconciler {
	return &Reconciler{
		vault:    vault,
		remote:   remote,
		sessions: sessions,
		logger:   log,
	}
}

// Bootstrap hydrates the session snapshot from persisted storage.
func (r *Reconciler) Bootstrap(ctx context.Context) (models.Session, error) {
	current, err := r.sessions.Current(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("bootstrap session: %w", err)
	}

	r.mu.Lock()
	r.session = current
	r.cache = nil
	r.mu.Unlock()

	return current, nil
}

// ReplaceSession swaps the session snapshot (login/logout) and drops the
// cache, which belonged to the previous identity.
func (r *Reconciler) ReplaceSession(s models.Session) {
	r.mu.Lock()
	r.session = s
	r.cache = nil
	r.mu.Unlock()
}

// Session returns the current session snapshot.
func (r *Reconciler) Session() models.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.session
}

// Cached returns the credential list from the last Load, as a copy.
func (r *Reconciler) Cached() []models.DecryptedCredential {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.DecryptedCredential(nil), r.cache...)
}

// Merge combines the local and remote credential lists keyed by id. Local
// order is preserved; a remote record with a known id replaces the local one
// in place, and remote-only records are appended. Records present only
// locally (not yet synced) survive.
func Merge(local, remote []models.DecryptedCredential) []models.DecryptedCredential {
	merged := make([]models.DecryptedCredential, 0, len(local)+len(remote))
	index := make(map[string]int, len(local))

	for _, cred := range local {
		if cred.ID == "" {
			continue
		}
		index[cred.ID] = len(merged)
		merged = append(merged, cred)
	}

	for _, cred := range remote {
		if cred.ID == "" {
			continue
		}
		if at, ok := index[cred.ID]; ok {
			merged[at] = cred
			continue
		}
		index[cred.ID] = len(merged)
		merged = append(merged, cred)
	}

	return merged
}

// Load fetches the local listing, overlays the remote listing when a session
// token exists, and refreshes the cache with the result. Remote failures and
// timeouts degrade to local-only data; a vault failure degrades to whatever
// the remote returns. Load never fails the UI.
func (r *Reconciler) Load(ctx context.Context) []models.DecryptedCredential {
	local, err := r.vault.List(ctx, "")
	if err != nil {
		r.logger.Error().Err(err).Msg("could not read credentials from vault service")
		local = nil
	}

	merged := local
	if token := r.Session().Token; token != "" {
		remote, err := r.remote.FetchCredentials(ctx, token)
		switch {
		case err != nil:
			r.logger.Warn().Err(err).Msg("remote fetch failed, using local credentials only")
		case len(remote) > 0:
			merged = Merge(local, remote)
		}
	}

	r.mu.Lock()
	r.cache = merged
	r.mu.Unlock()

	return append([]models.DecryptedCredential(nil), merged...)
}

// Delete fans a delete out to both stores: remote first, local always.
// A remote failure is logged, never fatal: the UI must not keep showing a
// record the user deleted. The next Load converges the two stores: the
// remote either still lists the record (to be deleted again) or has dropped
// it.
func (r *Reconciler) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}

	if token := r.Session().Token; token != "" {
		if err := r.remote.DeleteCredential(ctx, id, token); err != nil {
			r.logger.Warn().Err(err).Str("credential_id", id).Msg("remote delete failed, deleting locally anyway")
		}
	}

	if err := r.vault.Delete(ctx, "", id); err != nil {
		return fmt.Errorf("delete credential locally: %w", err)
	}

	r.mu.Lock()
	filtered := r.cache[:0:0]
	for _, cred := range r.cache {
		if cred.ID != id {
			filtered = append(filtered, cred)
		}
	}
	r.cache = filtered
	r.mu.Unlock()

	return nil
}
