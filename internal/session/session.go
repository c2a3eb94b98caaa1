// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/internal/storage"
	"github.com/vaultlocker/vaultlocker/internal/store"
	"github.com/vaultlocker/vaultlocker/models"
)

// Storage keys of the persisted session, mirrored across both areas.
const (
	keyToken = "vault_token"
	keyUser  = "vault_user"
)

type manager struct {
	extension storage.Area
	page      storage.Area
	vault     store.VaultStore
	logger    *logger.Logger
}

// NewManager constructs the session Manager over the two storage areas. The
// vault store is consulted only for key layout when purging on logout.
func NewManager(extension, page storage.Area, vault store.VaultStore, log *logger.Logger) Manager {
	return &manager{extension: extension, page: page, vault: vault, logger: log}
}

// Current implements [Manager].
func (m *manager) Current(ctx context.Context) (models.Session, error) {
	for _, area := range []storage.Area{m.extension, m.page} {
		session, err := readSession(ctx, area)
		if err != nil {
			if errors.Is(err, storage.ErrUnavailable) {
				continue
			}
			return models.Session{}, err
		}
		if session.Token != "" || session.User != nil {
			return session, nil
		}
	}
	return models.Session{}, nil
}

func readSession(ctx context.Context, area storage.Area) (models.Session, error) {
	values, err := area.Get(ctx, keyToken, keyUser)
	if err != nil {
		return models.Session{}, err
	}

	var session models.Session
	if raw, ok := values[keyToken]; ok {
		if err := json.Unmarshal(raw, &session.Token); err != nil {
			return models.Session{}, fmt.Errorf("decode stored token: %w", err)
		}
	}
	if raw, ok := values[keyUser]; ok {
		user := &models.SessionUser{}
		if err := json.Unmarshal(raw, user); err != nil {
			return models.Session{}, fmt.Errorf("decode stored user: %w", err)
		}
		session.User = user
	}
	return session, nil
}

// Save implements [Manager]. Mirroring failures in one area do not prevent
// the other from being written; the first error is reported.
func (m *manager) Save(ctx context.Context, token string, user models.SessionUser) error {
	pairs := map[string]any{keyToken: token, keyUser: user}

	var firstErr error
	for _, area := range []storage.Area{m.extension, m.page} {
		if err := area.Set(ctx, pairs); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("persist session: %w", err)
		}
	}
	return firstErr
}

// Clear implements [Manager]. The departing user's vault key is purged along
// with the bare single-tenant fallback key, so a later login on a shared
// profile cannot surface someone else's fallback vault.
func (m *manager) Clear(ctx context.Context) error {
	current, err := m.Current(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Msg("could not read session before clearing")
	}

	keys := []string{keyToken, keyUser, store.SingleTenantKey()}
	if current.User != nil {
		if id := current.User.Identifier(); id != "" {
			keys = append(keys, m.vault.CredentialsKey(id))
		}
	}

	var firstErr error
	for _, area := range []storage.Area{m.extension, m.page} {
		if err := area.Remove(ctx, keys...); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("clear session: %w", err)
		}
	}
	return firstErr
}

type resolver struct {
	sessions Manager
	logger   *logger.Logger
}

// NewResolver constructs the Resolver reading through the session Manager.
func NewResolver(sessions Manager, log *logger.Logger) Resolver {
	return &resolver{sessions: sessions, logger: log}
}

// ActiveUserID implements [Resolver].
func (r *resolver) ActiveUserID(ctx context.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}

	session, err := r.sessions.Current(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Msg("could not read session while resolving user")
		return ""
	}

	if session.User != nil {
		if id := session.User.Identifier(); id != "" {
			return id
		}
	}

	// The user object carried no identifier; fall back to the token's
	// subject claim. The parse is unverified: this is an identity hint for
	// namespacing, not authentication.
	if session.Token != "" {
		if id := subjectFromToken(session.Token); id != "" {
			return id
		}
	}

	r.logger.Warn().Msg("no active user found in storage")
	return ""
}

func subjectFromToken(token string) string {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	return claims.Subject
}
