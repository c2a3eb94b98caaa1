// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package handler

import (
	"context"

	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/models"
)

// Dispatch routes one decoded protocol message to the vault operation it
// names and wraps the outcome in a tagged response. The switch is exhaustive
// over the sealed request set; an unmatched variant would mean the protocol
// grew without the dispatcher noticing, so it answers "ignored" rather than
// guessing.
func (h *Handler) Dispatch(ctx context.Context, req models.Request) models.Response {
	log := logger.FromContext(ctx)

	switch r := req.(type) {
	case models.SaveCredentialRequest:
		saved, err := h.vault.Save(ctx, r.UserID, r.Data)
		if err != nil {
			log.Err(err).Str("site", r.Data.Site).Msg("save credential failed")
			return models.ErrorResponse(err)
		}
		return models.OKResponse(models.DecryptedCredential{
			ID:       saved.ID,
			Site:     saved.Site,
			Username: saved.Username,
		})

	case models.GetCredentialsRequest:
		records, err := h.vault.List(ctx, r.UserID)
		if err != nil {
			log.Err(err).Msg("list credentials failed")
			return models.ErrorResponse(err)
		}
		return models.OKResponse(records)

	case models.GetCredentialsWithPasswordRequest:
		records, err := h.vault.ListWithSecrets(ctx, r.UserID)
		if err != nil {
			log.Err(err).Msg("list credentials with secrets failed")
			return models.ErrorResponse(err)
		}
		return models.OKResponse(records)

	case models.DeleteCredentialRequest:
		if err := h.vault.Delete(ctx, r.UserID, r.ID); err != nil {
			log.Err(err).Str("id", r.ID).Msg("delete credential failed")
			return models.ErrorResponse(err)
		}
		return models.OKResponse(nil)

	default:
		log.Warn().Str("type", req.MessageType()).Msg("unhandled message variant")
		return models.IgnoredResponse()
	}
}
