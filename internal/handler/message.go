// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/internal/utils"
	"github.com/vaultlocker/vaultlocker/models"
)

// maxMessageBytes bounds a single protocol message. Credential payloads are
// tiny; anything near this limit is not a client of ours.
const maxMessageBytes = 1 << 20

// message is the single protocol endpoint. Every answer is HTTP 200 with a
// tagged body: transport success and operation outcome are separate layers,
// and a sender of an unknown message must receive "ignored", not a 4xx.
func (h *Handler) message(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxMessageBytes))
	if err != nil {
		log.Err(err).Msg("reading message body failed")
		utils.WriteJSON(w, models.ErrorResponse(err), http.StatusOK)
		return
	}

	req, err := models.DecodeRequest(body)
	if err != nil {
		if errors.Is(err, models.ErrUnknownMessage) || errors.Is(err, models.ErrMalformedMessage) {
			log.Warn().Err(err).Msg("ignoring unrecognized message")
			utils.WriteJSON(w, models.IgnoredResponse(), http.StatusOK)
			return
		}
		log.Err(err).Msg("undecodable message body")
		utils.WriteJSON(w, models.IgnoredResponse(), http.StatusOK)
		return
	}

	resp := h.Dispatch(ctx, req)
	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
