// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

// Package handler exposes the vault protocol over HTTP: one message endpoint
// carrying the tagged request/response envelope, plus a health probe.
package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/internal/service"
)

type Handler struct {
	vault service.VaultAPI

	logger *logger.Logger
}

func NewHandler(vault service.VaultAPI, logger *logger.Logger) *Handler {
	logger.Info().Msg("vault message handler created")
	return &Handler{
		vault:  vault,
		logger: logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Post("/api/vault/message", h.message)
	router.Get("/health", h.health)

	return router
}
