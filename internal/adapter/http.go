// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/models"
)

// RemoteConfig configures the HTTP client of the account service.
type RemoteConfig struct {
	BaseURL string

	// Timeout bounds every remote call. When it fires the caller falls
	// back to local-only data; the in-flight request is abandoned, not
	// aborted server-side.
	Timeout time.Duration
}

const defaultRemoteTimeout = 3 * time.Second

type httpRemoteService struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPRemoteService constructs the HTTP/REST implementation of
// [RemoteService]. Returns an error if cfg.BaseURL cannot be parsed as a URL
// with scheme and host.
func NewHTTPRemoteService(cfg RemoteConfig, log *logger.Logger) (RemoteService, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid remote service address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRemoteTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpRemoteService{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteService) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/register")
	if err != nil {
		return AuthResponse{}, fmt.Errorf("register request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapRemoteError(resp); err != nil {
		return AuthResponse{}, err
	}

	var auth AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return AuthResponse{}, fmt.Errorf("decode register response: %w", err)
	}
	return auth, nil
}

func (h *httpRemoteService) Login(ctx context.Context, req LoginRequest) (AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/login")
	if err != nil {
		return AuthResponse{}, fmt.Errorf("login request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapRemoteError(resp); err != nil {
		return AuthResponse{}, err
	}

	var auth AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return AuthResponse{}, fmt.Errorf("decode login response: %w", err)
	}
	return auth, nil
}

func (h *httpRemoteService) Logout(ctx context.Context, token string) error {
	resp, err := h.authedRequest(ctx, token).Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w: %w", ErrRemoteUnavailable, err)
	}
	return mapRemoteError(resp)
}

func (h *httpRemoteService) Profile(ctx context.Context, token string) (models.SessionUser, error) {
	resp, err := h.authedRequest(ctx, token).Get("/auth/profile")
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("profile request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapRemoteError(resp); err != nil {
		return models.SessionUser{}, err
	}

	var user models.SessionUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.SessionUser{}, fmt.Errorf("decode profile response: %w", err)
	}
	return user, nil
}

func (h *httpRemoteService) RecoverPassword(ctx context.Context, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		Post("/auth/recover")
	if err != nil {
		return fmt.Errorf("recover request: %w: %w", ErrRemoteUnavailable, err)
	}
	return mapRemoteError(resp)
}

func (h *httpRemoteService) VerifyMasterPin(ctx context.Context, masterPin, token string) error {
	resp, err := h.authedRequest(ctx, token).
		SetBody(map[string]string{"masterPin": masterPin}).
		Post("/auth/verify-pin")
	if err != nil {
		return fmt.Errorf("verify pin request: %w: %w", ErrRemoteUnavailable, err)
	}
	return mapRemoteError(resp)
}

func (h *httpRemoteService) FetchCredentials(ctx context.Context, token string) ([]models.DecryptedCredential, error) {
	resp, err := h.authedRequest(ctx, token).Get("/credentials")
	if err != nil {
		return nil, fmt.Errorf("fetch credentials: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapRemoteError(resp); err != nil {
		return nil, err
	}

	var records []models.DecryptedCredential
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode credentials response: %w", err)
	}
	return records, nil
}

func (h *httpRemoteService) DeleteCredential(ctx context.Context, id, token string) error {
	resp, err := h.authedRequest(ctx, token).Delete("/credentials/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete credential: %w: %w", ErrRemoteUnavailable, err)
	}

	// A remote delete of an unknown id is as deleted as it gets.
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}
	return mapRemoteError(resp)
}

func (h *httpRemoteService) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
