// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/models"
)

// DaemonConfig configures the client side of the vault message channel.
type DaemonConfig struct {
	Address string
	Timeout time.Duration
}

// DaemonClient is a UI context's end of the message channel: it encodes
// protocol messages, posts them to the background process, and decodes the
// tagged response. It exposes the same four-operation surface as the
// in-process vault service.
type DaemonClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewDaemonClient constructs a DaemonClient for the vaultd instance at
// cfg.Address.
func NewDaemonClient(cfg DaemonConfig, log *logger.Logger) (*DaemonClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid vault daemon address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRemoteTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &DaemonClient{client: client, logger: log}, nil
}

// wireResponse mirrors models.Response with the data still raw, so each
// operation can decode its own payload shape.
type wireResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func (c *DaemonClient) send(ctx context.Context, req models.Request) (wireResponse, error) {
	body, err := models.EncodeRequest(req)
	if err != nil {
		return wireResponse{}, err
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/api/vault/message")
	if err != nil {
		if isTimeout(err) {
			return wireResponse{}, fmt.Errorf("vault daemon: %w: %w", ErrRemoteUnavailable, err)
		}
		return wireResponse{}, fmt.Errorf("vault daemon request: %w", err)
	}
	if resp.IsError() {
		return wireResponse{}, fmt.Errorf("vault daemon answered %d", resp.StatusCode())
	}

	var wire wireResponse
	if err = json.Unmarshal(resp.Body(), &wire); err != nil {
		return wireResponse{}, fmt.Errorf("decode vault daemon response: %w", err)
	}

	switch wire.Status {
	case models.StatusOK:
		return wire, nil
	case models.StatusIgnored:
		return wireResponse{}, fmt.Errorf("%w: %s", ErrMessageIgnored, req.MessageType())
	default:
		return wireResponse{}, fmt.Errorf("vault daemon: %s", wire.Error)
	}
}

func isTimeout(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(err.Error(), "Client.Timeout")
}

// Save sends SAVE_CREDENTIAL and returns the stored record's metadata.
func (c *DaemonClient) Save(ctx context.Context, explicitUserID string, input models.CredentialInput) (models.Credential, error) {
	wire, err := c.send(ctx, models.SaveCredentialRequest{Data: input, UserID: explicitUserID})
	if err != nil {
		return models.Credential{}, err
	}

	var saved models.DecryptedCredential
	if len(wire.Data) > 0 {
		if err = json.Unmarshal(wire.Data, &saved); err != nil {
			return models.Credential{}, fmt.Errorf("decode saved credential: %w", err)
		}
	}
	return models.Credential{ID: saved.ID, Site: saved.Site, Username: saved.Username}, nil
}

// List sends GET_CREDENTIALS and returns the metadata listing.
func (c *DaemonClient) List(ctx context.Context, explicitUserID string) ([]models.DecryptedCredential, error) {
	wire, err := c.send(ctx, models.GetCredentialsRequest{UserID: explicitUserID})
	if err != nil {
		return nil, err
	}
	return decodeListing(wire.Data)
}

// ListWithSecrets sends GET_CREDENTIALS_WITH_PASSWORD and returns the fully
// decrypted listing.
func (c *DaemonClient) ListWithSecrets(ctx context.Context, explicitUserID string) ([]models.DecryptedCredential, error) {
	wire, err := c.send(ctx, models.GetCredentialsWithPasswordRequest{UserID: explicitUserID})
	if err != nil {
		return nil, err
	}
	return decodeListing(wire.Data)
}

// Delete sends DELETE_CREDENTIAL.
func (c *DaemonClient) Delete(ctx context.Context, explicitUserID, id string) error {
	_, err := c.send(ctx, models.DeleteCredentialRequest{ID: id, UserID: explicitUserID})
	return err
}

func decodeListing(raw json.RawMessage) ([]models.DecryptedCredential, error) {
	if len(raw) == 0 {
		return []models.DecryptedCredential{}, nil
	}
	var records []models.DecryptedCredential
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode credential listing: %w", err)
	}
	return records, nil
}
