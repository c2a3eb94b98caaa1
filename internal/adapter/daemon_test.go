// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/models"
)

func newTestDaemonClient(t *testing.T, serverURL string) *DaemonClient {
	t.Helper()

	client, err := NewDaemonClient(DaemonConfig{Address: serverURL}, logger.Nop())
	require.NoError(t, err)
	return client
}

func TestDaemonClient_Save(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/vault/message", r.URL.Path)

		var env map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&env))
		assert.JSONEq(t, `"SAVE_CREDENTIAL"`, string(env["type"]))
		assert.JSONEq(t, `{"site":"example.com","username":"alice","password":"pw"}`, string(env["data"]))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","data":{"id":"c-1","site":"example.com","username":"alice"}}`))
	}))
	defer srv.Close()

	client := newTestDaemonClient(t, srv.URL)
	saved, err := client.Save(context.Background(), "", models.CredentialInput{
		Site:     "example.com",
		Username: "alice",
		Password: "pw",
	})

	require.NoError(t, err)
	assert.Equal(t, "c-1", saved.ID)
	assert.Equal(t, "example.com", saved.Site)
}

func TestDaemonClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var env map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&env))
		assert.JSONEq(t, `"GET_CREDENTIALS"`, string(env["type"]))
		assert.JSONEq(t, `"u-1"`, string(env["userId"]))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","data":[{"id":"c-1","site":"example.com","username":"alice"}]}`))
	}))
	defer srv.Close()

	client := newTestDaemonClient(t, srv.URL)
	records, err := client.List(context.Background(), "u-1")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "c-1", records[0].ID)
	assert.Empty(t, records[0].Password)
}

func TestDaemonClient_ListWithSecrets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var env map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&env))
		assert.JSONEq(t, `"GET_CREDENTIALS_WITH_PASSWORD"`, string(env["type"]))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","data":[{"id":"c-1","site":"example.com","username":"alice","password":"pw"}]}`))
	}))
	defer srv.Close()

	client := newTestDaemonClient(t, srv.URL)
	records, err := client.ListWithSecrets(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "pw", records[0].Password)
}

func TestDaemonClient_ListEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	client := newTestDaemonClient(t, srv.URL)
	records, err := client.List(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestDaemonClient_Delete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var env map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&env))
		assert.JSONEq(t, `"DELETE_CREDENTIAL"`, string(env["type"]))
		assert.JSONEq(t, `"c-1"`, string(env["id"]))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	client := newTestDaemonClient(t, srv.URL)
	require.NoError(t, client.Delete(context.Background(), "", "c-1"))
}

func TestDaemonClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"error","error":"no active user"}`))
	}))
	defer srv.Close()

	client := newTestDaemonClient(t, srv.URL)
	_, err := client.List(context.Background(), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no active user")
}

func TestDaemonClient_IgnoredStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ignored"}`))
	}))
	defer srv.Close()

	client := newTestDaemonClient(t, srv.URL)
	err := client.Delete(context.Background(), "", "c-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMessageIgnored)
}
