package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileArea_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	area, err := NewFileArea("")
	require.NoError(t, err)

	require.NoError(t, area.Set(ctx, map[string]any{
		"vault_token": "tok-123",
		"vault_user":  map[string]string{"id": "u1"},
	}))

	values, err := area.Get(ctx, "vault_token", "vault_user", "missing")
	require.NoError(t, err)
	assert.Len(t, values, 2)
	assert.JSONEq(t, `"tok-123"`, string(values["vault_token"]))
	assert.NotContains(t, values, "missing")

	require.NoError(t, area.Remove(ctx, "vault_token", "never-existed"))

	values, err = area.Get(ctx, "vault_token")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestFileArea_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "page-area.json")

	area, err := NewFileArea(path)
	require.NoError(t, err)
	require.NoError(t, area.Set(ctx, map[string]any{"credentials": []string{"a", "b"}}))

	reopened, err := NewFileArea(path)
	require.NoError(t, err)

	values, err := reopened.Get(ctx, "credentials")
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, string(values["credentials"]))
}

func TestFileArea_MissingFileIsEmpty(t *testing.T) {
	area, err := NewFileArea(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)

	values, err := area.Get(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestGetJSON(t *testing.T) {
	ctx := context.Background()
	area, err := NewFileArea("")
	require.NoError(t, err)

	require.NoError(t, area.Set(ctx, map[string]any{"n": json.RawMessage(`{"x":1}`)}))

	var target struct {
		X int `json:"x"`
	}
	found, err := GetJSON(ctx, area, "n", &target)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, target.X)

	found, err = GetJSON(ctx, area, "absent", &target)
	require.NoError(t, err)
	assert.False(t, found)
}
