// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringlyID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want StringlyID
	}{
		{name: "string", raw: `"u-1"`, want: "u-1"},
		{name: "integer", raw: `42`, want: "42"},
		{name: "large integer", raw: `9007199254740993`, want: "9007199254740993"},
		{name: "float", raw: `1.5`, want: "1.5"},
		{name: "null", raw: `null`, want: ""},
		{name: "empty string", raw: `""`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id StringlyID
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &id))
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestSessionUser_Identifier(t *testing.T) {
	tests := []struct {
		name string
		user SessionUser
		want string
	}{
		{name: "id wins", user: SessionUser{ID: "a", LegacyID: "b", UID: "c", Email: "d"}, want: "a"},
		{name: "legacy id second", user: SessionUser{LegacyID: "b", UID: "c", Email: "d"}, want: "b"},
		{name: "uid third", user: SessionUser{UID: "c", Email: "d"}, want: "c"},
		{name: "email last", user: SessionUser{Email: "d"}, want: "d"},
		{name: "nothing", user: SessionUser{Name: "Alice"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.Identifier())
		})
	}
}

func TestSessionUser_NumericIDFromJSON(t *testing.T) {
	var user SessionUser
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"email":"alice@example.com"}`), &user))

	assert.Equal(t, "7", user.Identifier())
}

func TestSession_Valid(t *testing.T) {
	assert.False(t, Session{}.Valid())
	assert.False(t, Session{Token: "tok"}.Valid())
	assert.False(t, Session{User: &SessionUser{ID: "u-1"}}.Valid())
	assert.True(t, Session{Token: "tok", User: &SessionUser{ID: "u-1"}}.Valid())
}
