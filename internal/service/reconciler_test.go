package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vaultlocker/vaultlocker/internal/crypto"
	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/internal/mock"
	"github.com/vaultlocker/vaultlocker/internal/session"
	"github.com/vaultlocker/vaultlocker/internal/storage"
	"github.com/vaultlocker/vaultlocker/internal/store"
	"github.com/vaultlocker/vaultlocker/models"
)

// cred is a shorthand constructor used only in tests.
func cred(id, site string) models.DecryptedCredential {
	return models.DecryptedCredential{ID: id, Site: site}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name   string
		local  []models.DecryptedCredential
		remote []models.DecryptedCredential
		want   []models.DecryptedCredential
	}{
		{
			name:   "RemoteWinsOnCollision",
			local:  []models.DecryptedCredential{cred("1", "a")},
			remote: []models.DecryptedCredential{cred("1", "b")},
			want:   []models.DecryptedCredential{cred("1", "b")},
		},
		{
			name:   "DisjointSetsBothSurvive",
			local:  []models.DecryptedCredential{cred("1", "a")},
			remote: []models.DecryptedCredential{cred("2", "b")},
			want:   []models.DecryptedCredential{cred("1", "a"), cred("2", "b")},
		},
		{
			name:   "LocalOnlyPreserved",
			local:  []models.DecryptedCredential{cred("1", "a"), cred("2", "b")},
			remote: nil,
			want:   []models.DecryptedCredential{cred("1", "a"), cred("2", "b")},
		},
		{
			name:   "RemoteOnlyAdded",
			local:  nil,
			remote: []models.DecryptedCredential{cred("3", "c")},
			want:   []models.DecryptedCredential{cred("3", "c")},
		},
		{
			name: "LocalOrderKeptRemoteAppended",
			local: []models.DecryptedCredential{
				cred("1", "a"), cred("2", "b"), cred("3", "c"),
			},
			remote: []models.DecryptedCredential{
				cred("2", "b-remote"), cred("4", "d"),
			},
			want: []models.DecryptedCredential{
				cred("1", "a"), cred("2", "b-remote"), cred("3", "c"), cred("4", "d"),
			},
		},
		{
			name:   "RecordsWithoutIDDropped",
			local:  []models.DecryptedCredential{cred("", "anon")},
			remote: []models.DecryptedCredential{cred("1", "a")},
			want:   []models.DecryptedCredential{cred("1", "a")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.local, tt.remote))
		})
	}
}

func newTestReconciler(t *testing.T, ctrl *gomock.Controller, sess models.Session) (*Reconciler, *mock.MockVaultAPI, *mock.MockRemoteVault) {
	t.Helper()

	vault := mock.NewMockVaultAPI(ctrl)
	remote := mock.NewMockRemoteVault(ctrl)

	extension, err := storage.NewFileArea("")
	require.NoError(t, err)
	page, err := storage.NewFileArea("")
	require.NoError(t, err)
	vaultStore := store.NewVaultStore(extension, crypto.NewCipher(), logger.Nop())
	sessions := session.NewManager(extension, page, vaultStore, logger.Nop())

	r := NewReconciler(vault, remote, sessions, logger.Nop())
	r.ReplaceSession(sess)
	return r, vault, remote
}

func TestReconciler_LoadMergesLocalAndRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sess := models.Session{Token: "tok", User: &models.SessionUser{ID: "u1"}}
	r, vault, remote := newTestReconciler(t, ctrl, sess)
	ctx := context.Background()

	vault.EXPECT().List(ctx, "").Return([]models.DecryptedCredential{cred("1", "local"), cred("2", "shared")}, nil)
	remote.EXPECT().FetchCredentials(ctx, "tok").Return([]models.DecryptedCredential{cred("2", "shared-remote"), cred("3", "remote")}, nil)

	got := r.Load(ctx)
	assert.Equal(t, []models.DecryptedCredential{
		cred("1", "local"), cred("2", "shared-remote"), cred("3", "remote"),
	}, got)
	assert.Equal(t, got, r.Cached())
}

func TestReconciler_LoadRemoteFailureFallsBackToLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sess := models.Session{Token: "tok", User: &models.SessionUser{ID: "u1"}}
	r, vault, remote := newTestReconciler(t, ctrl, sess)
	ctx := context.Background()

	local := []models.DecryptedCredential{cred("1", "local")}
	vault.EXPECT().List(ctx, "").Return(local, nil)
	remote.EXPECT().FetchCredentials(ctx, "tok").Return(nil, errors.New("gateway timeout"))

	got := r.Load(ctx)
	assert.Equal(t, local, got)
}

func TestReconciler_LoadWithoutTokenSkipsRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, vault, _ := newTestReconciler(t, ctrl, models.Session{})
	ctx := context.Background()

	local := []models.DecryptedCredential{cred("1", "local")}
	vault.EXPECT().List(ctx, "").Return(local, nil)
	// No FetchCredentials expectation: calling it would fail the test.

	got := r.Load(ctx)
	assert.Equal(t, local, got)
}

func TestReconciler_LoadEmptyRemoteKeepsLocalList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sess := models.Session{Token: "tok"}
	r, vault, remote := newTestReconciler(t, ctrl, sess)
	ctx := context.Background()

	local := []models.DecryptedCredential{cred("1", "local")}
	vault.EXPECT().List(ctx, "").Return(local, nil)
	remote.EXPECT().FetchCredentials(ctx, "tok").Return(nil, nil)

	assert.Equal(t, local, r.Load(ctx))
}

func TestReconciler_DeletePropagatesRemoteFirstThenLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sess := models.Session{Token: "tok"}
	r, vault, remote := newTestReconciler(t, ctrl, sess)
	ctx := context.Background()

	gomock.InOrder(
		remote.EXPECT().DeleteCredential(ctx, "c1", "tok").Return(nil),
		vault.EXPECT().Delete(ctx, "", "c1").Return(nil),
	)

	require.NoError(t, r.Delete(ctx, "c1"))
}

func TestReconciler_DeleteRemoteFailureStillDeletesLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sess := models.Session{Token: "tok"}
	r, vault, remote := newTestReconciler(t, ctrl, sess)
	ctx := context.Background()

	remote.EXPECT().DeleteCredential(ctx, "c1", "tok").Return(errors.New("backend down"))
	vault.EXPECT().Delete(ctx, "", "c1").Return(nil)

	require.NoError(t, r.Delete(ctx, "c1"))
}

func TestReconciler_DeleteWithoutTokenIsLocalOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, vault, _ := newTestReconciler(t, ctrl, models.Session{})
	ctx := context.Background()

	vault.EXPECT().Delete(ctx, "", "c1").Return(nil)

	require.NoError(t, r.Delete(ctx, "c1"))
}

func TestReconciler_DeleteUpdatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sess := models.Session{Token: "tok"}
	r, vault, remote := newTestReconciler(t, ctrl, sess)
	ctx := context.Background()

	vault.EXPECT().List(ctx, "").Return([]models.DecryptedCredential{cred("1", "a"), cred("2", "b")}, nil)
	remote.EXPECT().FetchCredentials(ctx, "tok").Return(nil, nil)
	r.Load(ctx)

	remote.EXPECT().DeleteCredential(ctx, "1", "tok").Return(nil)
	vault.EXPECT().Delete(ctx, "", "1").Return(nil)
	require.NoError(t, r.Delete(ctx, "1"))

	assert.Equal(t, []models.DecryptedCredential{cred("2", "b")}, r.Cached())
}

func TestReconciler_ReplaceSessionDropsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sess := models.Session{Token: "tok"}
	r, vault, remote := newTestReconciler(t, ctrl, sess)
	ctx := context.Background()

	vault.EXPECT().List(ctx, "").Return([]models.DecryptedCredential{cred("1", "a")}, nil)
	remote.EXPECT().FetchCredentials(ctx, "tok").Return(nil, nil)
	r.Load(ctx)
	require.NotEmpty(t, r.Cached())

	r.ReplaceSession(models.Session{})
	assert.Empty(t, r.Cached())
	assert.Empty(t, r.Session().Token)
}

func TestReconciler_BootstrapReadsPersistedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultAPI(ctrl)
	remote := mock.NewMockRemoteVault(ctrl)

	extension, err := storage.NewFileArea("")
	require.NoError(t, err)
	page, err := storage.NewFileArea("")
	require.NoError(t, err)
	vaultStore := store.NewVaultStore(extension, crypto.NewCipher(), logger.Nop())
	sessions := session.NewManager(extension, page, vaultStore, logger.Nop())

	ctx := context.Background()
	require.NoError(t, sessions.Save(ctx, "persisted-token", models.SessionUser{ID: "u1"}))

	r := NewReconciler(vault, remote, sessions, logger.Nop())
	sess, err := r.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", sess.Token)
	assert.Equal(t, "persisted-token", r.Session().Token)
}
