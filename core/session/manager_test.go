package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlainDede/Delphinium-gestion-site/core/session"
	"github.com/AlainDede/Delphinium-gestion-site/storage/database/inmem"
	"github.com/AlainDede/Delphinium-gestion-site/tests"
)

func newManager() (*session.Manager, session.Store) {
	store := inmemdb.NewSessionStore(inmemdb.Open())
	return session.NewManager(store), store
}

func TestManager_LoginLogout(t *testing.T) {
	ctx := context.Background()
	mgr, store := newManager()

	sess, err := mgr.Current(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, session.Unauthenticated, sess.State())

	tokens := testutil.MakeTokens(t, "superadmin")
	sess, err = mgr.Login(ctx, "sid", tokens)
	require.NoError(t, err)
	assert.Equal(t, session.RoleSuperadmin, sess.Role)
	assert.Equal(t, tokens.AccessToken, sess.AccessToken)
	assert.Equal(t, tokens.IDToken, sess.IdentityToken)
	assert.Equal(t, tokens.RefreshToken, sess.RefreshToken)

	stored, err := store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, sess, stored)

	// another browser is not affected
	other, err := mgr.Current(ctx, "other")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())

	require.NoError(t, mgr.Logout(ctx, "sid"))
	stored, err = store.Load(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, stored.IsEmpty())

	// logging out twice is harmless
	assert.NoError(t, mgr.Logout(ctx, "sid"))
}

func TestManager_LoginDefaultsRole(t *testing.T) {
	mgr, _ := newManager()
	sess, err := mgr.Login(context.Background(), "sid", testutil.MakeTokens(t))
	require.NoError(t, err)
	assert.Equal(t, session.RoleUser, sess.Role)

	sess, err = mgr.Login(context.Background(), "sid2", session.Tokens{AccessToken: "a", IDToken: "abc"})
	require.NoError(t, err)
	assert.Equal(t, session.RoleUser, sess.Role)
}

func TestManager_LoginWithoutAccessToken(t *testing.T) {
	mgr, store := newManager()
	_, err := mgr.Login(context.Background(), "sid", session.Tokens{IDToken: testutil.MakeIDToken(t, "admin")})
	assert.ErrorIs(t, err, session.ErrNoAccessToken)

	stored, err := store.Load(context.Background(), "sid")
	require.NoError(t, err)
	assert.True(t, stored.IsEmpty())
}

func TestManager_Purge(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newManager()
	for _, id := range []string{"a", "b", "c"} {
		_, err := mgr.Login(ctx, id, testutil.MakeTokens(t, "admin"))
		require.NoError(t, err)
	}
	n, err := mgr.Purge(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	sess, err := mgr.Current(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, session.Unauthenticated, sess.State())
}
