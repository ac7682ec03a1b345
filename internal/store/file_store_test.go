package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsanano/shop-client/internal/store"
)

func newStore(t *testing.T) (*store.FileStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "shop")
	fs, err := store.NewFileStore(dir)
	require.NoError(t, err)
	return fs, dir
}

func TestRecent_SaveLoadClear(t *testing.T) {
	fs, _ := newStore(t)
	ctx := context.Background()

	terms, err := fs.LoadRecent(ctx)
	require.NoError(t, err)
	assert.Empty(t, terms)

	require.NoError(t, fs.SaveRecent(ctx, []string{"bag", "shoes"}))
	terms, err = fs.LoadRecent(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bag", "shoes"}, terms)

	require.NoError(t, fs.ClearRecent(ctx))
	require.NoError(t, fs.ClearRecent(ctx), "clearing twice is fine")
	terms, err = fs.LoadRecent(ctx)
	require.NoError(t, err)
	assert.Empty(t, terms)
}

func TestSession_SealedRoundTrip(t *testing.T) {
	fs, dir := newStore(t)

	_, ok, err := fs.LoadSession("pass")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, fs.SaveSession("pass", store.Session{Username: "ann", Token: "secret-token"}))

	raw, err := os.ReadFile(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-token")

	sess, ok, err := fs.LoadSession("pass")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ann", sess.Username)
	assert.Equal(t, "secret-token", sess.Token)
	assert.False(t, sess.SavedAt.IsZero())

	_, _, err = fs.LoadSession("wrong")
	assert.ErrorIs(t, err, store.ErrBadPassphrase)

	require.NoError(t, fs.ClearSession())
	_, ok, err = fs.LoadSession("pass")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_RequiresPassphrase(t *testing.T) {
	fs, _ := newStore(t)
	assert.ErrorIs(t, fs.SaveSession("", store.Session{Token: "t"}), store.ErrNoPassphrase)
}

func TestDeviceID_Stable(t *testing.T) {
	fs, dir := newStore(t)

	id1, err := fs.DeviceID()
	require.NoError(t, err)
	assert.Len(t, id1, 36)

	id2, err := fs.DeviceID()
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	again, err := store.NewFileStore(dir)
	require.NoError(t, err)
	id3, err := again.DeviceID()
	require.NoError(t, err)
	assert.Equal(t, id1, id3)
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	sign := func(exp time.Time) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ann", "exp": exp.Unix()})
		s, err := tok.SignedString([]byte("server-key"))
		require.NoError(t, err)
		return s
	}

	assert.True(t, store.TokenExpired(sign(now.Add(-time.Minute)), now))
	assert.False(t, store.TokenExpired(sign(now.Add(time.Hour)), now))
	assert.False(t, store.TokenExpired("not-a-jwt", now))
}
