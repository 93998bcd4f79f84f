package auth

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestTokenCache_LoadMissing(t *testing.T) {
	cache := NewTokenCache(filepath.Join(t.TempDir(), "token.json"))

	_, err := cache.Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCachedToken)
}

func TestTokenCache_SaveLoad(t *testing.T) {
	cache := NewTokenCache(filepath.Join(t.TempDir(), "nested", "token.json"))
	tok := &oauth2.Token{
		AccessToken:  "access-123",
		RefreshToken: "refresh-456",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).Truncate(time.Second),
	}

	require.NoError(t, cache.Save(tok))

	loaded, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, tok.AccessToken, loaded.AccessToken)
	assert.Equal(t, tok.RefreshToken, loaded.RefreshToken)
	assert.Equal(t, tok.TokenType, loaded.TokenType)
	assert.True(t, tok.Expiry.Equal(loaded.Expiry))
}

func TestTokenCache_SaveRestrictsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("mode bits not meaningful on windows")
	}

	cache := NewTokenCache(filepath.Join(t.TempDir(), "token.json"))
	require.NoError(t, cache.Save(&oauth2.Token{AccessToken: "x"}))

	info, err := os.Stat(cache.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestTokenCache_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	cache := NewTokenCache(path)
	_, err := cache.Load()

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoCachedToken)
}

func TestTokenCache_Clear(t *testing.T) {
	cache := NewTokenCache(filepath.Join(t.TempDir(), "token.json"))
	require.NoError(t, cache.Save(&oauth2.Token{AccessToken: "x"}))

	require.NoError(t, cache.Clear())
	_, err := cache.Load()
	assert.ErrorIs(t, err, ErrNoCachedToken)

	// Clearing an already-missing cache is fine.
	assert.NoError(t, cache.Clear())
}
