package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/dirctl/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigStore_Load(t *testing.T) {
	path := writeConfig(t, `
domain = "example.com"
credential_file = "/etc/dirctl/client_secret.json"
token_cache = "/var/lib/dirctl/token.json"
`)

	store, err := NewConfigStore(path)
	require.NoError(t, err)

	cfg, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, "example.com", cfg.Domain)
	assert.Equal(t, "/etc/dirctl/client_secret.json", cfg.CredentialFile)
	assert.Equal(t, "/var/lib/dirctl/token.json", cfg.TokenCachePath)
}

func TestConfigStore_Load_MissingFile(t *testing.T) {
	store, err := NewConfigStore(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	cfg, err := store.Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Domain)
}

func TestConfigStore_Load_Malformed(t *testing.T) {
	path := writeConfig(t, `domain = [broken`)
	store, err := NewConfigStore(path)
	require.NoError(t, err)

	_, err = store.Load()

	require.Error(t, err)
}

func TestConfigStore_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
domain = "file.example.com"
credential_file = "/from/file.json"
`)
	t.Setenv(EnvDomain, "env.example.com")
	t.Setenv(EnvTokenCache, "/from/env/token.json")

	store, err := NewConfigStore(path)
	require.NoError(t, err)

	cfg, err := store.Load()

	require.NoError(t, err)
	// Environment wins over the file.
	assert.Equal(t, "env.example.com", cfg.Domain)
	// File value survives where no override is set.
	assert.Equal(t, "/from/file.json", cfg.CredentialFile)
	assert.Equal(t, "/from/env/token.json", cfg.TokenCachePath)
}

func TestConfig_ClientConfig(t *testing.T) {
	cred := filepath.Join(t.TempDir(), "client_secret.json")
	require.NoError(t, os.WriteFile(cred, []byte("{}"), 0o600))

	cfg := &Config{Domain: "example.com", CredentialFile: cred}
	out, err := cfg.ClientConfig()

	require.NoError(t, err)
	assert.Equal(t, "example.com", out.Domain)
	// Unset cache path falls back to the home dotfile default.
	assert.NotEmpty(t, out.TokenCachePath)
}

func TestConfig_ClientConfig_Invalid(t *testing.T) {
	cfg := &Config{Domain: "", CredentialFile: ""}

	_, err := cfg.ClientConfig()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
