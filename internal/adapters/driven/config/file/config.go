// Package file loads dirctl configuration from a TOML file with
// environment overrides.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/dirctl/internal/core/domain"
)

// Environment variables recognised as overrides.
const (
	EnvDomain      = "DIRCTL_DOMAIN"
	EnvCredentials = "DIRCTL_CREDENTIALS"
	EnvTokenCache  = "DIRCTL_TOKEN_CACHE"
)

// Config is the on-disk configuration shape.
type Config struct {
	Domain         string `toml:"domain"`
	CredentialFile string `toml:"credential_file"`
	TokenCachePath string `toml:"token_cache"`
}

// ConfigStore reads configuration from a single TOML file.
type ConfigStore struct {
	path string
}

// NewConfigStore creates a store for the given path, defaulting to
// ~/.dirctl/config.toml when path is empty.
func NewConfigStore(path string) (*ConfigStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("determine home directory: %w", err)
		}
		path = filepath.Join(home, ".dirctl", "config.toml")
	}
	return &ConfigStore{path: path}, nil
}

// Path returns the backing file path.
func (s *ConfigStore) Path() string {
	return s.path
}

// Load reads the config file and applies environment overrides.
// A missing file is not an error; overrides alone may be sufficient.
func (s *ConfigStore) Load() (*Config, error) {
	// Pick up a local .env if one exists; absence is fine.
	_ = godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", s.path, err)
		}
	case os.IsNotExist(err):
		// fall through to environment
	default:
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	if v := os.Getenv(EnvDomain); v != "" {
		cfg.Domain = v
	}
	if v := os.Getenv(EnvCredentials); v != "" {
		cfg.CredentialFile = v
	}
	if v := os.Getenv(EnvTokenCache); v != "" {
		cfg.TokenCachePath = v
	}

	return cfg, nil
}

// ClientConfig converts the loaded config into a validated ClientConfig.
func (c *Config) ClientConfig() (domain.ClientConfig, error) {
	out := domain.ClientConfig{
		Domain:         c.Domain,
		CredentialFile: c.CredentialFile,
		TokenCachePath: c.TokenCachePath,
	}
	if err := out.Validate(); err != nil {
		return domain.ClientConfig{}, err
	}
	return out, nil
}
