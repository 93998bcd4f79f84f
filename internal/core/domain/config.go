package domain

import (
	"fmt"
	"os"
	"path/filepath"
)

// ClientConfig holds the directory client configuration.
// Immutable after a successful Validate.
type ClientConfig struct {
	// Domain is the Workspace domain being administered (e.g. "example.com").
	Domain string
	// CredentialFile is the path to the vendor client-secret JSON file.
	CredentialFile string
	// TokenCachePath is where the OAuth token is persisted between runs.
	// Defaults to a dotfile under the user's home directory.
	TokenCachePath string
}

// DefaultTokenCachePath returns the default token cache location.
func DefaultTokenCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dirctl-token.json"
	}
	return filepath.Join(home, ".dirctl", "token.json")
}

// Validate checks the configuration invariants.
// The domain must be non-empty and the credential file must exist on disk.
func (c *ClientConfig) Validate() error {
	if c.Domain == "" {
		return fmt.Errorf("%w: domain must not be empty", ErrConfiguration)
	}
	if c.CredentialFile == "" {
		return fmt.Errorf("%w: credential file path must not be empty", ErrConfiguration)
	}
	if _, err := os.Stat(c.CredentialFile); err != nil {
		return fmt.Errorf("%w: credential file %q: %v", ErrConfiguration, c.CredentialFile, err)
	}
	if c.TokenCachePath == "" {
		c.TokenCachePath = DefaultTokenCachePath()
	}
	return nil
}
