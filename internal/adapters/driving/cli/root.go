package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/dirctl/internal/adapters/driven/auth"
	"github.com/custodia-labs/dirctl/internal/adapters/driven/config/file"
	"github.com/custodia-labs/dirctl/internal/core/domain"
	"github.com/custodia-labs/dirctl/internal/directory"
	"github.com/custodia-labs/dirctl/internal/logger"
)

var (
	// Version is set by goreleaser ldflags.
	version = "dev"

	// Verbose enables debug logging.
	verbose bool

	// Path to an alternate config file.
	configPath string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "dirctl",
	Short: "Administer Workspace users, groups, and domain settings",
	Long: `dirctl is a thin client for the Workspace administrative APIs.

It wraps the Admin SDK Directory API (users, groups, members) and the
legacy Admin Settings feed (domain properties, license usage). Credentials
come from a vendor client-secret file; tokens are cached locally between
runs.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.dirctl/config.toml)")

	// Use PersistentPreRunE to set verbose mode before any command executes
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return nil
	}
}

// loadClientConfig resolves and validates the client configuration.
func loadClientConfig() (domain.ClientConfig, error) {
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return domain.ClientConfig{}, err
	}
	cfg, err := store.Load()
	if err != nil {
		return domain.ClientConfig{}, err
	}
	return cfg.ClientConfig()
}

// newProvider builds the token provider with the interactive supplier.
func newProvider(cfg domain.ClientConfig) (*auth.Provider, error) {
	return auth.NewProvider(cfg.CredentialFile, cfg.TokenCachePath, auth.NewInteractiveSupplier())
}

// newClient assembles a directory client from configuration.
// Overridable so command tests can inject a stub.
var newClient = func() (*directory.Client, error) {
	cfg, err := loadClientConfig()
	if err != nil {
		return nil, err
	}
	provider, err := newProvider(cfg)
	if err != nil {
		return nil, err
	}
	return directory.New(cfg, provider)
}
