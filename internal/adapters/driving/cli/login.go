package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Run the interactive authorization flow",
	Long: `Run the authorization-code flow and cache the resulting token,
replacing any previously cached one. Other commands authorise on demand;
login exists to re-auth explicitly, e.g. after changing scopes or domains.`,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	cfg, err := loadClientConfig()
	if err != nil {
		return err
	}
	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}

	if _, err := provider.Authorize(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "token cached at %s\n", cfg.TokenCachePath)
	return nil
}
