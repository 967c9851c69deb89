package auth

import (
	"fmt"
	"os"

	"nathanbeddoewebdev/quotebox/internal/config"
	"nathanbeddoewebdev/quotebox/internal/quoteapi"
	"nathanbeddoewebdev/quotebox/internal/services/auth"
	"nathanbeddoewebdev/quotebox/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a quote API key is stored",
		Long: `Show whether a quote API key is stored in the keychain. The key itself
is never printed; only its last four characters are shown.

Example:
  quotebox auth status`,
		RunE:         runStatus,
		SilenceUsage: true,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	store := auth.DefaultStore()

	if cmd.OutOrStdout() == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())) {
		opts := tui.AuthStatusOptions{Header: apiKeyHeader(), Endpoint: quoteapi.DefaultEndpoint}
		if cfg, err := config.Load(); err == nil && cfg.EffectiveEndpoint() != "" {
			opts.Endpoint = cfg.EffectiveEndpoint()
		}
		if err := tui.RunAuthStatus(store, opts); err != nil {
			return fmt.Errorf("auth status failed: %w", err)
		}
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", auth.DefaultAccount, auth.Inspect(store))
	return nil
}
