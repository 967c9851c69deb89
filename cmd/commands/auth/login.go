package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/quotebox/internal/config"
	"nathanbeddoewebdev/quotebox/internal/quoteapi"
	"nathanbeddoewebdev/quotebox/internal/services/auth"
	"nathanbeddoewebdev/quotebox/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a quote API key",
		Long: `Store a quote API key using the local keychain.

Without --token an interactive prompt is shown in a terminal; otherwise the
key is read from the first line of stdin.

Examples:
  quotebox auth login
  quotebox auth login --token abc123
  echo abc123 | quotebox auth login`,
		Args:         cobra.NoArgs,
		RunE:         runLogin,
		SilenceUsage: true,
	}

	cmd.Flags().String("token", "", "API key (optional, overrides prompt)")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	token, _ := cmd.Flags().GetString("token")
	store := auth.DefaultStore()

	if strings.TrimSpace(token) == "" && cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
		saved, err := tui.RunAuthLogin(store, tui.AuthLoginOptions{Header: apiKeyHeader()})
		if err != nil {
			return err
		}
		if !saved {
			fmt.Fprintln(cmd.ErrOrStderr(), "Login cancelled.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved quote API key")
		return nil
	}

	if strings.TrimSpace(token) == "" {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read API key from stdin: %w", err)
		}
		token = line
	}

	apiKey, err := auth.CleanAPIKey(token)
	if err != nil {
		return err
	}
	if err := store.SetToken(auth.DefaultAccount, apiKey); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Saved quote API key")
	return nil
}

// apiKeyHeader is the header the stored key will be sent in. A config that
// cannot be read only loses the hint.
func apiKeyHeader() string {
	cfg, err := config.Load()
	if err == nil && cfg.APIKeyHeader != "" {
		return cfg.APIKeyHeader
	}
	return quoteapi.DefaultAPIKeyHeader
}
