package cmd

import (
	"net/url"
	"os"

	"nathanbeddoewebdev/quotebox/cmd/commands/auth"
	cfgcmd "nathanbeddoewebdev/quotebox/cmd/commands/config"
	"nathanbeddoewebdev/quotebox/cmd/commands/history"
	"nathanbeddoewebdev/quotebox/cmd/commands/quote"
	"nathanbeddoewebdev/quotebox/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "quotebox",
		Short: "A random quote widget for the terminal",
		Long: `quotebox shows a random inspirational quote in an interactive terminal
widget, with a fresh accent colour for every quote and quick ways to share it.

When the quote API is unreachable an offline quote is shown instead, together
with a dismissible notice.

Quick start:
  quotebox                         # Open the interactive widget
  quotebox quote show              # Print one quote and exit
  quotebox quote share --open      # Tweet a random quote
  quotebox config set record-history on`,
		Args:         cobra.NoArgs,
		RunE:         runRoot,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().String("log-file", "", "Append logs to this file")

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(history.NewCommand())
	cmd.AddCommand(quote.NewCommand())

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	interactive := cmd.OutOrStdout() == os.Stdout &&
		term.IsTerminal(int(os.Stdout.Fd())) &&
		term.IsTerminal(int(os.Stdin.Fd()))
	if !interactive {
		return quote.RunShow(cmd, "text")
	}

	a, err := quote.OpenApp(cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	return tui.RunQuoteApp(a.Store, tui.QuoteAppOptions{
		Source: endpointHost(a.Client.Endpoint()),
	})
}

func endpointHost(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Hostname()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
