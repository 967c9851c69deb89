package quote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"nathanbeddoewebdev/quotebox/internal/app"
	"nathanbeddoewebdev/quotebox/internal/quotestore"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// NewCommand returns the "quote" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Fetch and share quotes without the interactive widget",
		Long: `Fetch a random quote once and print it, or build a share link for it.

When the quote API cannot be reached, an offline quote is used and a notice
is printed on stderr.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(ShareCommand())

	return cmd
}

// OpenApp assembles an App using the root logging flags. Missing flags
// (for example when a subcommand runs on its own in tests) fall back to
// defaults.
func OpenApp(cmd *cobra.Command, interactive bool) (*app.App, error) {
	level, _ := cmd.Flags().GetString("log-level")
	file, _ := cmd.Flags().GetString("log-file")
	return app.Open(app.LogOptions{Level: level, File: file}, cmd.ErrOrStderr(), interactive)
}

// fetchOnce runs a single fetch, showing a spinner on stderr when it is a
// terminal.
func fetchOnce(cmd *cobra.Command, store *quotestore.Store) (quotestore.Outcome, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !isTerminal(cmd.ErrOrStderr()) {
		return store.FetchQuote(ctx), nil
	}

	var out quotestore.Outcome
	err := spinner.New().
		Title("Fetching a quote...").
		Accessible(os.Getenv("ACCESSIBLE") != "").
		Output(os.Stderr).
		ActionWithErr(func(ctx context.Context) error {
			out = store.FetchQuote(ctx)
			return nil
		}).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return out, fmt.Errorf("fetch aborted")
		}
		return out, err
	}
	return out, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
