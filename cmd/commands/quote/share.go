package quote

import (
	"fmt"

	"nathanbeddoewebdev/quotebox/internal/share"

	"github.com/spf13/cobra"
)

func ShareCommand() *cobra.Command {
	return newShareCommand(share.SystemClipboard{}, share.SystemBrowser{})
}

func newShareCommand(clip share.Clipboard, opener share.Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Build a tweet link for a quote",
		Long: `Build a tweet intent link for a quote.

Without --text or --author a random quote is fetched first.

Examples:
  quotebox quote share
  quotebox quote share --open
  quotebox quote share --text "Stay hungry" --author "Steve Jobs" --url-only
  quotebox quote share --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShare(cmd, clip, opener)
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("text", "", "Quote text to share instead of fetching one")
	cmd.Flags().String("author", "", "Quote author to share instead of fetching one")
	cmd.Flags().Bool("copy", false, "Copy the quote to the clipboard")
	cmd.Flags().Bool("open", false, "Open the tweet link in a browser")
	cmd.Flags().Bool("url-only", false, "Print only the link")

	return cmd
}

func runShare(cmd *cobra.Command, clip share.Clipboard, opener share.Opener) error {
	text, _ := cmd.Flags().GetString("text")
	author, _ := cmd.Flags().GetString("author")
	doCopy, _ := cmd.Flags().GetBool("copy")
	doOpen, _ := cmd.Flags().GetBool("open")
	urlOnly, _ := cmd.Flags().GetBool("url-only")

	given := cmd.Flags().Changed("text") || cmd.Flags().Changed("author")
	if !given {
		a, err := OpenApp(cmd, false)
		if err != nil {
			return err
		}
		defer a.Close()

		if _, err := fetchOnce(cmd, a.Store); err != nil {
			return err
		}
		st := a.Store.Snapshot()
		text, author = st.QuoteText, st.QuoteAuthor
		if st.HasError() {
			fmt.Fprintln(cmd.ErrOrStderr(), st.ErrorMessage)
		}
	}

	link := share.BuildShareURL(text, author)

	if urlOnly {
		fmt.Fprintln(cmd.OutOrStdout(), link)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), share.Text(text, author))
		fmt.Fprintln(cmd.OutOrStdout(), link)
	}

	if doCopy {
		if err := clip.WriteAll(share.Text(text, author)); err != nil {
			return fmt.Errorf("failed to copy quote: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied quote to clipboard")
	}
	if doOpen {
		if err := opener.OpenURL(link); err != nil {
			return fmt.Errorf("failed to open share link: %w", err)
		}
	}
	return nil
}
