package quote

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// showOutput is the JSON shape printed by "quote show -o json".
type showOutput struct {
	Quote    string `json:"quote"`
	Author   string `json:"author"`
	Color    string `json:"color"`
	Fallback bool   `json:"fallback"`
	Notice   string `json:"notice,omitempty"`
	ShareURL string `json:"share_url"`
}

func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Fetch and print a random quote",
		Long: `Fetch a random quote and print it.

Examples:
  quotebox quote show
  quotebox quote show -o json`,
		Args:         cobra.NoArgs,
		RunE:         runShow,
		SilenceUsage: true,
	}

	cmd.Flags().StringP("output", "o", "text", "Output format: text or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	return RunShow(cmd, output)
}

// RunShow fetches one quote and prints it in the given format. The root
// command uses it when stdout is not a terminal.
func RunShow(cmd *cobra.Command, output string) error {
	output = strings.ToLower(strings.TrimSpace(output))
	if output == "" {
		output = "text"
	}
	if output != "text" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	a, err := OpenApp(cmd, false)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := fetchOnce(cmd, a.Store); err != nil {
		return err
	}
	st := a.Store.Snapshot()

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(showOutput{
			Quote:    st.QuoteText,
			Author:   st.QuoteAuthor,
			Color:    st.BackgroundColor,
			Fallback: st.HasError(),
			Notice:   st.ErrorMessage,
			ShareURL: a.Store.ShareURL(),
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\"%s\"\n  - %s\n", st.QuoteText, st.QuoteAuthor)
	if st.HasError() {
		fmt.Fprintln(cmd.ErrOrStderr(), st.ErrorMessage)
	}
	return nil
}
