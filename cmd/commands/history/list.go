package history

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"nathanbeddoewebdev/quotebox/internal/history"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

// quoteColumnWidth caps the QUOTE column so rows stay on one line.
const quoteColumnWidth = 48

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent quote fetches",
		Long: `List recent quote fetches stored locally.

Examples:
  quotebox history list
  quotebox history list --limit 50
  quotebox history list --source fallback
  quotebox history list -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of entries to display")
	cmd.Flags().String("source", "", "Filter by source: remote or fallback")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	source, _ := cmd.Flags().GetString("source")
	source = strings.ToLower(strings.TrimSpace(source))
	if source != "" && source != history.SourceRemote && source != history.SourceFallback {
		return fmt.Errorf("unknown source %q (valid: %s, %s)", source, history.SourceRemote, history.SourceFallback)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	repo, err := history.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	var entries []history.Entry
	if source != "" {
		entries, err = repo.ListBySource(source, limit)
	} else {
		entries, err = repo.List(limit)
	}
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No quote history found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tSOURCE\tDURATION\tCOLOR\tAUTHOR\tQUOTE")
	fmt.Fprintln(w, "----\t------\t--------\t-----\t------\t-----")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
			entry.Source,
			formatDuration(entry.DurationMs),
			entry.Color,
			entry.Author,
			ansi.Truncate(entry.Quote, quoteColumnWidth, "…"),
		)
	}
	w.Flush()
	return nil
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm", int(d.Minutes()))
}
