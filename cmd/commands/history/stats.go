package history

import (
	"fmt"

	"nathanbeddoewebdev/quotebox/internal/history"
	"nathanbeddoewebdev/quotebox/internal/tui/components"
	"nathanbeddoewebdev/quotebox/internal/tui/styles"

	"github.com/spf13/cobra"
)

const chartWidth = 60

func StatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise recent quote fetches",
		Long: `Summarise recent quote fetches: how many came from the API, how many
fell back to offline quotes, and a chart of fetch latency.

Examples:
  quotebox history stats
  quotebox history stats --limit 200`,
		RunE:         runStats,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 100, "Number of recent entries to include")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	repo, err := history.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	entries, err := repo.List(limit)
	if err != nil {
		return err
	}

	st := history.Summarize(entries)
	if st.Total == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No quote history found.")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Fetches:  %d\n", st.Total)
	fmt.Fprintf(out, "%s  %d\n", styles.SourceIndicator(history.SourceRemote), st.Remote)
	fmt.Fprintf(out, "%s  %d\n", styles.SourceIndicator(history.SourceFallback), st.Fallback)
	fmt.Fprintf(out, "Average:  %s\n\n", st.Average)
	fmt.Fprintln(out, components.LatencyChart("Fetch latency", st.Latencies, chartWidth, "ms"))
	return nil
}
