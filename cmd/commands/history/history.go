package history

import "github.com/spf13/cobra"

// NewCommand returns the "history" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View and manage recorded quote fetches",
		Long: "View a local log of settled quote fetches and prune old entries.\n\n" +
			"Recording is off by default; enable it with\n" +
			"  quotebox config set record-history on\n\n" +
			"History is stored locally in ~/.config/quotebox/history.db.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())
	cmd.AddCommand(StatsCommand())

	return cmd
}
