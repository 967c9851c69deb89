package config

import (
	"nathanbeddoewebdev/quotebox/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage quotebox configuration",
		Long: "View and modify persistent quotebox settings.\n\n" +
			"Configuration is stored at ~/.config/quotebox/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
