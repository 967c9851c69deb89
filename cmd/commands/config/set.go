package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/quotebox/internal/config"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> [value]",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value. Omit the value to clear the key.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  quotebox config set endpoint https://quotes.example.com/random\n" +
			"  quotebox config set request-timeout 10s\n" +
			"  quotebox config set record-history on",
		Args:         cobra.RangeArgs(1, 2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	value := ""
	if len(args) == 2 {
		value = args[1]
	}

	spec := config.Lookup(args[0])
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	normalized, err := spec.Normalize(value)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	spec.Set(cfg, normalized)
	if err := cfg.Save(); err != nil {
		return err
	}

	if normalized == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s cleared\n", spec.Name)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, normalized)
	return nil
}
