package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/quotebox/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored quote API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := auth.DefaultStore().DeleteToken(auth.DefaultAccount)
			switch {
			case errors.Is(err, auth.ErrTokenNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "No quote API key stored")
				return nil
			case err != nil:
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed quote API key")
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
