package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/pocketcasino/internal/api/response"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that a casino server is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Health
			if err := client.Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}
			NewOutput(opts.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}
