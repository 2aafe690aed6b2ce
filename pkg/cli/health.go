package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check that the back-office server is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := newStudioClient()
			if err != nil {
				return err
			}
			health, err := sc.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("server at %s is unreachable: %w", sc.BaseURL(), err)
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), health)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Server %s: %s", sc.BaseURL(), health.Status)
			if health.Version != "" {
				fmt.Fprintf(cmd.OutOrStdout(), " (version %s)", health.Version)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
