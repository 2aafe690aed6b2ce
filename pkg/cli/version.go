package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if jsonOutput {
				_ = printJSON(cmd.OutOrStdout(), map[string]string{
					"version":   Version,
					"commit":    Commit,
					"buildDate": BuildDate,
				})
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inkops %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		},
	}
	rootCmd.AddCommand(cmd)
}
