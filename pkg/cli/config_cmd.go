package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkops/inkops/pkg/cliconfig"
)

func init() {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective CLI configuration",
	}

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Show the effective configuration after flags and environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := effectiveConfig()
			if err != nil {
				return err
			}
			shown := *cfg
			if shown.APIKey != "" {
				shown.APIKey = "********"
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"serverUrl":      shown.ServerURL,
				"apiKey":         shown.APIKey,
				"timeoutSeconds": shown.TimeoutSeconds,
				"logLevel":       shown.LogLevel,
				"logFormat":      shown.LogFormat,
			})
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cliconfig.Path()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	configCmd.AddCommand(viewCmd, pathCmd)
	rootCmd.AddCommand(configCmd)
}
