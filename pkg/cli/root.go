// Package cli implements the inkops command-line interface.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/inkops/inkops/pkg/cliconfig"
	"github.com/inkops/inkops/pkg/logging"
	"github.com/inkops/inkops/pkg/resource"
	"github.com/inkops/inkops/pkg/studio"
)

var (
	// Persistent flags available to all subcommands
	serverURL  string
	apiKey     string
	jsonOutput bool
	timeoutSec int

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "inkops",
	Short: "inkops manages a tattoo-studio back-office server",
	Long: `inkops is the command-line client for the studio back-office API.
It manages clients, payments, sessions, and inventory over REST, imports
and exports records in bulk, and edits saved server-rendered pages offline.

Configuration can be provided via flags, environment variables, or
~/.inkops/config.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true, // errors are handled in Execute()
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server-url", "", "Back-office server base URL (default: http://localhost:5000)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key sent as X-API-Key")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().IntVar(&timeoutSec, "timeout", 0, "Request timeout in seconds")
}

// effectiveConfig merges flags over the loaded configuration.
func effectiveConfig() (*cliconfig.Config, error) {
	cfg, err := cliconfig.Load()
	if err != nil {
		return nil, err
	}
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if timeoutSec > 0 {
		cfg.TimeoutSeconds = timeoutSec
	}
	return cfg, nil
}

// newStudioClient builds the SDK client from the effective configuration.
func newStudioClient() (*studio.Client, error) {
	cfg, err := effectiveConfig()
	if err != nil {
		return nil, err
	}
	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})
	opts := []studio.Option{
		studio.WithLogger(log),
		studio.WithNotifier(resource.NotifierFunc(func(message string, success bool) {
			if !success {
				fmt.Fprintln(os.Stderr, message)
			}
		})),
	}
	if cfg.APIKey != "" {
		opts = append(opts, studio.WithAPIKey(cfg.APIKey))
	}
	if cfg.TimeoutSeconds > 0 {
		opts = append(opts, studio.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	return studio.New(cfg.ServerURL, opts...)
}
