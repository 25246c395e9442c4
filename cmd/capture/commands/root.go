package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opencapture/opencapture/pkg/telemetry"
)

var (
	// Global flags
	verbose    bool
	jsonOutput bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "capture",
		Short: "OpenCapture - frame-synchronous capture session tooling",
		Long: `OpenCapture compiles capture scripts and drives capture sessions.

A capture script is a YAML document mapping frame indices to the device
control values to apply when that frame is queued. The compiler validates
the script against the device's control catalog up front, so a running
session only ever performs per-frame table lookups.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newControlsCommand())

	return rootCmd
}

// newLogger builds the logger shared by all commands from the global flags.
func newLogger() (zerolog.Logger, error) {
	cfg := telemetry.DefaultConfig()
	if verbose {
		cfg.Level = "debug"
	}
	if jsonOutput {
		cfg.Format = "json"
	}
	return telemetry.NewLogger(cfg)
}
