// Package cli implements the greenstream command line.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/greenstream/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the greenstream CLI.
// It wires up logging and tracing, the session flags shared by every
// subcommand, and the subcommands themselves.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "greenstream",
		Short:         "CO2e footprint of watching online video",
		Long:          "greenstream: estimate the yearly CO2e emissions of video streaming from a set of assumptions",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String(flagLang, "", "display language (en, fr); defaults to the configured session language")
	cmd.PersistentFlags().String(flagAssumptions, "",
		"assumptions YAML file; defaults to the configured file, then the built-in values")

	cmd.AddCommand(
		NewComputeCmd(),
		NewOffsetCmd(),
		NewAssumptionsCmd(),
		NewCompareCmd(),
		NewEditCmd(),
		NewConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Yearly footprint of 30 hours of viewing per week, default assumptions
  greenstream compute --role consumer --hours 30

  # Same with a different device mix, in English, as JSON
  greenstream compute --set device_percent.tv=40 --set device_percent.smartphone=20 --lang en --output json

  # How many vegetarian meals offset 120 kg CO2e
  greenstream offset --value 120 --unit kg

  # Write the default assumptions to a file and edit them interactively
  greenstream assumptions init my-assumptions.yaml
  greenstream edit --assumptions my-assumptions.yaml

  # Compare several assumption files
  greenstream compare fr.yaml us.yaml`
