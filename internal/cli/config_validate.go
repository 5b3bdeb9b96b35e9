package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/greenstream/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration at ~/.greenstream/config.yaml, with environment
overrides applied: output format and precision, logging format, session
language and role, and that the session assumptions file loads.`,
		RunE: runConfigValidate,
	}
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	cfg := config.New()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if cfg.Session.Assumptions != "" {
		if _, err := loadAssumptionsFrom(cmd.Context(), cfg.Session.Assumptions); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	cmd.Println("Configuration is valid")
	return nil
}
