package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/greenstream/internal/assumptions"
	"github.com/rshade/greenstream/internal/config"
	"github.com/rshade/greenstream/internal/engine"
	"github.com/rshade/greenstream/internal/logging"
)

// ComputeParams holds the parameters of the compute command.
// Exported for testing.
type ComputeParams struct {
	Role    string
	Hours   float64
	Sets    []string
	Output  string
	Details bool
}

// NewComputeCmd creates the "compute" command, which prints the yearly
// footprint for the loaded assumptions.
//
// Flags:
//   - --role: producer or consumer; only the labels differ
//   - --hours: weekly viewing hours, overrides hours_input
//   - --set: variable[.subkey]=value override (repeatable)
//   - --output: table, json or markdown
//   - --details: append the step-by-step explanation
func NewComputeCmd() *cobra.Command {
	var params ComputeParams

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the yearly CO2e footprint of video viewing",
		Long: `Compute the yearly CO2e footprint of watching online video.

Two totals are printed: one including the manufacturing of the devices used
to watch, one with usage only (device electricity, networks, datacenters).`,
		Example: `  greenstream compute --hours 12
  greenstream compute --role consumer --set device_percent.tv=60 --output markdown --details`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeCompute(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Role, "role", "", "producer or consumer (default from config)")
	cmd.Flags().Float64Var(&params.Hours, "hours", 0, "viewing hours per week (overrides hours_input)")
	cmd.Flags().StringArrayVar(&params.Sets, "set", nil, "override variable[.subkey]=value (repeatable)")
	cmd.Flags().StringVar(&params.Output, "output", config.GetDefaultOutputFormat(), "output format (table, json, markdown)")
	cmd.Flags().BoolVar(&params.Details, "details", false, "explain how the figures are obtained")

	return cmd
}

func executeCompute(cmd *cobra.Command, params ComputeParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	start := time.Now()

	lang, err := resolveLang(cmd)
	if err != nil {
		return err
	}
	role, err := resolveRole(params.Role)
	if err != nil {
		return err
	}
	overrides, err := ParseOverrides(params.Sets)
	if err != nil {
		return fmt.Errorf("parsing overrides: %w", err)
	}
	if cmd.Flags().Changed("hours") {
		overrides = append(overrides, Override{Variable: assumptions.HoursInput, Value: params.Hours})
	}

	a, err := loadAssumptions(cmd)
	if err != nil {
		return err
	}
	if err = ApplyOverrides(a, overrides); err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Str("operation", "compute").
		Str("role", string(role)).
		Int("override_count", len(overrides)).
		Float64("hours_input", a.HoursInput).
		Msg("starting computation")

	reportGroups(cmd, a, lang)
	result := engine.Compute(a, string(role))

	opts := renderOptions{
		Format:    params.Output,
		Lang:      lang,
		Precision: config.GetOutputPrecision(),
		Details:   params.Details,
		Styled:    params.Output == config.FormatTable && cmd.OutOrStdout() == os.Stdout && isTerminal(os.Stdout),
	}
	if err = renderCompute(cmd.OutOrStdout(), opts, result, a); err != nil {
		return err
	}

	log.Info().Ctx(ctx).
		Str("operation", "compute").
		Float64("with_production_kg", result.WithProductionKg).
		Float64("usage_only_kg", result.UsageOnlyKg).
		Dur("duration_ms", time.Since(start)).
		Msg("computation complete")
	return nil
}
