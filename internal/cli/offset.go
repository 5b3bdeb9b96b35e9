package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/greenstream/internal/config"
	"github.com/rshade/greenstream/internal/greenops"
	"github.com/rshade/greenstream/internal/i18n"
	"github.com/rshade/greenstream/internal/logging"
)

// OffsetParams holds the parameters of the offset command.
type OffsetParams struct {
	Value  float64
	Unit   string
	Output string
}

// NewOffsetCmd creates the "offset" command, which converts an amount of
// CO2e into counts of offsetting actions.
func NewOffsetCmd() *cobra.Command {
	var params OffsetParams

	cmd := &cobra.Command{
		Use:   "offset",
		Short: "Show how many actions offset an amount of CO2e",
		Example: `  greenstream offset --value 120
  greenstream offset --value 1.5 --unit t --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeOffset(cmd, params)
		},
	}

	cmd.Flags().Float64Var(&params.Value, "value", 0, "amount of CO2e")
	cmd.Flags().StringVar(&params.Unit, "unit", "kg", "unit of --value (g, kg, t, lb)")
	cmd.Flags().StringVar(&params.Output, "output", config.FormatTable, "output format (table, json)")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func executeOffset(cmd *cobra.Command, params OffsetParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	lang, err := resolveLang(cmd)
	if err != nil {
		return err
	}
	a, err := loadAssumptions(cmd)
	if err != nil {
		return err
	}

	table, err := greenops.OffsetInput(greenops.CarbonInput{Value: params.Value, Unit: params.Unit}, &a.CO2eOffsetting)
	if err != nil {
		return fmt.Errorf("computing offsets: %w", err)
	}

	log.Debug().Ctx(ctx).
		Str("operation", "offset").
		Float64("kg", table.UsageOnlyKg).
		Int("actions", len(table.Rows)).
		Msg("offsets computed")

	return renderOffset(cmd.OutOrStdout(), params.Output, lang, table)
}

func renderOffset(w io.Writer, format string, lang i18n.Lang, table greenops.OffsetTable) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, table)
	case config.FormatTable, "":
		f := lang.Formatter()
		if _, err := fmt.Fprintf(w, "%s kg CO2e\n\n", f.Float(table.UsageOnlyKg, 2)); err != nil {
			return err
		}
		for _, row := range table.Rows {
			if row.Skipped {
				continue
			}
			if _, err := fmt.Fprintln(w, i18n.ActionSentence(lang, row.Action, row.UsageOnly)); err != nil {
				return err
			}
		}
		return nil
	default:
		return errUnsupportedFormat(format, config.FormatTable, config.FormatJSON)
	}
}
