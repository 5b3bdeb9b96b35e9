package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/greenstream/internal/assumptions"
	"github.com/rshade/greenstream/internal/config"
	"github.com/rshade/greenstream/internal/engine"
	"github.com/rshade/greenstream/internal/i18n"
	"github.com/rshade/greenstream/internal/logging"
)

// CompareRow is the outcome of one assumptions file.
type CompareRow struct {
	File             string             `json:"file"`
	HoursInput       float64            `json:"hours_input"`
	UsageOnlyKg      float64            `json:"usage_only_kg_co2e_per_year"`
	WithProductionKg float64            `json:"with_production_kg_co2e_per_year"`
	Categories       map[string]float64 `json:"categories"`
}

// CompareParams holds the parameters of the compare command.
type CompareParams struct {
	Role   string
	Hours  float64
	Sets   []string
	Output string
}

// NewCompareCmd creates the "compare" command, which computes several
// assumption files side by side.
func NewCompareCmd() *cobra.Command {
	var params CompareParams

	cmd := &cobra.Command{
		Use:   "compare FILE...",
		Short: "Compare the footprint of several assumption files",
		Long: `Compare the footprint of several assumption files. Each file is loaded and
computed independently; --hours and --set apply to all of them.`,
		Args: cobra.MinimumNArgs(1),
		Example: `  greenstream compare france.yaml germany.yaml --hours 10
  greenstream compare a.yaml b.yaml --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeCompare(cmd, params, args)
		},
	}

	cmd.Flags().StringVar(&params.Role, "role", "", "producer or consumer (default from config)")
	cmd.Flags().Float64Var(&params.Hours, "hours", 0, "viewing hours per week for every file")
	cmd.Flags().StringArrayVar(&params.Sets, "set", nil, "override variable[.subkey]=value for every file (repeatable)")
	cmd.Flags().StringVar(&params.Output, "output", config.GetDefaultOutputFormat(), "output format (table, json, markdown)")

	return cmd
}

func executeCompare(cmd *cobra.Command, params CompareParams, files []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

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

	rows, err := CompareFiles(ctx, files, role, overrides)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Str("operation", "compare").
		Int("file_count", len(files)).
		Msg("comparison complete")

	return renderCompare(cmd.OutOrStdout(), params.Output, lang, rows, config.GetOutputPrecision())
}

// CompareFiles loads and computes every file concurrently. Each file gets
// its own assumptions snapshot. Rows follow the order of files; the first
// failure cancels the rest.
func CompareFiles(ctx context.Context, files []string, role engine.Role, overrides []Override) ([]CompareRow, error) {
	rows := make([]CompareRow, len(files))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, file := range files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			a, err := loadAssumptionsFrom(gCtx, file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			if err = ApplyOverrides(a, overrides); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			r := engine.Compute(a, string(role))
			categories := make(map[string]float64, len(engine.CategoryKeys()))
			for _, k := range engine.CategoryKeys() {
				categories[k] = r.Breakdown[k]
			}
			rows[i] = CompareRow{
				File:             file,
				HoursInput:       a.HoursInput,
				UsageOnlyKg:      r.UsageOnlyKg,
				WithProductionKg: r.WithProductionKg,
				Categories:       categories,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func renderCompare(w io.Writer, format string, lang i18n.Lang, rows []CompareRow, precision int) error {
	f := lang.Formatter()
	categories := engine.CategoryKeys()

	switch format {
	case config.FormatJSON:
		return writeJSON(w, rows)

	case config.FormatMarkdown:
		return renderCompareMarkdown(w, lang, rows, precision)

	case config.FormatTable, "":
		tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "%s\t", i18n.T(lang, "col_file"))
		for _, k := range categories {
			fmt.Fprintf(tw, "%s\t", i18n.CategoryLabel(lang, k))
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", i18n.T(lang, "total_usage_only"), i18n.T(lang, "total_with_prod"))
		for _, row := range rows {
			fmt.Fprintf(tw, "%s\t", row.File)
			for _, k := range categories {
				fmt.Fprintf(tw, "%s\t", f.Float(row.Categories[k], precision))
			}
			fmt.Fprintf(tw, "%s\t%s\t\n", f.Float(row.UsageOnlyKg, precision), f.Float(row.WithProductionKg, precision))
		}
		return tw.Flush()

	default:
		return errUnsupportedFormat(format, config.FormatTable, config.FormatJSON, config.FormatMarkdown)
	}
}

func renderCompareMarkdown(w io.Writer, lang i18n.Lang, rows []CompareRow, precision int) error {
	f := lang.Formatter()
	categories := engine.CategoryKeys()

	var sb strings.Builder
	fmt.Fprintf(&sb, "| %s |", i18n.T(lang, "col_file"))
	for _, k := range categories {
		fmt.Fprintf(&sb, " %s |", i18n.CategoryLabel(lang, k))
	}
	fmt.Fprintf(&sb, " %s | %s |\n|---|", i18n.T(lang, "total_usage_only"), i18n.T(lang, "total_with_prod"))
	for range len(categories) + 2 {
		sb.WriteString("---:|")
	}
	sb.WriteString("\n")

	for _, row := range rows {
		fmt.Fprintf(&sb, "| %s |", escapeMarkdownCell(row.File))
		for _, k := range categories {
			fmt.Fprintf(&sb, " %s |", f.Float(row.Categories[k], precision))
		}
		fmt.Fprintf(&sb, " %s | %s |\n", f.Float(row.UsageOnlyKg, precision), f.Float(row.WithProductionKg, precision))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
