package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/greenstream/internal/assumptions"
	"github.com/rshade/greenstream/internal/config"
	"github.com/rshade/greenstream/internal/i18n"
)

const formatYAML = "yaml"

// NewAssumptionsCmd creates the "assumptions" command group.
func NewAssumptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assumptions",
		Short: "Inspect, validate and create assumption files",
	}
	cmd.AddCommand(newAssumptionsShowCmd(), newAssumptionsValidateCmd(), newAssumptionsInitCmd())
	return cmd
}

// FieldOutput is one assumption in "assumptions show --output json".
type FieldOutput struct {
	Name     string  `json:"name"`
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Decimals int     `json:"decimals"`
}

func newAssumptionsShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the assumptions in use",
		Example: `  greenstream assumptions show
  greenstream assumptions show --assumptions mine.yaml --output yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lang, err := resolveLang(cmd)
			if err != nil {
				return err
			}
			a, err := loadAssumptions(cmd)
			if err != nil {
				return err
			}
			return renderAssumptions(cmd.OutOrStdout(), output, lang, a)
		},
	}

	cmd.Flags().StringVar(&output, "output", config.FormatTable, "output format (table, json, yaml)")
	return cmd
}

func renderAssumptions(w io.Writer, format string, lang i18n.Lang, a *assumptions.Assumptions) error {
	switch format {
	case formatYAML:
		data, err := assumptions.Marshal(a)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case config.FormatJSON:
		fields := a.Fields()
		out := make([]FieldOutput, 0, len(fields))
		for _, f := range fields {
			out = append(out, FieldOutput{
				Name:     f.Name(),
				Label:    i18n.Label(lang, f.Variable, f.Subkey),
				Value:    f.Value,
				Decimals: f.Decimals,
			})
		}
		return writeJSON(w, out)

	case config.FormatTable, "":
		f := lang.Formatter()
		tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', 0)
		fmt.Fprintf(tw, "%s\t%s\n", i18n.T(lang, "col_field"), i18n.T(lang, "col_value"))
		for _, field := range a.Fields() {
			fmt.Fprintf(tw, "%s\t%s\n", field.Name(), f.Fixed(field.Value, field.Decimals))
		}
		return tw.Flush()

	default:
		return errUnsupportedFormat(format, config.FormatTable, config.FormatJSON, formatYAML)
	}
}

func newAssumptionsValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check an assumptions file",
		Long: `Check that an assumptions file parses, carries every required value, and
that its percent groups add up to 100. Without FILE the configured file is
checked. Groups that do not add up are reported but are not errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := resolveLang(cmd)
			if err != nil {
				return err
			}

			var a *assumptions.Assumptions
			if len(args) == 1 {
				a, err = loadAssumptionsFrom(cmd.Context(), args[0])
			} else {
				a, err = loadAssumptions(cmd)
			}
			if err != nil {
				return err
			}

			reportGroups(cmd, a, lang)
			cmd.Printf("Assumptions are valid (%d values)\n", len(a.Fields()))
			return nil
		},
	}
}

func newAssumptionsInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init PATH",
		Short: "Write the built-in assumptions to a file for editing",
		Args:  cobra.ExactArgs(1),
		Example: `  greenstream assumptions init my-assumptions.yaml
  greenstream assumptions init my-assumptions.yaml --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDefaultAssumptions(cmd, args[0], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// writeDefaultAssumptions writes the embedded defaults verbatim, comments
// included.
func writeDefaultAssumptions(cmd *cobra.Command, path string, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return errors.New("assumptions file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access %s: %w", path, err)
		}
	}

	if err := os.WriteFile(path, assumptions.DefaultSource(), 0o600); err != nil {
		return fmt.Errorf("writing assumptions: %w", err)
	}
	cmd.Printf("Assumptions written to %s\n", path)
	return nil
}
