package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"golang.org/x/term"

	"github.com/rshade/greenstream/internal/assumptions"
	"github.com/rshade/greenstream/internal/config"
	"github.com/rshade/greenstream/internal/engine"
	"github.com/rshade/greenstream/internal/greenops"
	"github.com/rshade/greenstream/internal/i18n"
)

// Table layout.
const (
	tabMinWidth = 0
	tabWidth    = 8
	tabPadding  = 2

	defaultBoxWidth = 64
	minBoxWidth     = 40
)

// ComputeOutput is the JSON document written by "compute --output json".
type ComputeOutput struct {
	Role             string               `json:"role"`
	Language         string               `json:"language"`
	HoursInput       float64              `json:"hours_input"`
	UsageOnlyKg      float64              `json:"usage_only_kg_co2e_per_year"`
	WithProductionKg float64              `json:"with_production_kg_co2e_per_year"`
	Categories       map[string]float64   `json:"categories"`
	Breakdown        engine.Breakdown     `json:"breakdown"`
	Offsetting       greenops.OffsetTable `json:"offsetting"`
}

// NewComputeOutput assembles the JSON view of a computation.
func NewComputeOutput(r engine.Result, a *assumptions.Assumptions, lang i18n.Lang) ComputeOutput {
	categories := make(map[string]float64, len(engine.CategoryKeys()))
	for _, k := range engine.CategoryKeys() {
		categories[k] = r.Breakdown[k]
	}
	return ComputeOutput{
		Role:             string(r.Role),
		Language:         string(lang),
		HoursInput:       a.HoursInput,
		UsageOnlyKg:      r.UsageOnlyKg,
		WithProductionKg: r.WithProductionKg,
		Categories:       categories,
		Breakdown:        r.Breakdown,
		Offsetting:       greenops.BuildOffsetTable(r.UsageOnlyKg, r.WithProductionKg, &a.CO2eOffsetting),
	}
}

// renderOptions carries what every renderer needs besides the data.
type renderOptions struct {
	Format    string
	Lang      i18n.Lang
	Precision int
	Details   bool
	Styled    bool
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderCompute writes a computation in the requested format.
func renderCompute(w io.Writer, opts renderOptions, r engine.Result, a *assumptions.Assumptions) error {
	switch opts.Format {
	case config.FormatJSON:
		return writeJSON(w, NewComputeOutput(r, a, opts.Lang))
	case config.FormatMarkdown:
		return renderComputeMarkdown(w, opts, r, a)
	case config.FormatTable, "":
		return renderComputeTable(w, opts, r, a)
	default:
		return errUnsupportedFormat(opts.Format, config.FormatTable, config.FormatJSON, config.FormatMarkdown)
	}
}

func renderComputeTable(w io.Writer, opts renderOptions, r engine.Result, a *assumptions.Assumptions) error {
	l := opts.Lang
	f := l.Formatter()
	unit := i18n.T(l, "unit_per_year")

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s\n", i18n.T(l, "role_label"), i18n.RoleLabel(l, r.Role))
	fmt.Fprintf(&sb, "%s: %s\n\n", i18n.HoursLabel(l, r.Role), f.Fixed(a.HoursInput, -1))

	if opts.Styled {
		sb.WriteString(renderStyledSummary(l, r, opts.Precision))
		sb.WriteString("\n\n")
	} else {
		fmt.Fprintf(&sb, "%s\n  %s %s\n", i18n.T(l, "result_with_production_prefix"),
			f.Float(r.WithProductionKg, opts.Precision), unit)
		fmt.Fprintf(&sb, "%s\n  %s %s\n\n", i18n.T(l, "result_without_production_prefix"),
			f.Float(r.UsageOnlyKg, opts.Precision), unit)
	}

	tw := tabwriter.NewWriter(&sb, tabMinWidth, tabWidth, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", i18n.T(l, "col_category"), i18n.T(l, "col_kg_per_year"))
	for _, k := range engine.CategoryKeys() {
		fmt.Fprintf(tw, "%s\t%s\n", i18n.CategoryLabel(l, k), f.Float(r.Breakdown[k], opts.Precision))
	}
	fmt.Fprintf(tw, "%s\t%s\n", i18n.T(l, "total_with_prod"), f.Float(r.WithProductionKg, opts.Precision))
	fmt.Fprintf(tw, "%s\t%s\n", i18n.T(l, "total_usage_only"), f.Float(r.UsageOnlyKg, opts.Precision))
	if err := tw.Flush(); err != nil {
		return err
	}

	sb.WriteString("\n")
	if err := writeOffsetTable(&sb, l, greenops.BuildOffsetTable(r.UsageOnlyKg, r.WithProductionKg, &a.CO2eOffsetting)); err != nil {
		return err
	}

	if opts.Details {
		details, err := renderDetails(l, r, a)
		if err != nil {
			return err
		}
		sb.WriteString("\n")
		sb.WriteString(i18n.StripEmphasis(details))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeOffsetTable writes the offsetting table with one row per action.
func writeOffsetTable(w io.Writer, l i18n.Lang, t greenops.OffsetTable) error {
	f := l.Formatter()
	if _, err := fmt.Fprintln(w, i18n.T(l, "co2e_offsetting_title")); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "\t%s\t%s\n", i18n.T(l, "offsetting_table_usage_only"), i18n.T(l, "offsetting_table_with_production"))
	for _, row := range t.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			i18n.Label(l, assumptions.CO2eOffsetting, row.Action),
			f.Float(row.UsageOnly, 2),
			f.Float(row.WithProduction, 2))
	}
	return tw.Flush()
}

// renderDetails renders the explanation and both detail templates.
func renderDetails(l i18n.Lang, r engine.Result, a *assumptions.Assumptions) (string, error) {
	values := i18n.TemplateValues(r, a)
	details, err := i18n.RenderKey(l, "details_text", values)
	if err != nil {
		return "", err
	}
	more, err := i18n.RenderKey(l, "even_more_details_text", values)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(i18n.T(l, "result_explanation"))
	sb.WriteString("\n\n")
	sb.WriteString(i18n.T(l, "details_subheader"))
	sb.WriteString("\n\n")
	sb.WriteString(details)
	sb.WriteString("\n\n")
	sb.WriteString(i18n.T(l, "even_more_details_subheader"))
	sb.WriteString("\n\n")
	sb.WriteString(more)
	sb.WriteString("\n")
	return sb.String(), nil
}

func renderComputeMarkdown(w io.Writer, opts renderOptions, r engine.Result, a *assumptions.Assumptions) error {
	l := opts.Lang
	f := l.Formatter()

	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", i18n.T(l, "page_title"))
	fmt.Fprintf(&sb, "**%s**: %s  \n", i18n.T(l, "role_label"), i18n.RoleLabel(l, r.Role))
	fmt.Fprintf(&sb, "**%s**: %s\n\n", i18n.HoursLabel(l, r.Role), f.Fixed(a.HoursInput, -1))

	fmt.Fprintf(&sb, "| %s | %s |\n|---|---:|\n", i18n.T(l, "col_category"), i18n.T(l, "col_kg_per_year"))
	for _, k := range engine.CategoryKeys() {
		fmt.Fprintf(&sb, "| %s | %s |\n", i18n.CategoryLabel(l, k), f.Float(r.Breakdown[k], opts.Precision))
	}
	fmt.Fprintf(&sb, "| **%s** | **%s** |\n", i18n.T(l, "total_with_prod"), f.Float(r.WithProductionKg, opts.Precision))
	fmt.Fprintf(&sb, "| **%s** | **%s** |\n\n", i18n.T(l, "total_usage_only"), f.Float(r.UsageOnlyKg, opts.Precision))

	table := greenops.BuildOffsetTable(r.UsageOnlyKg, r.WithProductionKg, &a.CO2eOffsetting)
	fmt.Fprintf(&sb, "### %s\n\n", i18n.T(l, "co2e_offsetting_title"))
	fmt.Fprintf(&sb, "| | %s | %s |\n|---|---:|---:|\n",
		i18n.T(l, "offsetting_table_usage_only"), i18n.T(l, "offsetting_table_with_production"))
	for _, row := range table.Rows {
		fmt.Fprintf(&sb, "| %s | %s | %s |\n",
			i18n.Label(l, assumptions.CO2eOffsetting, row.Action), f.Float(row.UsageOnly, 2), f.Float(row.WithProduction, 2))
	}

	if opts.Details {
		details, err := renderDetails(l, r, a)
		if err != nil {
			return err
		}
		sb.WriteString("\n")
		sb.WriteString(details)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// escapeMarkdownCell makes s safe inside a markdown table cell.
func escapeMarkdownCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// renderStyledSummary draws both totals in a bordered box for terminals.
func renderStyledSummary(l i18n.Lang, r engine.Result, precision int) string {
	f := l.Formatter()
	unit := " " + i18n.T(l, "unit_per_year")

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	mutedStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("246"))
	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(calculateBoxWidth(getTerminalWidth(os.Stdout)))

	var content strings.Builder
	content.WriteString(titleStyle.Render(i18n.T(l, "total_with_prod")))
	content.WriteString("\n")
	content.WriteString(valueStyle.Render(f.Float(r.WithProductionKg, precision) + unit))
	content.WriteString("\n\n")
	content.WriteString(titleStyle.Render(i18n.T(l, "total_usage_only")))
	content.WriteString("\n")
	content.WriteString(valueStyle.Render(f.Float(r.UsageOnlyKg, precision) + unit))
	content.WriteString("\n\n")
	content.WriteString(mutedStyle.Render(i18n.RoleHelp(l, r.Role)))
	return box.Render(content.String())
}

// getTerminalWidth returns the width of f, or a default when f is not a terminal.
func getTerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultBoxWidth
	}
	return width
}

// calculateBoxWidth uses most of the terminal, capped at the default.
func calculateBoxWidth(termWidth int) int {
	const layoutWidthPercent = 0.8
	boxWidth := int(float64(termWidth) * layoutWidthPercent)
	return max(minBoxWidth, min(boxWidth, defaultBoxWidth))
}

// errUnsupportedFormat reports a format a command cannot produce.
func errUnsupportedFormat(format string, supported ...string) error {
	return fmt.Errorf("unsupported output format %q (expected %s)", format, strings.Join(supported, ", "))
}
