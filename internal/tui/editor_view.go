package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/greenstream/internal/assumptions"
	"github.com/rshade/greenstream/internal/engine"
	"github.com/rshade/greenstream/internal/i18n"
)

// View renders the current view.
func (m *EditorModel) View() string {
	if m.state == EditorStateQuitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(RenderHeader(m.lang, m.role))
	sb.WriteString("\n\n")
	sb.WriteString(RenderSummary(m.lang, m.result))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderFields())
	sb.WriteString("\n")

	if notices := m.Notices(); len(notices) > 0 {
		sb.WriteString(RenderNotices(notices))
		sb.WriteString("\n")
	}

	help := lipgloss.NewStyle().Foreground(ColorMuted)
	if m.state == EditorStateEditing {
		sb.WriteString(help.Render(i18n.T(m.lang, "edit_help_input")))
	} else {
		sb.WriteString(help.Render(i18n.T(m.lang, "edit_help")))
	}
	return sb.String()
}

// RenderHeader renders the title and the current role.
func RenderHeader(l i18n.Lang, role engine.Role) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorHeader).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue).Bold(true)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(i18n.T(l, "page_title")))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render(i18n.T(l, "role_label") + ": "))
	sb.WriteString(valueStyle.Render(i18n.RoleLabel(l, role)))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render(i18n.RoleHelp(l, role)))
	return sb.String()
}

// RenderSummary renders both yearly totals and the per-category split.
func RenderSummary(l i18n.Lang, r engine.Result) string {
	f := l.Formatter()
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	totalStyle := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue)
	unit := " " + i18n.T(l, "unit_per_year")

	var sb strings.Builder
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", fieldLabelWidth, i18n.T(l, "total_with_prod"))))
	sb.WriteString(totalStyle.Render(f.Float(r.WithProductionKg, 2) + unit))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", fieldLabelWidth, i18n.T(l, "total_usage_only"))))
	sb.WriteString(totalStyle.Render(f.Float(r.UsageOnlyKg, 2) + unit))

	for _, k := range engine.CategoryKeys() {
		sb.WriteString("\n  ")
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", fieldLabelWidth-2, i18n.CategoryLabel(l, k))))
		sb.WriteString(valueStyle.Render(f.Float(r.Breakdown[k], 2)))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	return box.Render(sb.String())
}

// renderFields renders the fields around the focused row so the cursor
// stays on screen.
func (m *EditorModel) renderFields() string {
	var sb strings.Builder
	headerStyle := lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	sb.WriteString(headerStyle.Render(fmt.Sprintf("  %-*s %s",
		fieldLabelWidth, i18n.T(m.lang, "col_field"), i18n.T(m.lang, "col_value"))))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", separatorWidth))
	sb.WriteString("\n")

	sectionStyle := lipgloss.NewStyle().Foreground(ColorLabel).Underline(true)
	start, end := visibleWindow(len(m.fields), m.focusedRow, m.tableHeight())
	for i := start; i < end; i++ {
		f := m.fields[i]
		if f.Subkey != "" && (i == start || m.fields[i-1].Variable != f.Variable) {
			sb.WriteString(sectionStyle.Render(i18n.T(m.lang, f.Variable)))
			sb.WriteString("\n")
		}
		value := m.lang.Formatter().Fixed(f.Value, f.Decimals)
		editing := m.state == EditorStateEditing && i == m.focusedRow
		if editing {
			value = m.input.View()
		}
		sb.WriteString(renderFieldRow(FieldLabel(m.lang, f), value, i == m.focusedRow, editing))
		sb.WriteString("\n")
	}
	return sb.String()
}

// tableHeight is the number of rows left for fields once the header,
// summary and help are drawn.
func (m *EditorModel) tableHeight() int {
	const reserved = 20
	return max(5, m.height-reserved)
}

// visibleWindow returns the [start, end) rows to draw for n rows of which
// focused must be visible, with at most size rows.
func visibleWindow(n, focused, size int) (int, int) {
	if n <= size {
		return 0, n
	}
	start := max(0, focused-size/2)
	end := start + size
	if end > n {
		end = n
		start = n - size
	}
	return start, end
}

// FieldLabel returns the row label of f: the entry name for mappings, whose
// variable is shown as a section title, and the variable label for scalars.
func FieldLabel(l i18n.Lang, f assumptions.Field) string {
	if f.Subkey == "" {
		return i18n.Label(l, f.Variable, "")
	}
	return "  " + i18n.Label(l, f.Variable, f.Subkey)
}

func renderFieldRow(label, value string, focused, editing bool) string {
	var sb strings.Builder

	switch {
	case editing:
		sb.WriteString("> ")
	case focused:
		sb.WriteString("→ ")
	default:
		sb.WriteString("  ")
	}

	keyStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue)
	if focused {
		keyStyle = keyStyle.Foreground(ColorHighlight)
	}

	sb.WriteString(keyStyle.Render(fmt.Sprintf("%-*s ", fieldLabelWidth, label)))
	if editing {
		sb.WriteString(value)
	} else {
		sb.WriteString(valueStyle.Render(fmt.Sprintf("%*s", fieldValueWidth, truncate(value, fieldValueWidth))))
	}
	return sb.String()
}

// RenderNotices renders commit messages colored by level.
func RenderNotices(notices []Notice) string {
	lines := make([]string, 0, len(notices))
	for _, n := range notices {
		color := ColorOK
		switch n.Level {
		case NoticeWarning:
			color = ColorWarning
		case NoticeError:
			color = ColorError
		case NoticeInfo:
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(color).Render(n.Text))
	}
	return strings.Join(lines, "\n")
}
