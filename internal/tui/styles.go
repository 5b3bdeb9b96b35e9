package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the views.
const (
	ColorHeader    = lipgloss.Color("42")
	ColorBorder    = lipgloss.Color("240")
	ColorLabel     = lipgloss.Color("250")
	ColorValue     = lipgloss.Color("255")
	ColorHighlight = lipgloss.Color("86")
	ColorMuted     = lipgloss.Color("245")
	ColorOK        = lipgloss.Color("34")
	ColorWarning   = lipgloss.Color("214")
	ColorError     = lipgloss.Color("196")
)

// Column widths of the assumptions table.
const (
	fieldLabelWidth   = 34
	fieldValueWidth   = 14
	separatorWidth    = 60
	minTruncateLen    = 3
	defaultViewWidth  = 80
	defaultViewHeight = 24
)

// truncate shortens s to maxLen runes, ending with an ellipsis when room allows.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= minTruncateLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-minTruncateLen]) + "..."
}
