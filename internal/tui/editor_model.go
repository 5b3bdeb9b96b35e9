// Package tui implements the interactive assumptions editor.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/greenstream/internal/assumptions"
	"github.com/rshade/greenstream/internal/engine"
	"github.com/rshade/greenstream/internal/i18n"
	"github.com/rshade/greenstream/internal/logging"
)

// EditorState represents the current state of the editor.
type EditorState int

const (
	// EditorStateBrowsing indicates the user is moving between fields.
	EditorStateBrowsing EditorState = iota
	// EditorStateEditing indicates a value is being typed.
	EditorStateEditing
	// EditorStateQuitting indicates the application is exiting.
	EditorStateQuitting
)

// NoticeLevel orders the messages shown under the table.
type NoticeLevel int

const (
	// NoticeInfo reports an automatic adjustment.
	NoticeInfo NoticeLevel = iota
	// NoticeWarning reports a value the user should fix.
	NoticeWarning
	// NoticeError reports rejected input.
	NoticeError
)

// Notice is a message displayed after a commit.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// EditorModel is the Bubble Tea model of an editing session. It owns a
// private copy of the assumptions, so sessions never share state.
type EditorModel struct {
	ctx context.Context

	assumptions *assumptions.Assumptions
	groups      []assumptions.PercentGroup
	fields      []assumptions.Field
	result      engine.Result

	role engine.Role
	lang i18n.Lang

	focusedRow int
	input      textinput.Model
	notices    []Notice
	warnings   []Notice

	state  EditorState
	width  int
	height int
}

// NewEditorModel starts a session on a copy of a.
//
// Parameters:
//   - ctx: Context carrying the logger
//   - a: The assumptions to start from; never modified
//   - role: Initial role, which only changes the labels
//   - lang: Initial display language
//
// Returns a model ready for tea.NewProgram.
func NewEditorModel(ctx context.Context, a *assumptions.Assumptions, role engine.Role, lang i18n.Lang) *EditorModel {
	in := textinput.New()
	in.CharLimit = 32

	m := &EditorModel{
		ctx:         ctx,
		assumptions: a.Clone(),
		groups:      assumptions.DefaultGroups(),
		role:        role,
		lang:        lang,
		input:       in,
		state:       EditorStateBrowsing,
		width:       defaultViewWidth,
		height:      defaultViewHeight,
	}
	m.recompute()
	return m
}

// Init initializes the model.
func (m *EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.state == EditorStateEditing {
			return m.handleEditKey(msg)
		}
		return m.handleBrowseKey(msg)
	}

	return m, nil
}

// handleBrowseKey processes keyboard input outside of edit mode.
//
//nolint:exhaustive // Only handling the keys the editor binds.
func (m *EditorModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = EditorStateQuitting
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = EditorStateQuitting
			return m, tea.Quit
		case "r":
			m.role = m.role.Toggle()
			m.recompute()
		case "l":
			m.lang = m.lang.Toggle()
			m.notices = nil
			m.recompute()
		case "k":
			m.moveFocus(-1)
		case "j":
			m.moveFocus(1)
		}

	case tea.KeyUp:
		m.moveFocus(-1)

	case tea.KeyDown:
		m.moveFocus(1)

	case tea.KeyEnter:
		if m.focusedRow < len(m.fields) {
			f := m.fields[m.focusedRow]
			m.input.SetValue(m.lang.Formatter().Fixed(f.Value, f.Decimals))
			m.input.CursorEnd()
			m.state = EditorStateEditing
			return m, m.input.Focus()
		}
	}

	return m, nil
}

// handleEditKey processes keyboard input while a value is typed.
//
//nolint:exhaustive // Everything else goes to the text input.
func (m *EditorModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.commit(m.input.Value())
		m.stopEditing()
		return m, nil

	case tea.KeyEsc:
		m.stopEditing()
		return m, nil

	case tea.KeyCtrlC:
		m.state = EditorStateQuitting
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *EditorModel) stopEditing() {
	m.input.Blur()
	m.input.SetValue("")
	m.state = EditorStateBrowsing
}

func (m *EditorModel) moveFocus(delta int) {
	m.focusedRow = max(0, min(len(m.fields)-1, m.focusedRow+delta))
}

// commit applies raw to the focused field: the value is parsed in the
// session language, clamped, rounded to the field's precision, percent
// groups are filled, and the results are recomputed.
func (m *EditorModel) commit(raw string) {
	if m.focusedRow >= len(m.fields) {
		return
	}
	f := m.fields[m.focusedRow]
	m.notices = nil

	v, err := i18n.ParseNumber(m.lang, raw)
	if err != nil {
		m.notices = append(m.notices, Notice{Level: NoticeError, Text: i18n.T(m.lang, "edit_invalid")})
		return
	}

	v = ClampValue(f.Variable, v)
	v = m.assumptions.Round(f.Variable, f.Subkey, v)
	if err = m.assumptions.Set(f.Variable, f.Subkey, v); err != nil {
		m.notices = append(m.notices, Notice{Level: NoticeError, Text: err.Error()})
		return
	}

	logger := logging.FromContext(m.ctx)
	logger.Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Str("field", f.Name()).
		Float64("value", v).
		Msg("assumption updated")

	filled, err := assumptions.FillGroups(m.assumptions, m.groups)
	if err != nil {
		m.notices = append(m.notices, Notice{Level: NoticeError, Text: err.Error()})
	}
	for _, c := range filled {
		if c.Status == assumptions.GroupBelow {
			m.notices = append(m.notices, Notice{Level: NoticeInfo, Text: i18n.GroupMessage(m.lang, c)})
		}
	}
	m.recompute()
}

// ClampValue bounds a user-entered value: percent fields to [0, 100],
// fields that accept negatives are left alone, every other field to
// [0, +Inf).
func ClampValue(variable string, v float64) float64 {
	switch {
	case assumptions.IsPercentField(variable):
		return max(0, min(100, v))
	case assumptions.AllowsNegative(variable):
		return v
	default:
		return max(0, v)
	}
}

// recompute refreshes the field list, the results and the group warnings.
func (m *EditorModel) recompute() {
	m.fields = m.assumptions.Fields()
	if m.focusedRow >= len(m.fields) {
		m.focusedRow = max(0, len(m.fields)-1)
	}
	m.result = engine.Compute(m.assumptions, string(m.role))

	m.warnings = m.warnings[:0]
	for _, c := range assumptions.CheckGroups(m.assumptions, m.groups) {
		if c.Status == assumptions.GroupAbove {
			m.warnings = append(m.warnings, Notice{Level: NoticeWarning, Text: i18n.GroupMessage(m.lang, c)})
		}
	}
}

// Assumptions returns a copy of the session's current assumptions.
func (m *EditorModel) Assumptions() *assumptions.Assumptions {
	return m.assumptions.Clone()
}

// Result returns the latest computation.
func (m *EditorModel) Result() engine.Result {
	return m.result
}

// Role returns the session role.
func (m *EditorModel) Role() engine.Role { return m.role }

// Lang returns the session language.
func (m *EditorModel) Lang() i18n.Lang { return m.lang }

// Notices returns the messages of the last commit followed by the
// warnings of the current values.
func (m *EditorModel) Notices() []Notice {
	out := make([]Notice, 0, len(m.notices)+len(m.warnings))
	out = append(out, m.notices...)
	return append(out, m.warnings...)
}

// FocusedField returns the field under the cursor.
func (m *EditorModel) FocusedField() (assumptions.Field, error) {
	if m.focusedRow >= len(m.fields) {
		return assumptions.Field{}, fmt.Errorf("no field at row %d", m.focusedRow)
	}
	return m.fields[m.focusedRow], nil
}
