package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/greenstream/internal/assumptions"
	"github.com/rshade/greenstream/internal/config"
	"github.com/rshade/greenstream/internal/logging"
	"github.com/rshade/greenstream/internal/tui"
)

// NewEditCmd creates the "edit" command, an interactive session over the
// assumptions with live results.
func NewEditCmd() *cobra.Command {
	var (
		role string
		save string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the assumptions interactively and watch the results change",
		Long: `Open an interactive session over the assumptions. Percent groups that fall
short of 100 are completed automatically, and the totals are recomputed after
every change. The assumptions file itself is never modified unless --save is
given.`,
		Example: `  greenstream edit
  greenstream edit --assumptions mine.yaml --save mine-edited.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEdit(cmd, role, save)
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "initial role, producer or consumer (default from config)")
	cmd.Flags().StringVar(&save, "save", "", "write the edited assumptions to this file on exit")
	return cmd
}

func executeEdit(cmd *cobra.Command, roleFlag, savePath string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New("edit needs an interactive terminal; use compute --set instead")
	}

	lang, err := resolveLang(cmd)
	if err != nil {
		return err
	}
	role, err := resolveRole(roleFlag)
	if err != nil {
		return err
	}
	a, err := loadAssumptions(cmd)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).Str("role", string(role)).Msg("launching interactive editor")

	model := tui.NewEditorModel(ctx, a, role, lang)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running interactive editor: %w", err)
	}

	editor, ok := finalModel.(*tui.EditorModel)
	if !ok {
		return fmt.Errorf("unexpected model type: %T, expected *tui.EditorModel", finalModel)
	}

	if savePath != "" {
		if err = saveAssumptions(savePath, editor.Assumptions()); err != nil {
			return err
		}
		cmd.Printf("Assumptions written to %s\n", savePath)
	}

	opts := renderOptions{
		Format:    config.FormatTable,
		Lang:      editor.Lang(),
		Precision: config.GetOutputPrecision(),
		Styled:    true,
	}
	return renderCompute(cmd.OutOrStdout(), opts, editor.Result(), editor.Assumptions())
}

// saveAssumptions writes a to path in the assumptions YAML format.
func saveAssumptions(path string, a *assumptions.Assumptions) error {
	data, err := assumptions.Marshal(a)
	if err != nil {
		return fmt.Errorf("encoding assumptions: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing assumptions: %w", err)
	}
	return nil
}
