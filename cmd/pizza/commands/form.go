package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pizzaorder/internal/tui"
)

// form: interactive order form.
func formCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Fill in and submit the order form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := tui.New(appCtx.NewForm(), appCtx.Submitter, appCtx.Catalog,
				tui.WithLogger(logger().Named("tui")),
				tui.WithContext(cmd.Context()))
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
