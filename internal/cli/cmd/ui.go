package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/tabmaster/internal/cli/model"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse and edit saved tabs interactively",
	Long: `Open the interactive tab tree.

Logs go to the log file while the UI owns the terminal ('tabmaster logs'
shows them). Edits are flushed automatically and on exit.`,
	Args: cobra.NoArgs,
	RunE: runUI,
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	uc := a.UseCases
	return model.RunTree(a.Ctx(), theme, model.TreeConfig{
		Store:      a.Store,
		Tabs:       uc.Tabs,
		History:    uc.History,
		Navigation: uc.Navigation,
		Review:     uc.Review,
		Save:       uc.Save,
		Notify:     uc.Notify,
		CopyURL:    uc.CopyURL,
	}, tea.WithAltScreen(), tea.WithContext(a.Ctx()))
}
