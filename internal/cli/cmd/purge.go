package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabmaster/internal/cli/styles"
)

var purgeForce bool

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every saved tab and setting",
	Long: `Remove all tabmaster data from the local store: the tab tree and the
settings record. The configuration file is left alone.

Use --force to skip the confirmation prompt.`,
	Args: cobra.NoArgs,
	RunE: runPurge,
}

func init() {
	rootCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().BoolVarP(&purgeForce, "force", "f", false, "purge without prompting")
}

func runPurge(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if !purgeForce {
		state := a.Store.State().TabContainer
		detail := fmt.Sprintf("%d containers, %d tabs and your settings are removed for good.",
			len(state.Containers), state.TabCount())
		ok, err := styles.Ask(theme, "Purge all local data?", detail)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), theme.Subtle.Render("  Purge cancelled."))
			return nil
		}
	}

	if err := a.UseCases.Purge.Execute(a.Ctx()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), theme.RenderSuccess("All saved data removed"))
	return nil
}
