package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/tabmaster/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:         "about",
	Aliases:     []string{"version"},
	Short:       "Show version and build information",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationApp: appNone},
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(theme).Render(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
