package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const reviewPromptText = "Enjoying tabmaster? A rating helps other people find it."

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Check or answer the rate-and-review prompt",
	Long: `The rate-and-review prompt is shown at most once per cooldown period,
and never during the grace period after the first run.

  tabmaster review check   # Evaluate the prompt now
  tabmaster review rated   # I rated it, stop asking
  tabmaster review never   # Never ask again
  tabmaster review later   # Ask again after the cooldown`,
}

var reviewCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate whether the review prompt is due",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		shown, err := a.UseCases.Review.Evaluate(a.Ctx())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !shown {
			fmt.Fprintln(out, theme.Subtle.Render("  No review prompt due."))
			return nil
		}
		fmt.Fprintln(out, theme.Highlight.Render(reviewPromptText))
		fmt.Fprintln(out, theme.Subtle.Render("  Answer with: tabmaster review rated | never | later"))
		return nil
	},
}

var reviewRatedCmd = &cobra.Command{
	Use:   "rated",
	Short: "Record that the prompt was answered with a rating",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if err := a.UseCases.Review.MarkRated(a.Ctx()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.RenderSuccess("Thanks for rating!"))
		return nil
	},
}

var reviewNeverCmd = &cobra.Command{
	Use:   "never",
	Short: "Never show the review prompt again",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if err := a.UseCases.Review.NeverAskAgain(a.Ctx()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.RenderSuccess("You will not be asked again."))
		return nil
	},
}

var reviewLaterCmd = &cobra.Command{
	Use:   "later",
	Short: "Dismiss the review prompt until the cooldown expires",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		return a.UseCases.Review.Later(a.Ctx())
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.AddCommand(reviewCheckCmd, reviewRatedCmd, reviewNeverCmd, reviewLaterCmd)
}
