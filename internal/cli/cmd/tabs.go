package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/tabmaster/internal/application/usecase"
	"github.com/bnema/tabmaster/internal/cli/styles"
)

var (
	tabsShowIDs bool
	tabsColor   string
	tabsTitle   string
	tabsIndex   int
)

var tabsCmd = &cobra.Command{
	Use:     "tabs",
	Aliases: []string{"t"},
	Short:   "List and edit saved tabs",
	Long: `List and edit the saved tab tree.

Containers and tabs are referenced by id, a unique id prefix, or for
containers, their title.

Examples:
  tabmaster tabs                              # Show the tree
  tabmaster tabs new-container Research       # Create a container
  tabmaster tabs add Research https://go.dev  # Save a tab
  tabmaster tabs search golang                # Find tabs`,
	RunE: runTabsList,
}

var tabsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the saved tab tree",
	Args:    cobra.NoArgs,
	RunE:    runTabsList,
}

var tabsNewContainerCmd = &cobra.Command{
	Use:   "new-container [title]",
	Short: "Create an empty container",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTabsNewContainer,
}

var tabsRenameCmd = &cobra.Command{
	Use:   "rename <container> <title>",
	Short: "Rename a container",
	Args:  cobra.ExactArgs(2),
	RunE:  runTabsRename,
}

var tabsCollapseCmd = &cobra.Command{
	Use:   "collapse <container>",
	Short: "Toggle whether a container's tabs are listed",
	Args:  cobra.ExactArgs(1),
	RunE:  runTabsCollapse,
}

var tabsRemoveContainerCmd = &cobra.Command{
	Use:   "rm-container <container>",
	Short: "Remove a container and all of its tabs",
	Args:  cobra.ExactArgs(1),
	RunE:  runTabsRemoveContainer,
}

var tabsAddCmd = &cobra.Command{
	Use:   "add <container> <url>",
	Short: "Save a tab into a container",
	Args:  cobra.ExactArgs(2),
	RunE:  runTabsAdd,
}

var tabsRemoveCmd = &cobra.Command{
	Use:   "rm <tab>",
	Short: "Remove a saved tab",
	Args:  cobra.ExactArgs(1),
	RunE:  runTabsRemove,
}

var tabsMoveCmd = &cobra.Command{
	Use:   "mv <tab> <container>",
	Short: "Move a tab into another container",
	Args:  cobra.ExactArgs(2),
	RunE:  runTabsMove,
}

var tabsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find tabs by title or url",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTabsSearch,
}

func init() {
	rootCmd.AddCommand(tabsCmd)
	tabsCmd.AddCommand(tabsListCmd, tabsNewContainerCmd, tabsRenameCmd, tabsCollapseCmd,
		tabsRemoveContainerCmd, tabsAddCmd, tabsRemoveCmd, tabsMoveCmd, tabsSearchCmd)

	tabsCmd.PersistentFlags().BoolVar(&tabsShowIDs, "ids", false, "show container and tab ids")
	tabsNewContainerCmd.Flags().StringVar(&tabsColor, "color", "", "container color")
	tabsAddCmd.Flags().StringVar(&tabsTitle, "title", "", "tab title")
	tabsAddCmd.Flags().IntVar(&tabsIndex, "index", -1, "insert position (appends when negative)")
	tabsMoveCmd.Flags().IntVar(&tabsIndex, "index", -1, "insert position (appends when negative)")
}

func runTabsList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	renderer := styles.NewTabsRenderer(theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderTree(a.Store.State().TabContainer, tabsShowIDs))
	return nil
}

func runTabsNewContainer(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	var title string
	if len(args) > 0 {
		title = args[0]
	}

	c, err := a.UseCases.Tabs.AddContainer(a.Ctx(), usecase.AddContainerInput{Title: title, Color: tabsColor})
	if err != nil {
		return err
	}
	if err := commit(a); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), theme.RenderSuccess(fmt.Sprintf("Created %s %s", c.Title, theme.Subtle.Render(string(c.ID)))))
	return nil
}

func runTabsRename(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	id, err := resolveContainer(a.Store.State().TabContainer, args[0])
	if err != nil {
		return err
	}
	if err := a.UseCases.Tabs.RenameContainer(a.Ctx(), id, args[1]); err != nil {
		return err
	}
	if err := commit(a); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), theme.RenderSuccess("Renamed to "+args[1]))
	return nil
}

func runTabsCollapse(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	id, err := resolveContainer(a.Store.State().TabContainer, args[0])
	if err != nil {
		return err
	}
	if err := a.UseCases.Tabs.ToggleCollapsed(a.Ctx(), id); err != nil {
		return err
	}
	return commit(a)
}

func runTabsRemoveContainer(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	id, err := resolveContainer(a.Store.State().TabContainer, args[0])
	if err != nil {
		return err
	}
	if err := a.UseCases.Tabs.RemoveContainer(a.Ctx(), id); err != nil {
		return err
	}
	if err := commit(a); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), theme.RenderSuccess("Removed container "+args[0]))
	return nil
}

func runTabsAdd(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	id, err := resolveContainer(a.Store.State().TabContainer, args[0])
	if err != nil {
		return err
	}
	tab, err := a.UseCases.Tabs.AddTab(a.Ctx(), usecase.AddTabInput{
		ContainerID: id,
		URL:         args[1],
		Title:       tabsTitle,
		Index:       tabsIndex,
	})
	if err != nil {
		return err
	}
	if err := commit(a); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), theme.RenderSuccess(fmt.Sprintf("Saved %s %s", tab.DisplayTitle(), theme.Subtle.Render(string(tab.ID)))))
	return nil
}

func runTabsRemove(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	id, err := resolveTab(a.Store.State().TabContainer, args[0])
	if err != nil {
		return err
	}
	if err := a.UseCases.Tabs.RemoveTab(a.Ctx(), id); err != nil {
		return err
	}
	if err := commit(a); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), theme.RenderSuccess("Removed tab "+string(id)))
	return nil
}

func runTabsMove(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	data := a.Store.State().TabContainer
	tabID, err := resolveTab(data, args[0])
	if err != nil {
		return err
	}
	containerID, err := resolveContainer(data, args[1])
	if err != nil {
		return err
	}
	if err := a.UseCases.Tabs.MoveTab(a.Ctx(), tabID, containerID, tabsIndex); err != nil {
		return err
	}
	return commit(a)
}

func runTabsSearch(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	matches := a.UseCases.Navigation.Search(a.Ctx(), strings.Join(args, " "))
	fmt.Fprint(cmd.OutOrStdout(), styles.NewTabsRenderer(theme).RenderMatches(matches))
	return nil
}
