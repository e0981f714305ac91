// Package cmd provides Cobra CLI commands for tabmaster.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tabmaster/internal/bootstrap"
	"github.com/bnema/tabmaster/internal/cli/styles"
	"github.com/bnema/tabmaster/internal/config"
	"github.com/bnema/tabmaster/internal/domain/build"
)

// annotationApp selects how much of the application a command needs.
const annotationApp = "tabmaster/app"

const (
	// appNone skips bootstrap entirely.
	appNone = "none"
	// appWired builds the object graph without hydrating state.
	appWired = "wired"
)

var (
	app        *bootstrap.App
	theme      = styles.NewTheme()
	buildInfo  build.Info
	configFile string

	rootCmd = &cobra.Command{
		Use:   "tabmaster",
		Short: "Keep your browser tabs in named containers",
		Long: `tabmaster - a saved-tab manager for the terminal.

Tabs are grouped in containers and persisted to a local SQLite store.
Changes are flushed automatically; the interactive UI can undo edits.

Use 'tabmaster ui' for the interactive view, or the subcommands for
scripting.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initApp,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return closeApp()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/tabmaster/config.toml)")
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if closeErr := closeApp(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render(styles.IconX+" "+err.Error()))
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *bootstrap.App {
	return app
}

func appMode(cmd *cobra.Command) string {
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return appNone
	}
	for c := cmd; c != nil; c = c.Parent() {
		if mode, ok := c.Annotations[annotationApp]; ok {
			return mode
		}
	}
	return ""
}

func initApp(cmd *cobra.Command, _ []string) error {
	mode := appMode(cmd)
	if mode == appNone {
		return nil
	}

	interactive := cmd == uiCmd
	var err error
	app, err = bootstrap.New(bootstrap.Options{
		ConfigFile: configFile,
		LogToFile:  interactive,
	})
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	theme = themeFromConfig(app.Config.Appearance)
	if mode == appWired {
		return nil
	}

	return app.Startup(app.Ctx(), bootstrap.StartupOptions{EvaluateReview: interactive})
}

func themeFromConfig(a config.AppearanceConfig) *styles.Theme {
	return styles.NewThemeFromPalette(styles.Palette{
		Background:     a.Background,
		Surface:        a.Surface,
		SurfaceVariant: a.SurfaceVariant,
		Text:           a.Text,
		Muted:          a.Muted,
		Accent:         a.Accent,
		Border:         a.Border,
	})
}

// closeApp flushes and releases the app. Safe to call more than once.
func closeApp() error {
	if app == nil {
		return nil
	}
	a := app
	app = nil
	return a.Shutdown(a.Ctx())
}

// requireApp returns the app or an error when bootstrap was skipped.
func requireApp() (*bootstrap.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

// commit flushes pending tab data now rather than waiting for the debounce.
func commit(a *bootstrap.App) error {
	if err := a.Persister.FlushIfDirty(a.Ctx()); err != nil {
		return fmt.Errorf("save tabs: %w", err)
	}
	return nil
}
