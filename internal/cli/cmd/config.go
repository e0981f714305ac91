package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/tabmaster/internal/cli/styles"
	"github.com/bnema/tabmaster/internal/config"
)

var (
	configForce       bool
	configWriteSchema bool
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Manage configuration",
	Long:        `Show, initialize and describe the TOML configuration file.`,
	Annotations: map[string]string{annotationApp: appNone},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file and database locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, the config file and
TABMASTER_* environment overrides have been merged.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configInitCmd, configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
	configSchemaCmd.Flags().BoolVarP(&configWriteSchema, "write", "w", false, "write the schema next to the config file")
}

func newConfigManager() (*config.Manager, error) {
	var opts []config.ManagerOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	return config.NewManager(opts...)
}

func loadConfig() (*config.Manager, error) {
	manager, err := newConfigManager()
	if err != nil {
		return nil, err
	}
	if err := manager.Load(); err != nil {
		return nil, err
	}
	return manager, nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(theme)
	manager, err := loadConfig()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderConfigInfo(manager.ConfigFile(), manager.Get().Database.Path))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	manager, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.EncodeTOML(manager.Get())
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(theme)
	manager, err := newConfigManager()
	if err != nil {
		return err
	}
	path := manager.ConfigFile()

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if exists && !configForce {
		fmt.Fprintln(cmd.OutOrStdout(), theme.RenderWarning(fmt.Sprintf("%s already exists (use --force to overwrite)", path)))
		return nil
	}

	if exists {
		if err := manager.Save(config.DefaultConfig()); err != nil {
			return err
		}
	} else if err := manager.Load(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWritten("default config", manager.ConfigFile()))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if !configWriteSchema {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	manager, err := newConfigManager()
	if err != nil {
		return err
	}
	dir := filepath.Dir(manager.ConfigFile())
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	path, err := config.GenerateSchemaFile(dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(theme).RenderWritten("config schema", path))
	return nil
}
