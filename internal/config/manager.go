package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/bnema/tabmaster/internal/logging"
)

// EnvPrefix prefixes every environment override (TABMASTER_LOGGING_LEVEL, ...).
const EnvPrefix = "TABMASTER"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	configFile     string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfigFile uses path instead of searching the XDG config directory.
func WithConfigFile(path string) ManagerOption {
	return func(m *Manager) {
		m.configFile = path
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	v := m.viper
	v.SetConfigType("toml")
	if m.configFile != "" {
		v.SetConfigFile(m.configFile)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName(strings.TrimSuffix(configName, filepath.Ext(configName)))
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short aliases shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", EnvPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	if err := v.BindEnv("logging.format", EnvPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", EnvPrefix, err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configPath(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.configPath(), createErr)
	}
	if m.configFile == "" {
		m.viper.SetConfigFile(m.configPath())
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals viper's merged view and normalizes and validates it.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := m.viper.Unmarshal(config, hook); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configPath(),
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Database.Path = strings.TrimSpace(config.Database.Path)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
	if config.Logging.LogDir == "" {
		config.Logging.LogDir = getDefaultLogDir()
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.configPath()
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := WriteConfigOrdered(cfg, path); err != nil {
		return err
	}

	saved := *cfg
	m.config = &saved
	if m.watching {
		m.skipNextReload = true
		return nil
	}
	if err := m.viper.ReadInConfig(); err != nil {
		logger := logging.NewFromEnv()
		logger.Warn().Err(err).Msg("failed to sync viper config after Save")
	}
	return nil
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	return m.configPath()
}

func (m *Manager) configPath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	if m.configFile != "" {
		return m.configFile
	}
	path, err := GetConfigFile()
	if err != nil {
		return configName
	}
	return path
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	path := m.configPath()
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), path); err != nil {
		return err
	}

	log := logging.NewFromEnv()
	log.Info().Str("path", path).Msg("created default configuration file")

	schemaPath, err := GenerateSchemaFile(filepath.Dir(path))
	if err != nil {
		log.Warn().Err(err).Msg("failed to write config schema")
		return nil
	}
	log.Debug().Str("path", schemaPath).Msg("generated config schema")
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// database.path is resolved in decode so the XDG lookup follows the env.
	m.viper.SetDefault("database.path", "")

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	m.viper.SetDefault("persistence.auto_flush", defaults.Persistence.AutoFlush)
	m.viper.SetDefault("persistence.debounce", defaults.Persistence.Debounce.String())

	m.viper.SetDefault("toast.duration", defaults.Toast.Duration.String())

	m.viper.SetDefault("review.grace_period", defaults.Review.GracePeriod.String())
	m.viper.SetDefault("review.cooldown", defaults.Review.Cooldown.String())

	m.viper.SetDefault("history.max_undo_steps", defaults.History.MaxUndoSteps)

	m.viper.SetDefault("appearance.background", defaults.Appearance.Background)
	m.viper.SetDefault("appearance.surface", defaults.Appearance.Surface)
	m.viper.SetDefault("appearance.surface_variant", defaults.Appearance.SurfaceVariant)
	m.viper.SetDefault("appearance.text", defaults.Appearance.Text)
	m.viper.SetDefault("appearance.muted", defaults.Appearance.Muted)
	m.viper.SetDefault("appearance.accent", defaults.Appearance.Accent)
	m.viper.SetDefault("appearance.border", defaults.Appearance.Border)
}
