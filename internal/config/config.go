package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultDictionaryDir = "dics"
	defaultExtension     = ".db"
	defaultPageStep      = 10
	defaultLogFile       = "dicbrowse.log"
	defaultTitle         = "dicbrowse"
)

// Config represents the application configuration
type Config struct {
	Version       int        `toml:"version"`
	DictionaryDir string     `toml:"dictionary_dir"`
	Extension     string     `toml:"extension"`
	PageStep      int        `toml:"page_step"`
	LogFile       string     `toml:"log_file"`
	UISettings    UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title    string `toml:"title"`
	ShowHelp bool   `toml:"show_help"`
	Mouse    bool   `toml:"mouse"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service using the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "dicbrowse", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file Load reads
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file is absent
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so missing keys keep their default values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyDefaults replaces empty or invalid values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.DictionaryDir == "" {
		c.DictionaryDir = defaultDictionaryDir
	}
	if c.Extension == "" {
		c.Extension = defaultExtension
	}
	if c.PageStep < 1 {
		c.PageStep = defaultPageStep
	}
	if c.LogFile == "" {
		c.LogFile = defaultLogFile
	}
	if c.UISettings.Title == "" {
		c.UISettings.Title = defaultTitle
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		DictionaryDir: defaultDictionaryDir,
		Extension:     defaultExtension,
		PageStep:      defaultPageStep,
		LogFile:       defaultLogFile,
		UISettings: UISettings{
			Title:    defaultTitle,
			ShowHelp: true,
			Mouse:    true,
		},
	}
}
