package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Layout   LayoutConfig
	Logging  LoggingConfig
	// Keys overrides default keybindings per action, e.g.
	// [keys] close-pane = ["ctrl+x"].
	Keys map[string][]string
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent  string
	FlashMs int `mapstructure:"flash_ms"`
}

// LayoutConfig holds workspace layout settings.
type LayoutConfig struct {
	DefaultMode string `mapstructure:"default_mode"`
}

// LoggingConfig holds log output settings. The TUI owns stdout, so logs
// go to a file.
type LoggingConfig struct {
	Level  string
	Format string
	Path   string
}

// Load reads configuration from file and env. Env var overrides use prefix SUPERTUI_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "supertui", "supertui.db"))
	v.SetDefault("ui.accent", "")
	v.SetDefault("ui.flash_ms", 300)
	v.SetDefault("layout.default_mode", "auto")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "supertui", "supertui.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SUPERTUI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "supertui"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SUPERTUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory
// if needed. Used by the layout-mode and accent commands so preferences
// survive restarts.
func Save(cfg Config) error {
	path := os.Getenv("SUPERTUI_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "supertui", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("ui.flash_ms", cfg.UI.FlashMs)
	v.Set("layout.default_mode", cfg.Layout.DefaultMode)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.format", cfg.Logging.Format)
	v.Set("logging.path", cfg.Logging.Path)
	if len(cfg.Keys) > 0 {
		v.Set("keys", cfg.Keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
