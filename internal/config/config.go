package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Store StoreConfig `mapstructure:"store"`
	Log   LogConfig   `mapstructure:"log"`
	UI    UIConfig    `mapstructure:"ui"`
}

// StoreConfig selects where the session keeps its doctors.
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Seed    bool   `mapstructure:"seed"`
}

// LogConfig holds logger settings. An empty Path disables logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	Timezone   string `mapstructure:"timezone"`
	StartPage  string `mapstructure:"start_page"`
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "courierapp")
}

// DefaultPath is COURIERAPP_CONFIG when set, else ~/.config/courierapp/config.toml.
func DefaultPath() string {
	if p := os.Getenv("COURIERAPP_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "courierapp", "config.toml")
}

// Default returns the configuration used when no file or env overrides exist.
func Default() Config {
	return Config{
		Store: StoreConfig{Backend: "memory", Seed: true},
		Log:   LogConfig{Level: "info", Path: filepath.Join(dataDir(), "courierapp.log")},
		UI:    UIConfig{DateFormat: "01/02/2006", Timezone: "Local", StartPage: "home"},
	}
}

// Load reads configuration from file and env. path overrides DefaultPath.
// Env var overrides use prefix COURIERAPP_.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("store.backend", def.Store.Backend)
	v.SetDefault("store.seed", def.Store.Seed)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.path", def.Log.Path)
	v.SetDefault("ui.date_format", def.UI.DateFormat)
	v.SetDefault("ui.timezone", def.UI.Timezone)
	v.SetDefault("ui.start_page", def.UI.StartPage)

	v.SetConfigType("toml")
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("COURIERAPP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the rest of the program cannot act on.
func (c Config) Validate() error {
	switch strings.ToLower(c.Store.Backend) {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("store.backend: unknown backend %q", c.Store.Backend)
	}
	switch strings.ToLower(c.UI.StartPage) {
	case "home", "doctors", "drivers", "orders":
	default:
		return fmt.Errorf("ui.start_page: unknown page %q", c.UI.StartPage)
	}
	return nil
}

// Save writes the provided config to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("store.backend", cfg.Store.Backend)
	v.Set("store.seed", cfg.Store.Seed)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("ui.start_page", cfg.UI.StartPage)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}
