package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"propedit/internal/editor"
	"propedit/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. PROPEDIT_UI_ROW_HEIGHT for
// ui.row_height.
const EnvPrefix = "PROPEDIT"

// Config holds the editor settings.
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig controls the terminal surface.
type UIConfig struct {
	RowHeight float64 `mapstructure:"row_height"`
	CellWidth float64 `mapstructure:"cell_width"`
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	NoColor   bool    `mapstructure:"no_color"`
}

// LogConfig controls the debug log. An empty file disables logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			RowHeight: editor.DefaultRowHeight,
			CellWidth: 10,
			Width:     80,
			Height:    24,
		},
		Log: LogConfig{Level: logging.LevelInfo},
	}
}

// SetDefaults registers the defaults on v so they apply without a config
// file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("ui.row_height", d.UI.RowHeight)
	v.SetDefault("ui.cell_width", d.UI.CellWidth)
	v.SetDefault("ui.width", d.UI.Width)
	v.SetDefault("ui.height", d.UI.Height)
	v.SetDefault("ui.no_color", d.UI.NoColor)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// Dir returns the default configuration directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "propedit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "propedit")
}

// New returns a viper instance with defaults and env overrides. When
// cfgFile is empty, config.{toml,yaml} is looked up in Dir() and the working
// directory; a missing file is not an error.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(Dir())
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.UI.RowHeight <= 0 {
		return fmt.Errorf("ui.row_height must be positive, got %v", c.UI.RowHeight)
	}
	if c.UI.CellWidth <= 0 {
		return fmt.Errorf("ui.cell_width must be positive, got %v", c.UI.CellWidth)
	}
	if c.UI.Width < 0 || c.UI.Height < 0 {
		return fmt.Errorf("ui.width and ui.height must not be negative")
	}
	valid := false
	for _, l := range logging.ValidLevels() {
		if strings.EqualFold(l, c.Log.Level) {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("log.level %q is not one of %s", c.Log.Level, strings.Join(logging.ValidLevels(), ", "))
	}
	return nil
}

// Save writes the settings of v to path. The format follows the extension.
func Save(v *viper.Viper, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
