package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"mergerModel/internal/logger"

	"github.com/BurntSushi/toml"
)

const (
	DefaultInterestRate = 0.05
	DefaultLogLevel     = "warn"
)

// UI modes
const (
	UIModeAuto  = "auto"
	UIModeTUI   = "tui"
	UIModePlain = "plain"
)

type Config struct {
	Model ModelConfig `toml:"model"`
	Log   LogConfig   `toml:"log"`
	UI    UIConfig    `toml:"ui"`
}

type ModelConfig struct {
	// InterestRate is the annual rate charged on new acquisition debt.
	InterestRate *float64 `toml:"interest_rate"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type UIConfig struct {
	Mode string `toml:"mode"`
}

// Default returns the built-in configuration.
func Default() *Config {
	rate := DefaultInterestRate
	return &Config{
		Model: ModelConfig{
			InterestRate: &rate,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		UI: UIConfig{
			Mode: UIModeAuto,
		},
	}
}

// LoadConfig loads configuration from configPath, falling back to defaults when the file is absent
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
	}

	var config Config
	meta, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	// Unknown keys are rejected, including any attempt to rename the report.
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in config file %s: %s", configPath, strings.Join(keys, ", "))
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

func (c *Config) applyDefaults() {
	// Zero is a legitimate rate, so only a missing key falls back.
	if c.Model.InterestRate == nil {
		rate := DefaultInterestRate
		c.Model.InterestRate = &rate
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.UI.Mode == "" {
		c.UI.Mode = UIModeAuto
	}
}

// Validate reports settings that can't be used.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.UI.Mode {
	case UIModeAuto, UIModeTUI, UIModePlain:
	default:
		errs = append(errs, fmt.Errorf("ui.mode must be one of auto, tui, plain, got %q", c.UI.Mode))
	}
	return errors.Join(errs...)
}

// Rate returns the configured interest rate.
func (c *Config) Rate() float64 {
	if c.Model.InterestRate == nil {
		return DefaultInterestRate
	}
	return *c.Model.InterestRate
}

// Encode writes config as TOML
func Encode(w io.Writer, config *Config) error {
	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
