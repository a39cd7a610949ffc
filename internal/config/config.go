// Package config provides Viper-based configuration loading for the drills console.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DiceConfig holds the dice subsystem settings.
type DiceConfig struct {
	// Sides is the face count of the die. Must be >= 1.
	Sides int `mapstructure:"sides"`
	// Mode selects the die variant: "fair" or "fixed".
	Mode string `mapstructure:"mode"`
	// Seed seeds the fair die's random source. 0 means seed from entropy.
	Seed int64 `mapstructure:"seed"`
}

// ConsoleConfig holds console prompt settings.
type ConsoleConfig struct {
	// Prompt is the string printed before reading a line of input.
	Prompt string `mapstructure:"prompt"`
	// MaxPromptAttempts bounds re-prompting on unparseable integer input.
	MaxPromptAttempts int `mapstructure:"max_prompt_attempts"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Dice    DiceConfig    `mapstructure:"dice"`
	Console ConsoleConfig `mapstructure:"console"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateDice(c.Dice); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateConsole(c.Console); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDice(d DiceConfig) error {
	var errs []string
	if d.Sides < 1 {
		errs = append(errs, fmt.Sprintf("dice.sides must be >= 1, got %d", d.Sides))
	}
	validModes := map[string]bool{"fair": true, "fixed": true}
	if !validModes[d.Mode] {
		errs = append(errs, fmt.Sprintf("dice.mode must be one of [fair, fixed], got %q", d.Mode))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateConsole(c ConsoleConfig) error {
	if c.MaxPromptAttempts < 1 {
		return fmt.Errorf("console.max_prompt_attempts must be >= 1, got %d", c.MaxPromptAttempts)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with DRILLS_ prefix
	v.SetEnvPrefix("DRILLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dice.sides", 6)
	v.SetDefault("dice.mode", "fair")
	v.SetDefault("dice.seed", 0)

	v.SetDefault("console.prompt", "> ")
	v.SetDefault("console.max_prompt_attempts", 3)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
