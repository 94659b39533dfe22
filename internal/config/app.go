package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// App holds the settings of the arcade shell itself.
type App struct {
	TickRate   int    `yaml:"tick_rate" env:"ARCADE_TICK_RATE" env-default:"60" env-description:"platform ticks per second"`
	Seed       int64  `yaml:"seed" env:"ARCADE_SEED" env-default:"0" env-description:"random seed, 0 picks one from the clock"`
	Theme      string `yaml:"theme" env:"ARCADE_THEME" env-default:"auto" env-description:"auto, light or dark"`
	Difficulty string `yaml:"difficulty" env:"ARCADE_DIFFICULTY" env-default:"normal" env-description:"easy, normal or hard"`
	ConfigDir  string `yaml:"config_dir" env:"ARCADE_CONFIG_DIR" env-description:"extra directory searched for <game>.yaml"`
	LogLevel   string `yaml:"log_level" env:"ARCADE_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	LogFile    string `yaml:"log_file" env:"ARCADE_LOG_FILE" env-description:"log destination, logging is off when empty"`
}

// LoadApp reads the shell settings. A .env file in the working directory
// is loaded first if present; it never overrides variables already set.
// With an empty path only defaults and the environment are used.
func LoadApp(path string) (App, error) {
	var cfg App

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("config: cannot load .env: %w", err)
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: unable to load config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: unable to read environment: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that every field holds a usable value.
func (c App) Validate() error {
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("config: tick_rate must be between 1 and 240, got %d", c.TickRate)
	}
	switch c.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("config: unknown theme %q (want auto, light or dark)", c.Theme)
	}
	if _, err := ParseDifficulty(c.Difficulty); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}

// EnvHelp describes the supported environment variables.
func EnvHelp() string {
	var cfg App
	help, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return help
}
