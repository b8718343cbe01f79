package logger

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level" env:"LOG_LEVEL"`
	ConsoleEnabled bool   `yaml:"console_enabled" env:"LOG_CONSOLE_ENABLED"`
	ConsoleFormat  string `yaml:"console_format" env:"LOG_CONSOLE_FORMAT"`
	FileEnabled    bool   `yaml:"file_enabled" env:"LOG_FILE_ENABLED"`
	FilePath       string `yaml:"file_path" env:"LOG_FILE_PATH"`
	FileFormat     string `yaml:"file_format" env:"LOG_FILE_FORMAT"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// LoggingConfig wraps the Config for YAML parsing
type LoggingConfig struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig returns the logging setup used when no file is present.
// The console is reserved for the game itself, so logs go to a rotating file.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: false,
		ConsoleFormat:  "text",
		FileEnabled:    true,
		FilePath:       "logs/delver.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig loads logging configuration from a YAML file
// and applies environment variable overrides
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			var loggingConfig LoggingConfig
			if err := yaml.Unmarshal(data, &loggingConfig); err != nil {
				return config, fmt.Errorf("failed to parse logging config: %w", err)
			}
			merge(&config, loggingConfig.Logging)
		}
		// A missing file means defaults
	}

	// Only variables that are actually set overwrite fields
	if err := env.Parse(&config); err != nil {
		return config, fmt.Errorf("failed to apply logging env overrides: %w", err)
	}

	return config, nil
}

func merge(dst *Config, src Config) {
	if src.Level != "" {
		dst.Level = src.Level
	}
	dst.ConsoleEnabled = src.ConsoleEnabled
	if src.ConsoleFormat != "" {
		dst.ConsoleFormat = src.ConsoleFormat
	}
	dst.FileEnabled = src.FileEnabled
	if src.FilePath != "" {
		dst.FilePath = src.FilePath
	}
	if src.FileFormat != "" {
		dst.FileFormat = src.FileFormat
	}
	if src.FileMaxSizeMB > 0 {
		dst.FileMaxSizeMB = src.FileMaxSizeMB
	}
	if src.FileMaxBackups > 0 {
		dst.FileMaxBackups = src.FileMaxBackups
	}
	if src.FileMaxAgeDays > 0 {
		dst.FileMaxAgeDays = src.FileMaxAgeDays
	}
}
