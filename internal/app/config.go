package app

import (
	"fmt"
	"os"
	"strconv"

	"counter/internal/logger"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
)

const (
	EnvLogLevel = "COUNTER_LOG_LEVEL"
	EnvJSONLogs = "COUNTER_JSON_LOGS"
)

type Config struct {
	Title         string
	WindowSize    fyne.Size
	MinWindowSize fyne.Size

	// Diagnostics only; none of these change counter behavior.
	LogLevel zerolog.Level
	JSONLogs bool
}

func DefaultConfig() Config {
	return Config{
		Title:         AppName,
		WindowSize:    fyne.NewSize(450, 600),
		MinWindowSize: fyne.NewSize(300, 400),
		LogLevel:      zerolog.InfoLevel,
		JSONLogs:      false,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies the logging overrides.
// On a malformed variable it still returns a usable config along with the error.
func ConfigFromEnv() (Config, error) {
	config := DefaultConfig()

	if value, ok := os.LookupEnv(EnvLogLevel); ok {
		level, err := logger.ParseLevel(value)
		if err != nil {
			return config, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		config.LogLevel = level
	}

	if value, ok := os.LookupEnv(EnvJSONLogs); ok && value != "" {
		jsonLogs, err := strconv.ParseBool(value)
		if err != nil {
			return config, fmt.Errorf("%s: %w", EnvJSONLogs, err)
		}
		config.JSONLogs = jsonLogs
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("window title is empty")
	}
	if c.MinWindowSize.Width <= 0 || c.MinWindowSize.Height <= 0 {
		return fmt.Errorf("minimum window size %vx%v is not positive", c.MinWindowSize.Width, c.MinWindowSize.Height)
	}
	if c.WindowSize.Width < c.MinWindowSize.Width || c.WindowSize.Height < c.MinWindowSize.Height {
		return fmt.Errorf("window size %vx%v is below minimum %vx%v",
			c.WindowSize.Width, c.WindowSize.Height,
			c.MinWindowSize.Width, c.MinWindowSize.Height)
	}
	return nil
}

func (c Config) NewLogger() *logger.ZerologAdapter {
	if c.JSONLogs {
		return logger.NewJSONLogger(c.LogLevel)
	}
	return logger.NewConsoleLogger(c.LogLevel)
}
