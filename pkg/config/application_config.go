package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// ApplicationConfiguration contains settings of the command-line tool itself.
type ApplicationConfiguration struct {
	// LogLevel is a zap logging level (debug, info, warn, error...).
	LogLevel string `yaml:"LogLevel"`
	// LogPath is a file to write logs to, stderr is used if empty.
	LogPath string `yaml:"LogPath"`
}

// Validate checks ApplicationConfiguration for errors.
func (a ApplicationConfiguration) Validate() error {
	if len(a.LogLevel) != 0 {
		if _, err := zapcore.ParseLevel(a.LogLevel); err != nil {
			return fmt.Errorf("log setting: %w", err)
		}
	}
	return nil
}
