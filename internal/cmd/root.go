package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/tally/internal/config"
	"github.com/renato0307/tally/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Start the timer TUI (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the timer over SSH without a local TUI"`
	Logs     LogsCmd     `cmd:"logs" help:"Read back saved time logs"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (show, example, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// loadedSettings returns the loaded settings, never nil
func (c *CLI) loadedSettings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("TALLY_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("TALLY_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// The storage adapter reads TALLY_DEBUG to pick its SQL log level
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TALLY_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TALLY_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("TALLY_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so GORM's logger has a sink
	container, err := NewContainer(config.GetDBPath())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
