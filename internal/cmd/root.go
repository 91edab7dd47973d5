package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/lastcommit/internal/config"
	"github.com/renato0307/lastcommit/internal/logging"
	"github.com/renato0307/lastcommit/internal/ui"
)

// EnvAPIURL overrides the GitHub API base URL
const EnvAPIURL = "LASTCOMMIT_API_URL"

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	APIURL      string           `help:"GitHub API base URL (GitHub Enterprise or a local fake)" name:"api-url" env:"LASTCOMMIT_API_URL"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run      RunCmd      `cmd:"" help:"Show the live counter (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the live counter over SSH"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, init, keys)"`
	Status   StatusCmd   `cmd:"status" help:"Print a one-shot counter line for shell prompts and status bars"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
	userAgent string           `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// SetUserAgent sets the User-Agent sent to the API
func (c *CLI) SetUserAgent(userAgent string) {
	c.userAgent = userAgent
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies when the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.APIURL == "" && c.settings.APIURL != "" {
			c.APIURL = c.settings.APIURL
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Export the effective settings so SSH sessions and re-execs share the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, fmt.Sprintf("%d", c.MaxLogFiles))
	}

	if c.settings != nil && c.settings.Keys != nil {
		if err := c.settings.Keys.Validate(ui.ValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
	}

	// Container is created after logging so adapters log to the right place
	container, err := NewContainer(c.APIURL, c.userAgent)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// keyBindings returns the custom key bindings from settings, if any
func (c *CLI) keyBindings() map[string][]string {
	if c.settings == nil {
		return nil
	}
	return c.settings.Keys.AsMap()
}
