package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/pocketcasino/internal/config"
)

// Options holds the global command line flags
type Options struct {
	ConfigPath string
	Output     string
	Storage    string
	DataDir    string
	RedisURL   string
	ServerURL  string
	Seed       uint64
	Verbose    bool
}

// DefaultOptions returns Options with default values
func DefaultOptions() *Options {
	return &Options{
		Output:    "text",
		ServerURL: os.Getenv("CASINO_SERVER"),
	}
}

// resolve loads the runtime configuration and applies any flags the user
// set explicitly on top of it
func (o *Options) resolve(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("storage") {
		c.Storage.Type = o.Storage
	}
	if flags.Changed("data-dir") {
		c.Storage.Dir = o.DataDir
	}
	if flags.Changed("redis-url") {
		c.Storage.RedisURL = o.RedisURL
	}
	if flags.Changed("seed") {
		seed := o.Seed
		c.Random.Seed = &seed
	}
	if o.Verbose {
		c.Log.Level = "debug"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// serverURL is the base URL of a running casino server
func (o *Options) serverURL(c *config.Config) string {
	if o.ServerURL != "" {
		return o.ServerURL
	}
	return "http://" + c.Server.Addr()
}

// newLogger writes to stderr. One-shot commands only log warnings unless
// verbose output was requested.
func (o *Options) newLogger(cmd *cobra.Command, c *config.Config, quiet bool) *slog.Logger {
	logCfg := c.Log
	if quiet && !o.Verbose {
		logCfg.Level = "warn"
	}
	return config.NewLogger(logCfg, cmd.ErrOrStderr())
}
