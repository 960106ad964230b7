package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/pocketcasino/internal/config"
)

var (
	opts   *Options
	conf   *config.Config
	logger *slog.Logger
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts = DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "casino",
		Short: "Pocket casino in your terminal",
		Long: `casino plays slots, roulette, blackjack, dice and video poker against a
locally saved player record.

Every command loads the saved record, plays, and saves before exiting.
"casino serve" exposes the same engine as a localhost JSON API with a
server-sent event stream.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			conf = c
			logger = opts.newLogger(cmd, c, cmd.Name() != "serve")
			client = NewClient(opts.serverURL(c))
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", opts.ConfigPath, "Config file (default casino.yaml if present)")
	pf.StringVarP(&opts.Output, "output", "o", opts.Output, "Output format: text, json")
	pf.StringVar(&opts.Storage, "storage", opts.Storage, "Storage backend: memory, file, redis (env: CASINO_STORAGE_TYPE)")
	pf.StringVar(&opts.DataDir, "data-dir", opts.DataDir, "Save directory for file storage (env: CASINO_DATA_DIR)")
	pf.StringVar(&opts.RedisURL, "redis-url", opts.RedisURL, "Redis URL for redis storage (env: CASINO_REDIS_URL)")
	pf.StringVar(&opts.ServerURL, "server", opts.ServerURL, "Server URL for health and events (env: CASINO_SERVER)")
	pf.Uint64Var(&opts.Seed, "seed", opts.Seed, "Seed every draw for reproducible play (env: CASINO_SEED)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "Verbose output")

	// Player record
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newDailyCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newAchievementsCmd())
	rootCmd.AddCommand(newSettingsCmd())
	rootCmd.AddCommand(newResetCmd())

	// Games
	rootCmd.AddCommand(newGamesCmd())
	rootCmd.AddCommand(newSpinCmd())
	rootCmd.AddCommand(newRouletteCmd())
	rootCmd.AddCommand(newDiceCmd())
	rootCmd.AddCommand(newBlackjackCmd())
	rootCmd.AddCommand(newPokerCmd())

	// Server
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newEventsCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
