package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/pocketcasino/internal/config"
	"github.com/mcoot/pocketcasino/internal/dependencies/clock"
	"github.com/mcoot/pocketcasino/internal/dependencies/random"
	"github.com/mcoot/pocketcasino/internal/services/persistence"
	"github.com/mcoot/pocketcasino/internal/services/progression"
	"github.com/mcoot/pocketcasino/internal/services/session"
	"github.com/mcoot/pocketcasino/internal/storage"
	filestorage "github.com/mcoot/pocketcasino/internal/storage/file"
	"github.com/mcoot/pocketcasino/internal/storage/memory"
	redisstorage "github.com/mcoot/pocketcasino/internal/storage/redis"
	"github.com/mcoot/pocketcasino/internal/web/sse"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Persistence
	Adapter *persistence.Adapter
	Saver   *persistence.Saver

	// Events
	Hub         *sse.Hub
	Broadcaster *sse.Broadcaster

	// Services
	Progression *progression.Controller
	Session     *session.Service

	Logger *slog.Logger

	closeStorage func() error
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "file" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// DataDir is the file backend's directory (required if StorageType is "file")
	DataDir string
	// StorageKey names the saved record; empty means the default key
	StorageKey string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SaveDebounce is the idle window before a save; zero means the default
	SaveDebounce time.Duration
	// Seed makes every draw reproducible; nil uses crypto randomness
	Seed *uint64
}

// ConfigFrom maps the runtime configuration onto a factory Config
func ConfigFrom(c *config.Config, logger *slog.Logger) Config {
	cfg := Config{
		Logger:       logger,
		StorageType:  c.Storage.Type,
		DataDir:      c.Storage.Dir,
		StorageKey:   c.Storage.Key,
		SaveDebounce: c.Storage.SaveDebounce,
		Seed:         c.Random.Seed,
	}
	if c.Storage.Type == config.StorageRedis {
		rc := redisstorage.DefaultConfig()
		rc.URL = c.Storage.RedisURL
		cfg.RedisConfig = &rc
	}
	return cfg
}

// New creates a new application with all dependencies wired and the
// saved record loaded
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, closeStorage, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	app := newWithDependencies(ctx, store, clock.New(), newRandom(cfg, logger), cfg, logger)
	app.closeStorage = closeStorage
	return app, nil
}

func newRandom(cfg Config, logger *slog.Logger) random.Random {
	if cfg.Seed == nil {
		return random.New()
	}
	logger.Info("using seeded randomness, outcomes are reproducible", slog.Uint64("seed", *cfg.Seed))
	return random.NewSeeded(*cfg.Seed)
}

func newStorage(cfg Config) (storage.Storage, func() error, error) {
	noClose := func() error { return nil }

	switch cfg.StorageType {
	case "", config.StorageMemory:
		return memory.New(), noClose, nil
	case config.StorageFile:
		if cfg.DataDir == "" {
			return nil, nil, errors.New("DataDir required when StorageType is file")
		}
		st, err := filestorage.New(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open file storage: %w", err)
		}
		return st, noClose, nil
	case config.StorageRedis:
		if cfg.RedisConfig == nil {
			return nil, nil, errors.New("RedisConfig required when StorageType is redis")
		}
		st, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	default:
		return nil, nil, fmt.Errorf("invalid StorageType %q: must be memory, file or redis", cfg.StorageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	ctx context.Context,
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	cfg Config,
	logger *slog.Logger,
) *App {
	adapter := persistence.NewAdapter(store, cfg.StorageKey, logger)
	saver := persistence.NewSaver(adapter, clk, cfg.SaveDebounce, logger)

	hub := sse.NewHub(logger)
	go hub.Run()
	broadcaster := sse.NewBroadcaster(hub, logger)

	ctrl := progression.NewController(adapter.Load(ctx), saver, clk, rnd, broadcaster, logger)
	sess := session.New(ctrl, rnd, logger)

	return &App{
		Storage:      store,
		Clock:        clk,
		Random:       rnd,
		Adapter:      adapter,
		Saver:        saver,
		Hub:          hub,
		Broadcaster:  broadcaster,
		Progression:  ctrl,
		Session:      sess,
		Logger:       logger,
		closeStorage: func() error { return nil },
	}
}

// Close flushes any pending save, disconnects event clients and releases
// the storage backend
func (a *App) Close(ctx context.Context) error {
	saveErr := a.Saver.Close(ctx)
	a.Hub.Close()
	return errors.Join(saveErr, a.closeStorage())
}
