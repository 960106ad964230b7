// Package config loads runtime settings: defaults, then an optional YAML
// file, then a .env file, then CASINO_* environment variables. Command
// line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
)

// DefaultFile is the config file read when no path is given
const DefaultFile = "casino.yaml"

// Config is the full runtime configuration
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Random  RandomConfig  `yaml:"random"`
}

// StorageConfig selects where the player record lives
type StorageConfig struct {
	Type         string        `yaml:"type"`
	Dir          string        `yaml:"dir"`
	Key          string        `yaml:"key"`
	RedisURL     string        `yaml:"redis_url"`
	SaveDebounce time.Duration `yaml:"save_debounce"`
}

// ServerConfig is the local HTTP listener
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RandomConfig selects the randomness source. A nil Seed means the
// crypto source; a set Seed replays the same draws every run.
type RandomConfig struct {
	Seed *uint64 `yaml:"seed"`
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Type:         StorageFile,
			Dir:          defaultDataDir(),
			Key:          "lucky-fun-casino-state",
			RedisURL:     "redis://localhost:6379",
			SaveDebounce: time.Second,
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pocketcasino"
	}
	return filepath.Join(home, ".pocketcasino")
}

// Load builds the configuration. An explicit path must exist; with an
// empty path DefaultFile is read if present.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, required := path, true
	if file == "" {
		file, required = DefaultFile, false
	}
	if err := cfg.mergeFile(file, required); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString("CASINO_STORAGE_TYPE", &c.Storage.Type)
	setString("CASINO_DATA_DIR", &c.Storage.Dir)
	setString("CASINO_STORAGE_KEY", &c.Storage.Key)
	setString("CASINO_REDIS_URL", &c.Storage.RedisURL)
	setString("CASINO_HOST", &c.Server.Host)
	setString("CASINO_LOG_LEVEL", &c.Log.Level)
	setString("CASINO_LOG_FORMAT", &c.Log.Format)

	if v := os.Getenv("CASINO_SAVE_DEBOUNCE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CASINO_SAVE_DEBOUNCE: %w", err)
		}
		c.Storage.SaveDebounce = d
	}
	if v := os.Getenv("CASINO_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("CASINO_SEED: %w", err)
		}
		c.Random.Seed = &seed
	}
	if v := os.Getenv("CASINO_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CASINO_PORT: %w", err)
		}
		c.Server.Port = port
	}
	return nil
}

// Validate checks the combined configuration
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageMemory, StorageFile, StorageRedis:
	default:
		return fmt.Errorf("invalid storage type %q: must be memory, file or redis", c.Storage.Type)
	}
	if c.Storage.Type == StorageFile && c.Storage.Dir == "" {
		return errors.New("storage dir required for file storage")
	}
	if c.Storage.Type == StorageRedis && c.Storage.RedisURL == "" {
		return errors.New("redis url required for redis storage")
	}
	if c.Storage.SaveDebounce < 0 {
		return errors.New("save debounce must not be negative")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format %q: must be json or text", c.Log.Format)
	}
	return nil
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
