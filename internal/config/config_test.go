package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Chdir(s.dir)
}

func (s *ConfigSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *ConfigSuite) TestDefaults() {
	cfg, err := Load("")
	s.Require().NoError(err)

	s.Equal(StorageFile, cfg.Storage.Type)
	s.Equal("lucky-fun-casino-state", cfg.Storage.Key)
	s.Equal(time.Second, cfg.Storage.SaveDebounce)
	s.Equal("127.0.0.1:8080", cfg.Server.Addr())
	s.NotEmpty(cfg.Storage.Dir)
}

func (s *ConfigSuite) TestYAMLFile() {
	path := s.write("custom.yaml", `
storage:
  type: redis
  redis_url: redis://cache:6379/2
  save_debounce: 250ms
server:
  port: 9090
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	s.Require().NoError(err)

	s.Equal(StorageRedis, cfg.Storage.Type)
	s.Equal("redis://cache:6379/2", cfg.Storage.RedisURL)
	s.Equal(250*time.Millisecond, cfg.Storage.SaveDebounce)
	s.Equal(9090, cfg.Server.Port)
	s.Equal("127.0.0.1", cfg.Server.Host, "unset keys keep defaults")
	s.Equal("json", cfg.Log.Format)
}

func (s *ConfigSuite) TestDefaultFileIsOptionalButRead() {
	s.write(DefaultFile, "storage:\n  type: memory\n")

	cfg, err := Load("")
	s.Require().NoError(err)
	s.Equal(StorageMemory, cfg.Storage.Type)
}

func (s *ConfigSuite) TestExplicitMissingFileFails() {
	_, err := Load(filepath.Join(s.dir, "nope.yaml"))
	s.Error(err)
}

func (s *ConfigSuite) TestMalformedYAMLFails() {
	path := s.write("bad.yaml", "storage: [unterminated")
	_, err := Load(path)
	s.Error(err)
}

func (s *ConfigSuite) TestEnvOverridesFile() {
	path := s.write("custom.yaml", "server:\n  port: 9090\n")
	s.T().Setenv("CASINO_PORT", "7070")
	s.T().Setenv("CASINO_STORAGE_TYPE", "memory")
	s.T().Setenv("CASINO_SAVE_DEBOUNCE", "2s")

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal(7070, cfg.Server.Port)
	s.Equal(StorageMemory, cfg.Storage.Type)
	s.Equal(2*time.Second, cfg.Storage.SaveDebounce)
}

func (s *ConfigSuite) TestDotEnvFile() {
	s.write(".env", "CASINO_DATA_DIR=/tmp/casino-from-dotenv\n")
	// register cleanup for the variable godotenv is about to set
	s.T().Setenv("CASINO_DATA_DIR", "placeholder")
	s.Require().NoError(os.Unsetenv("CASINO_DATA_DIR"))

	cfg, err := Load("")
	s.Require().NoError(err)
	s.Equal("/tmp/casino-from-dotenv", cfg.Storage.Dir)
}

func (s *ConfigSuite) TestInvalidEnvValues() {
	s.T().Setenv("CASINO_PORT", "eighty")
	_, err := Load("")
	s.Error(err)
}

func (s *ConfigSuite) TestSeed() {
	cfg, err := Load("")
	s.Require().NoError(err)
	s.Nil(cfg.Random.Seed)

	path := s.write("seeded.yaml", "random:\n  seed: 42\n")
	cfg, err = Load(path)
	s.Require().NoError(err)
	s.Require().NotNil(cfg.Random.Seed)
	s.Equal(uint64(42), *cfg.Random.Seed)

	s.T().Setenv("CASINO_SEED", "7")
	cfg, err = Load(path)
	s.Require().NoError(err)
	s.Equal(uint64(7), *cfg.Random.Seed)

	s.T().Setenv("CASINO_SEED", "-1")
	_, err = Load(path)
	s.Error(err)
}

func (s *ConfigSuite) TestValidate() {
	tests := map[string]func(*Config){
		"storage type": func(c *Config) { c.Storage.Type = "s3" },
		"file dir":     func(c *Config) { c.Storage.Dir = "" },
		"redis url":    func(c *Config) { c.Storage.Type = StorageRedis; c.Storage.RedisURL = "" },
		"debounce":     func(c *Config) { c.Storage.SaveDebounce = -time.Second },
		"port":         func(c *Config) { c.Server.Port = 0 },
		"log level":    func(c *Config) { c.Log.Level = "loud" },
		"log format":   func(c *Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range tests {
		cfg := Default()
		mutate(cfg)
		s.Error(cfg.Validate(), name)
	}
	s.NoError(Default().Validate())
}

func (s *ConfigSuite) TestNewLoggerJSON() {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	var line map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &line))
	s.Equal("shown", line["msg"])
}
