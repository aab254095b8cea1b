package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/mindful/internal/client/repositories/checkins"
	"github.com/dmitrijs2005/mindful/internal/common"
	"github.com/dmitrijs2005/mindful/internal/kv"
)

// Config holds runtime settings for the journal CLI.
type Config struct {
	// Storage selects the kv backend (kv.Driver* constants).
	Storage     string
	SQLitePath  string
	PostgresDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	// KeyPrefix is prepended to the session and data keys.
	KeyPrefix string
	// SeedScope is "global" or "user", see checkins.SeedScope.
	SeedScope string

	SimulateLatency  bool
	OperationTimeout time.Duration
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Storage = kv.DriverSQLite
	c.SQLitePath = "mindful.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.S3Region = "us-east-1"
	c.KeyPrefix = common.DefaultKeyPrefix
	c.SeedScope = string(checkins.ScopeGlobal)
	c.SimulateLatency = true
	c.OperationTimeout = 5 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports settings that would fail later at start-up.
func (c *Config) Validate() error {
	switch c.Storage {
	case kv.DriverMemory, kv.DriverSQLite, kv.DriverPostgres, kv.DriverRedis, kv.DriverS3:
	default:
		return fmt.Errorf("%w: unknown storage %q", common.ErrorValidation, c.Storage)
	}
	if _, err := checkins.ParseSeedScope(c.SeedScope); err != nil {
		return err
	}
	if c.OperationTimeout < 0 {
		return fmt.Errorf("%w: negative operation timeout", common.ErrorValidation)
	}
	return nil
}

// KVOptions returns the backend settings for kv.Open.
func (c *Config) KVOptions() kv.Options {
	return kv.Options{
		Driver:        c.Storage,
		SQLitePath:    c.SQLitePath,
		PostgresDSN:   c.PostgresDSN,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
		S3Bucket:      c.S3Bucket,
		S3Region:      c.S3Region,
		S3Endpoint:    c.S3Endpoint,
		S3AccessKey:   c.S3AccessKey,
		S3SecretKey:   c.S3SecretKey,
		Timeout:       c.OperationTimeout,
	}
}
