// Package config loads runtime configuration for the journal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory and MINDFUL_* environment
//     variables (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   storage driver: memory, sqlite, postgres, redis, s3
//	-f string   sqlite database file
//	-d string   postgres DSN
//	-r string   redis address host:port
//	-b string   s3 bucket
//	-e string   s3 endpoint (MinIO and other S3-compatible servers)
//	-p string   key prefix
//	-g string   sample data seed scope: global or user
//	-l bool     simulate backend latency (use -l=false to disable)
//	-t duration timeout for connecting to the store
//	-v string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "5s" or integer
// nanoseconds:
//
//	{
//	  "storage": "redis",
//	  "redis_addr": "127.0.0.1:6379",
//	  "seed_scope": "user",
//	  "simulate_latency": false,
//	  "operation_timeout": "5s"
//	}
//
// Primary API
//
//   - type Config                     : all runtime settings
//   - func LoadConfig() *Config       : defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   : sets sensible defaults
//   - func (*Config) Validate() error : rejects unknown drivers and scopes
//   - func (*Config) KVOptions()      : settings for kv.Open
package config
