package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/mindful/internal/flagx"
)

var knownFlags = []string{"-s", "-f", "-d", "-r", "-b", "-e", "-p", "-g", "-l", "-t", "-v"}

// parseFlags populates Config fields from command-line flags. See the
// package documentation for the list.
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
// Panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage driver: memory, sqlite, postgres, redis, s3")
	fs.StringVar(&cfg.SQLitePath, "f", cfg.SQLitePath, "sqlite database file")
	fs.StringVar(&cfg.PostgresDSN, "d", cfg.PostgresDSN, "postgres DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "s3 bucket")
	fs.StringVar(&cfg.S3Endpoint, "e", cfg.S3Endpoint, "s3 endpoint")
	fs.StringVar(&cfg.KeyPrefix, "p", cfg.KeyPrefix, "key prefix")
	fs.StringVar(&cfg.SeedScope, "g", cfg.SeedScope, "sample data seed scope: global or user")
	fs.BoolVar(&cfg.SimulateLatency, "l", cfg.SimulateLatency, "simulate backend latency")
	fs.DurationVar(&cfg.OperationTimeout, "t", cfg.OperationTimeout, "store connection timeout")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
