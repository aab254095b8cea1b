package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// envPrefix namespaces every variable read by parseEnv.
const envPrefix = "MINDFUL_"

// envFiles are loaded by parseEnv; a missing file is not an error.
var envFiles = []string{".env"}

// parseEnv overlays Config with MINDFUL_* environment variables. Values from
// the .env file never replace variables already set in the process
// environment. Unset or unparsable variables leave the field unchanged.
func parseEnv(cfg *Config) {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	cfg.Storage = getEnv("STORAGE", cfg.Storage)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)
	cfg.PostgresDSN = getEnv("POSTGRES_DSN", cfg.PostgresDSN)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.S3Bucket = getEnv("S3_BUCKET", cfg.S3Bucket)
	cfg.S3Region = getEnv("S3_REGION", cfg.S3Region)
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", cfg.S3Endpoint)
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", cfg.S3SecretKey)
	cfg.KeyPrefix = getEnv("KEY_PREFIX", cfg.KeyPrefix)
	cfg.SeedScope = getEnv("SEED_SCOPE", cfg.SeedScope)
	cfg.SimulateLatency = getEnvBool("SIMULATE_LATENCY", cfg.SimulateLatency)
	cfg.OperationTimeout = getEnvDuration("OPERATION_TIMEOUT", cfg.OperationTimeout)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
}

func getEnv(key string, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(envPrefix + key)); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := getEnv(key, ""); v != "" {
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := getEnv(key, ""); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := getEnv(key, ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
