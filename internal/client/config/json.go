package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mindful/internal/flagx"
	"github.com/dmitrijs2005/mindful/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from an explicit zero value.
type JsonConfig struct {
	Storage          string          `json:"storage"`
	SQLitePath       string          `json:"sqlite_path"`
	PostgresDSN      string          `json:"postgres_dsn"`
	RedisAddr        string          `json:"redis_addr"`
	RedisPassword    string          `json:"redis_password"`
	RedisDB          *int            `json:"redis_db"`
	S3Bucket         string          `json:"s3_bucket"`
	S3Region         string          `json:"s3_region"`
	S3Endpoint       string          `json:"s3_endpoint"`
	S3AccessKey      string          `json:"s3_access_key"`
	S3SecretKey      string          `json:"s3_secret_key"`
	KeyPrefix        *string         `json:"key_prefix"`
	SeedScope        string          `json:"seed_scope"`
	SimulateLatency  *bool           `json:"simulate_latency"`
	OperationTimeout *timex.Duration `json:"operation_timeout"`
	LogLevel         string          `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from -c or -config (see flagx.ConfigFilePath); without
// it the function returns immediately. Only fields present in the file are
// copied. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFilePath()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	setString(&cfg.Storage, jc.Storage)
	setString(&cfg.SQLitePath, jc.SQLitePath)
	setString(&cfg.PostgresDSN, jc.PostgresDSN)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisPassword, jc.RedisPassword)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.SeedScope, jc.SeedScope)
	setString(&cfg.LogLevel, jc.LogLevel)

	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
	if jc.KeyPrefix != nil {
		cfg.KeyPrefix = *jc.KeyPrefix
	}
	if jc.SimulateLatency != nil {
		cfg.SimulateLatency = *jc.SimulateLatency
	}
	if jc.OperationTimeout != nil {
		cfg.OperationTimeout = jc.OperationTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
