package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// AppConfig represents the complete configuration
type AppConfig struct {
	Company CompanyConfig `toml:"company"`
	Storage StorageConfig `toml:"storage"`
	Queuing QueuingConfig `toml:"queuing"`
	Reports ReportsConfig `toml:"reports"`
}

// CompanyConfig identifies the business the reports are rendered for
type CompanyConfig struct {
	Name string `toml:"name"`
}

// StorageConfig contains MinIO settings for exported reports
type StorageConfig struct {
	Endpoint        string `toml:"endpoint"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
	UseSSL          bool   `toml:"use_ssl"`
	Bucket          string `toml:"bucket"`
}

// QueuingConfig contains Redis and concurrency settings for asynq
type QueuingConfig struct {
	RedisAddr       string         `toml:"redis_addr"`
	RedisPassword   string         `toml:"redis_password"`
	RedisDB         int            `toml:"redis_db"`
	Concurrency     int            `toml:"concurrency"`
	QueuePriorities map[string]int `toml:"queue_priorities"`
}

// ReportsConfig contains report export settings
type ReportsConfig struct {
	PresignExpiryHours int `toml:"presign_expiry_hours"`
	MaxRetryAttempts   int `toml:"max_retry_attempts"`
}

// Default returns a config with only the built-in defaults applied.
func Default() *AppConfig {
	config := &AppConfig{}
	applyDefaults(config)
	return config
}

// LoadAppConfig loads configuration from a TOML file
func LoadAppConfig(filename string) (*AppConfig, error) {
	config := &AppConfig{}
	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *AppConfig) {
	if config.Company.Name == "" {
		config.Company.Name = "Nutromilk"
	}
	if config.Storage.Bucket == "" {
		config.Storage.Bucket = "nutromilk-reports"
	}
	if config.Queuing.Concurrency <= 0 {
		config.Queuing.Concurrency = 5
	}
	if config.Reports.PresignExpiryHours <= 0 {
		config.Reports.PresignExpiryHours = 24
	}
	if config.Reports.MaxRetryAttempts <= 0 {
		config.Reports.MaxRetryAttempts = 5
	}
}
