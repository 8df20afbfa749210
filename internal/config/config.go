package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Cleanup  CleanupConfig  `yaml:"cleanup"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	BasePath    string `yaml:"base_path"`
	Env         string `yaml:"env"`
	LogLevel    string `yaml:"log_level"`
	CORSOrigins string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	URL             string `yaml:"url"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime_minutes"`
}

type AuthConfig struct {
	// ProviderURL is the base URL of the external auth provider.
	// When empty, tokens are verified locally with SecretKey.
	ProviderURL string `yaml:"provider_url"`
	SecretKey   string `yaml:"secret_key"`
}

type CleanupConfig struct {
	// Schedule is a cron expression for the moderation cleanup job
	Schedule string `yaml:"schedule"`
	// RetentionDays is how long rejected/spam comments are kept
	RetentionDays int `yaml:"retention_days"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8080,
			BasePath:    "/api",
			Env:         "dev",
			LogLevel:    "debug",
			CORSOrigins: "*",
		},
		Database: DatabaseConfig{
			MaxOpenConns:    100,
			MaxIdleConns:    10,
			ConnMaxLifetime: 60,
		},
		Cleanup: CleanupConfig{
			Schedule:      "@daily",
			RetentionDays: 30,
		},
	}

	// Load from yaml file if exists
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if basePath := os.Getenv("SERVER_BASE_PATH"); basePath != "" {
		cfg.Server.BasePath = basePath
	}
	if env := os.Getenv("ENV"); env != "" {
		cfg.Server.Env = env
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.Server.LogLevel = logLevel
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.Server.CORSOrigins = origins
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	if providerURL := os.Getenv("AUTH_PROVIDER_URL"); providerURL != "" {
		cfg.Auth.ProviderURL = providerURL
	}
	if secretKey := os.Getenv("SECRET_KEY"); secretKey != "" {
		cfg.Auth.SecretKey = secretKey
	}
	if schedule := os.Getenv("CLEANUP_SCHEDULE"); schedule != "" {
		cfg.Cleanup.Schedule = schedule
	}
	if days := os.Getenv("CLEANUP_RETENTION_DAYS"); days != "" {
		if d, err := strconv.Atoi(days); err == nil {
			cfg.Cleanup.RetentionDays = d
		}
	}

	return cfg, nil
}
