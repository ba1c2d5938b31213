package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/playforge/tictactoe-backend/internal/validator"
)

// Config carries every runtime setting. Values come from an optional YAML
// file plus environment overrides; nothing configuration-related lives in
// package globals.
type Config struct {
	HTTPPort   string `yaml:"http_port" env:"HTTP_PORT" env-default:"8080" validate:"required"`
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"./tictactoe.db" validate:"required"`
	LogLevel   string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`

	Redis RedisConfig `yaml:"redis"`
	Auth  AuthConfig  `yaml:"auth"`
	Otel  OtelConfig  `yaml:"otel"`
}

type RedisConfig struct {
	Addr string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379" validate:"required"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-default:"local-dev-secret" validate:"required,min=8"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"72h" validate:"required"`
}

type OtelConfig struct {
	// Endpoint of an OTLP gRPC collector. When empty the service keeps
	// telemetry local and exports traces to stdout only.
	Endpoint       string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName    string `yaml:"service_name" env:"OTEL_SERVICE_NAME" env-default:"tictactoe-backend" validate:"required"`
	ServiceVersion string `yaml:"service_version" env:"OTEL_SERVICE_VERSION" env-default:"v0.1.0" validate:"required"`
}

// Load reads configuration from CONFIG_PATH (default ./config.yml) when the
// file exists, falling back to environment variables alone, then validates
// the result.
func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config.yml"
	}

	var cfg Config
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read config from environment: %w", err)
		}
	}

	if err := validator.GetValidator().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// MustLoad is Load for program startup.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
