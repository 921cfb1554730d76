package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// defaultAPIKey is the documented fallback shared secret, matching the
// value preconfigured in the game client for constrained deployments.
// Real deployments override it with the API_KEY environment variable.
const defaultAPIKey = "ROYALGUARDAPIKEY-1223424PRODREADY2323784237283487"

// Config is the full application configuration. Values come from the
// built-in defaults, then an optional YAML file, then environment
// overrides, so the service runs unchanged on env-only platforms such
// as Railway.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Server ServerConfig `yaml:"server"`
	Mongo  MongoConfig  `yaml:"mongo"`
	Auth   AuthConfig   `yaml:"auth"`
	Kafka  KafkaConfig  `yaml:"kafka"`
	Log    LogConfig    `yaml:"log"`
}

// AppConfig is the application identity.
type AppConfig struct {
	Name        string `yaml:"name" env:"SERVICE_NAME"`
	Environment string `yaml:"environment" env:"ENV"`
}

// ServerConfig is the HTTP server configuration. Timeouts are duration
// strings ("10s"); ParseDuration applies the fallback when unset.
type ServerConfig struct {
	Host            string `yaml:"host" env:"HOST"`
	Port            int    `yaml:"port" env:"PORT"`
	ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// MongoConfig is the document store configuration.
type MongoConfig struct {
	URI      string `yaml:"uri" env:"MONGO_URI"`
	Database string `yaml:"database" env:"MONGO_DB"`
}

// AuthConfig holds the shared secret the game client presents.
type AuthConfig struct {
	APIKey string `yaml:"api_key" env:"API_KEY"`
}

// KafkaConfig is the downstream event channel configuration. Publishing
// is disabled entirely when no brokers are set.
type KafkaConfig struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `yaml:"topic" env:"KAFKA_TOPIC"`
}

// LogConfig is the logging configuration.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// Default returns the built-in fallback configuration.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "Royal Guard Activity API",
			Environment: "production",
		},
		Server: ServerConfig{
			Port: 5000,
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "royalguard",
		},
		Auth: AuthConfig{
			APIKey: defaultAPIKey,
		},
		Kafka: KafkaConfig{
			Topic: "royalguard.service.logs.stored.v1",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path when it exists and then applies
// environment overrides. A missing file is not an error: constrained
// deployments configure everything through the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// topicPattern is the platform topic convention
// <org>.<tier>.<domain>.<event>.v<version>.
var topicPattern = regexp.MustCompile(`^[a-z0-9-]+\.[a-z0-9-]+\.[a-z0-9-]+\.[a-z0-9-]+\.v[0-9]+$`)

// Validate checks the effective configuration.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo.database is required")
	}
	if len(c.Kafka.Brokers) > 0 && !topicPattern.MatchString(c.Kafka.Topic) {
		return fmt.Errorf("kafka.topic %q must match <org>.<tier>.<domain>.<event>.v<version>", c.Kafka.Topic)
	}
	return nil
}

// ParseDuration parses a duration string, returning fallback when the
// value is empty or invalid.
func ParseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
