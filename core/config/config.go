package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/FutureNHS/futurenhs-platform/core/db"
)

type Config struct {
	OTel           OTelConfig
	Events         EventsConfig
	Env            string
	Port           string
	IdentityHeader string
	NodeID         int64
	DB             db.Config
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type EventsBackend string

const (
	EventsBackendRedis EventsBackend = "redis"
	EventsBackendKafka EventsBackend = "kafka"
)

// EventsConfig selects where domain events are published after commit.
type EventsConfig struct {
	Backend      EventsBackend
	RedisURL     string
	RedisStream  string
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from the environment. In development it first
// loads .env.server, falling back to .env.
func Load() (Config, error) {
	if getEnv("WORKSPACE_ENV", "development") == "development" {
		if err := godotenv.Load(".env.server"); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	cfg := Config{
		Env:            getEnv("WORKSPACE_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		IdentityHeader: getEnv("IDENTITY_HEADER", "X-Auth-Id"),
		NodeID:         getEnvInt64("SNOWFLAKE_NODE_ID", 1),
		DB: db.Config{
			DSN:      getEnv("DATABASE_URL", ""),
			MaxConns: getEnvInt32("DB_MAX_CONNS", 10),
			MinConns: getEnvInt32("DB_MIN_CONNS", 2),
		},
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "workspace-service"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		Events: EventsConfig{
			Backend:      EventsBackend(strings.ToLower(getEnv("EVENTS_BACKEND", string(EventsBackendRedis)))),
			RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),
			RedisStream:  getEnv("EVENTS_REDIS_STREAM", "workspace-events"),
			KafkaBrokers: splitList(getEnv("EVENTS_KAFKA_BROKERS", "")),
			KafkaTopic:   getEnv("EVENTS_KAFKA_TOPIC", "workspace-events"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DB.DSN == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		return fmt.Errorf("SNOWFLAKE_NODE_ID must be between 0 and 1023, got %d", c.NodeID)
	}

	switch c.Events.Backend {
	case EventsBackendRedis:
		if c.Events.RedisURL == "" || c.Events.RedisStream == "" {
			return fmt.Errorf("REDIS_URL and EVENTS_REDIS_STREAM are required for the redis events backend")
		}
	case EventsBackendKafka:
		if len(c.Events.KafkaBrokers) == 0 || c.Events.KafkaTopic == "" {
			return fmt.Errorf("EVENTS_KAFKA_BROKERS and EVENTS_KAFKA_TOPIC are required for the kafka events backend")
		}
	default:
		return fmt.Errorf("unsupported EVENTS_BACKEND %q", c.Events.Backend)
	}

	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt32(key string, fallback int32) int32 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(i)
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
