package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DatabaseConfig holds PostgreSQL connection parameters for the catalog store.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// KafkaConfig holds Kafka connection parameters. An empty broker list
// disables event publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Config is the process configuration, loaded from the environment.
type Config struct {
	GRPCPort    int
	HTTPPort    int
	ServiceName string

	LogLevel  string
	LogFormat string

	// CatalogSource selects the catalog backend: "static", "file", or "postgres".
	CatalogSource string
	// CatalogFile is the card master JSON file, used when CatalogSource is "file".
	CatalogFile string
	// RulesFile optionally overrides the compiled-in scoring rules.
	RulesFile string

	// CORSAllowedOrigins lists the origins admitted by the REST layer.
	CORSAllowedOrigins []string

	DB    DatabaseConfig
	Kafka KafkaConfig
}

// Validate panics on configuration that cannot possibly serve traffic.
func (c Config) Validate() {
	switch c.CatalogSource {
	case "static", "file", "postgres":
	default:
		panic(fmt.Sprintf("CATALOG_SOURCE must be static, file, or postgres, got %q", c.CatalogSource))
	}
	if c.CatalogSource == "file" && c.CatalogFile == "" {
		panic("CATALOG_FILE is required when CATALOG_SOURCE=file")
	}
	if c.CatalogSource == "postgres" && c.DB.Password == "" {
		panic("DB_PASSWORD is required when CATALOG_SOURCE=postgres")
	}
}

// Load reads configuration from the environment, with development defaults.
func Load() Config {
	return Config{
		GRPCPort:    getEnvInt("GRPC_PORT", 9095),
		HTTPPort:    getEnvInt("HTTP_PORT", 8095),
		ServiceName: "recommendation-service",

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		CatalogSource: getEnv("CATALOG_SOURCE", "static"),
		CatalogFile:   getEnv("CATALOG_FILE", ""),
		RulesFile:     getEnv("RULES_FILE", ""),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "https://www.neupi.co.in,https://neupi.co.in")),

		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "neupi"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "neupi_recommendation"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "recommendation-events"),
		},
	}
}

// GRPCAddr returns the gRPC listen address.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// HTTPAddr returns the HTTP listen address.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
