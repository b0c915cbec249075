package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	App      AppConfig
	Logger   LoggerConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Currency CurrencyConfig
	Session  SessionConfig
}

type AppConfig struct {
	Env string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type StorageConfig struct {
	// Backend selects the snapshot store: sqlite | redis | memory.
	Backend    string
	SQLitePath string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type KafkaConfig struct {
	// Brokers empty disables purchase event publishing.
	Brokers []string
	Topic   string
}

type CurrencyConfig struct {
	// DisplayCode empty or "USD" renders amounts in the base currency.
	DisplayCode string
	// StaticRate pins the exchange rate; 0 means unset.
	StaticRate float64
	// RateURL points at a JSON rate endpoint, consulted when no static
	// rate is pinned.
	RateURL string
}

type SessionConfig struct {
	// UserID empty means no active session; checkout will be rejected.
	UserID string
}

func LoadEnv() *Config {
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Storage: StorageConfig{
			Backend:    getEnv("STORAGE_BACKEND", "sqlite"),
			SQLitePath: getEnv("STORAGE_SQLITE_PATH", "ledger.db"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "ledger:"),
		},
		Kafka: KafkaConfig{
			Brokers: getEnvSlice("KAFKA_BROKERS", nil),
			Topic:   getEnv("KAFKA_TOPIC_PURCHASES", "purchases.events"),
		},
		Currency: CurrencyConfig{
			DisplayCode: getEnv("CURRENCY_DISPLAY", ""),
			StaticRate:  getEnvFloat("CURRENCY_RATE", 0),
			RateURL:     getEnv("CURRENCY_RATE_URL", ""),
		},
		Session: SessionConfig{
			UserID: getEnv("LEDGER_USER", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return strings.Split(value, ",")
	}
	return fallback
}
