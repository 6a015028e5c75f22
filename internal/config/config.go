package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	MarketData MarketDataConfig
	Scoring    ScoringConfig
	Portfolio  PortfolioConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	Host         string
	SessionLimit int
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Enabled       bool
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	MigrationsDir string
	RetentionDays int // 0 keeps archived bars forever
}

// RedisConfig holds the shared series cache configuration
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Enabled     bool
	Brokers     []string
	SignalTopic string
	TradeTopic  string
	GroupID     string
}

// MarketDataConfig holds provider and cache settings
type MarketDataConfig struct {
	BaseURL               string
	Timeout               time.Duration
	SeriesCacheSize       int
	FundamentalsCacheSize int
}

// ScoringConfig holds universe scoring settings
type ScoringConfig struct {
	Workers         int
	LookbackDays    int
	Profile         string
	RefreshInterval time.Duration
}

// PortfolioConfig selects where positions are stored
type PortfolioConfig struct {
	Store string // file or postgres
	Path  string
}

// Load reads configuration from environment variables, after loading an
// optional .env file from the working directory.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			SessionLimit: getEnvInt("SERVER_SESSION_LIMIT", 10000),
		},
		Database: DatabaseConfig{
			Enabled:       getEnvBool("DB_ENABLED", false),
			Host:          getEnv("DB_HOST", "localhost"),
			Port:          getEnv("DB_PORT", "5432"),
			User:          getEnv("DB_USER", "postgres"),
			Password:      getEnv("DB_PASSWORD", "postgres"),
			DBName:        getEnv("DB_NAME", "supershares"),
			SSLMode:       getEnv("DB_SSLMODE", "disable"),
			MigrationsDir: getEnv("DB_MIGRATIONS_DIR", "db/migrations"),
			RetentionDays: getEnvInt("DB_RETENTION_DAYS", 0),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("REDIS_TTL", 15*time.Minute),
		},
		Kafka: KafkaConfig{
			Enabled:     getEnvBool("KAFKA_ENABLED", false),
			Brokers:     getEnvList("KAFKA_BROKERS", "localhost:9092"),
			SignalTopic: getEnv("KAFKA_SIGNAL_TOPIC", "supershares.signals"),
			TradeTopic:  getEnv("KAFKA_TRADE_TOPIC", "trading.orders"),
			GroupID:     getEnv("KAFKA_GROUP_ID", "supershares"),
		},
		MarketData: MarketDataConfig{
			BaseURL:               getEnv("MARKETDATA_BASE_URL", "https://query1.finance.yahoo.com"),
			Timeout:               getEnvDuration("MARKETDATA_TIMEOUT", 15*time.Second),
			SeriesCacheSize:       getEnvInt("MARKETDATA_SERIES_CACHE_SIZE", 128),
			FundamentalsCacheSize: getEnvInt("MARKETDATA_FUNDAMENTALS_CACHE_SIZE", 64),
		},
		Scoring: ScoringConfig{
			Workers:         getEnvInt("SCORING_WORKERS", 8),
			LookbackDays:    getEnvInt("SCORING_LOOKBACK_DAYS", 120),
			Profile:         getEnv("SCORING_PROFILE", "TRADER"),
			RefreshInterval: getEnvDuration("SCORING_REFRESH_INTERVAL", 15*time.Minute),
		},
		Portfolio: PortfolioConfig{
			Store: strings.ToLower(getEnv("PORTFOLIO_STORE", "file")),
			Path:  getEnv("PORTFOLIO_PATH", "portfolio.json"),
		},
	}
}

// ConnectionString returns the PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.DBName + "?sslmode=" + d.SSLMode
}

// Addr returns host:port for the HTTP listener
func (s *ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %t", key, value, defaultValue)
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getEnvList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
