package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config theaterlist (HTTP API) configuration.
type Config struct {
	HTTP struct {
		Addr string
	}
	DBEnabled bool
	Database  DatabaseConfig

	RedisEnabled bool
	Redis        struct {
		Addr     string
		Password string
		DB       int
	}

	Log struct {
		Level  string
		Format string
	}

	// Directory where generated billing sheets and sedation records land.
	DocumentsDir string
	// Pause between the billing and sedation rendering phases.
	PhaseDelay time.Duration

	Mail MailConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// MailConfig points at the relay that actually sends practice emails.
type MailConfig struct {
	Enabled     bool
	HTTPAddress string
	APIKey      string
	FromAddress string
	Timeout     time.Duration
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	// Default to false for local dev: without a database the service keeps
	// lists in memory, which is enough to exercise the whole workflow.
	cfg.DBEnabled = getEnv("DB_ENABLED", "false") == "true"
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "theaterlist")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "20"), 20)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)

	cfg.RedisEnabled = getEnv("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = 0

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.DocumentsDir = getEnv("DOCUMENTS_DIR", "documents")
	cfg.PhaseDelay = time.Duration(parseInt(getEnv("PHASE_DELAY_SECONDS", "5"), 5)) * time.Second

	cfg.Mail.Enabled = getEnv("MAIL_RELAY_ENABLED", "false") == "true"
	cfg.Mail.HTTPAddress = getEnv("MAIL_RELAY_ADDRESS", "http://localhost:8025")
	cfg.Mail.APIKey = getEnv("MAIL_RELAY_API_KEY", "")
	cfg.Mail.FromAddress = getEnv("MAIL_FROM_ADDRESS", "drcombrinck@healthcollectiveheal.com")
	cfg.Mail.Timeout = time.Duration(parseInt(getEnv("MAIL_RELAY_TIMEOUT_SECONDS", "10"), 10)) * time.Second

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
