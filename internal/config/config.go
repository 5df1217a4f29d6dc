package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds the application configuration loaded from the environment.
type Config struct {
	AppHost  string `env:"APP_HOST" envDefault:"0.0.0.0"`
	AppPort  int    `env:"PORT" envDefault:"8000"`
	LogLevel string `env:"APP_LOG_LEVEL" envDefault:"info"`

	// Document store
	DatabaseURL          string `env:"DATABASE_URL"`  // Empty selects the in-memory store
	DatabaseName         string `env:"DATABASE_NAME"` // Overrides the database in DatabaseURL
	DatabaseMaxOpenConns int    `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"16"`
	DatabaseMaxIdleConns int    `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"8"`

	// Session cache
	RedisAddr       string        `env:"REDIS_ADDR"` // Empty disables the cache
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	SessionCacheTTL time.Duration `env:"SESSION_CACHE_TTL" envDefault:"5m"`

	// Advisory lifetime written to sessions.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`

	// Domain events
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","` // Empty disables publishing
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"syllabus-events"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Load reads variables from the dotenv file at path, if it exists, and parses
// the environment. Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		_ = godotenv.Load(path)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("parsing config: APP_LOG_LEVEL: %w", err)
	}
	if cfg.AppPort <= 0 || cfg.AppPort > 65535 {
		return nil, fmt.Errorf("parsing config: PORT %d out of range", cfg.AppPort)
	}
	return cfg, nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.AppHost, c.AppPort)
}

// UseDatabase reports whether a PostgreSQL store is configured.
func (c *Config) UseDatabase() bool {
	return c.DatabaseURL != ""
}

// UseRedis reports whether the session cache is configured.
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}

// UseKafka reports whether event publishing is configured.
func (c *Config) UseKafka() bool {
	return len(c.KafkaBrokers) > 0
}
