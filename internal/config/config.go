package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Session store kinds.
const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

// Config holds all application settings read from the environment.
type Config struct {
	App       App
	Exchange  Exchange
	Session   Session
	Redis     Redis
	RateLimit RateLimit
}

type App struct {
	Host            string        `env:"APP_HOST" env-default:"localhost"`
	Port            string        `env:"APP_PORT" env-default:"8080"`
	LogLevel        string        `env:"APP_LOG_LEVEL" env-default:"info"`
	LogFormat       string        `env:"APP_LOG_FORMAT" env-default:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type Exchange struct {
	BaseURL string        `env:"EXCHANGE_BASE_URL" env-default:"http://localhost:5000"`
	Timeout time.Duration `env:"EXCHANGE_TIMEOUT" env-default:"0s"` // zero means no client timeout
}

type Session struct {
	Store string        `env:"SESSION_STORE" env-default:"memory"`
	TTL   time.Duration `env:"SESSION_TTL" env-default:"30m"`
}

type Redis struct {
	Host         string `env:"REDIS_HOST" env-default:"localhost"`
	Port         int    `env:"REDIS_PORT" env-default:"6379"`
	DB           int    `env:"REDIS_DB" env-default:"0"`
	Password     string `env:"REDIS_PASSWORD" env-default:""`
	PoolSize     int    `env:"REDIS_POOL_SIZE" env-default:"10"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
}

// RateLimit is a ulule/limiter formatted rate such as "30-M".
type RateLimit struct {
	Rate string `env:"RATE_LIMIT" env-default:"60-M"`
}

// Addr returns the listen address of the HTTP server.
func (a App) Addr() string {
	return net.JoinHostPort(a.Host, a.Port)
}

// Addr returns the Redis server address.
func (r Redis) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

// Load reads the optional env file at path and then the process environment.
// Variables already set in the environment take precedence over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("unsupported SESSION_STORE %q", c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Session.TTL)
	}
	if c.Exchange.BaseURL == "" {
		return fmt.Errorf("EXCHANGE_BASE_URL must not be empty")
	}
	return nil
}
