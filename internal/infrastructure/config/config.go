package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store driver names accepted in STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config is the application configuration, populated from environment
// variables (a .env file is honored when present).
type Config struct {
	HTTPAddr    string        `env:"HTTP_ADDR" envDefault:":8080"`
	StoreDriver string        `env:"STORE_DRIVER" envDefault:"mongo"`
	MongoURL    string        `env:"MONGO_URL"`
	MongoDB     string        `env:"MONGO_DB" envDefault:"parley"`
	DatabaseURL string        `env:"DB_URL"`
	RedisURL    string        `env:"REDIS_URL"`
	JWTSecret   string        `env:"JWT_SECRET,required,notEmpty"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"30s"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads .env (best effort) and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	switch cfg.StoreDriver {
	case DriverMongo:
		if cfg.MongoURL == "" {
			return Config{}, fmt.Errorf("config: MONGO_URL is required when STORE_DRIVER=%s", DriverMongo)
		}
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("config: DB_URL is required when STORE_DRIVER=%s", DriverPostgres)
		}
	case DriverMemory:
	default:
		return Config{}, fmt.Errorf("config: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return cfg, nil
}
