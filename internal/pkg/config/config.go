package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Store   StoreConfig
	Session SessionConfig
	Device  DeviceConfig

	QueueWorkers int `env:"QUEUE_WORKERS, default=2"`
}

type BackendConfig struct {
	URL     string        `env:"BACKEND_URL, default=http://localhost:8000/api"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT, default=15s"`
}

// StoreConfig selects where the session snapshot is persisted.
type StoreConfig struct {
	Driver string `env:"STORE_DRIVER, default=sqlite"`

	SQLitePath string `env:"SQLITE_PATH, default=bemshell.db"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI        string `env:"MONGO_URI,        default=mongodb://localhost:27017"`
	Database   string `env:"MONGO_DB,         default=bem_shell"`
	Collection string `env:"MONGO_COLLECTION, default=device_session"`
}

type RedisConfig struct {
	Addr   string `env:"REDIS_ADDR,   default=localhost:6379"`
	DB     int    `env:"REDIS_DB,     default=0"`
	Prefix string `env:"REDIS_PREFIX, default=bemshell"`
}

type SessionConfig struct {
	// SealKey is a base64 32-byte key. Empty stores the snapshot unsealed.
	SealKey string `env:"SESSION_SEAL_KEY"`
}

// DeviceConfig registers a push token on startup when Token is set.
type DeviceConfig struct {
	PushToken string `env:"DEVICE_PUSH_TOKEN"`
	Platform  string `env:"DEVICE_PLATFORM, default=android"`
}

// IsDevelopment reports whether pretty console logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through l and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case StoreMemory, StoreSQLite, StoreRedis, StoreMongo:
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if strings.TrimSpace(c.Backend.URL) == "" {
		return fmt.Errorf("config: BACKEND_URL is required")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("config: BACKEND_TIMEOUT must be positive")
	}
	if c.QueueWorkers < 1 {
		c.QueueWorkers = 1
	}
	return nil
}
