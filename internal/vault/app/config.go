package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/passkeep/internal/vault/notify"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DatabaseFile      string        `yaml:"database_file"`       // SQLite file (default: vault.db)
	EncryptionKey     string        `yaml:"encryption_key"`      // base64 32-byte AES key
	EncryptionKeyFile string        `yaml:"encryption_key_file"` // file holding EncryptionKey, used when it is empty
	JWTSecret         string        `yaml:"jwt_secret"`          // HS256 secret; random per start when empty
	Issuer            string        `yaml:"issuer"`              // iss claim (default: passkeep)
	AccessTTL         time.Duration `yaml:"access_ttl"`          // default: 30m
	ResetTTL          time.Duration `yaml:"reset_ttl"`           // default: 15m
	PepperFile        string        `yaml:"pepper_file"`         // created on first start (default: ./pepper)

	Notifier string      `yaml:"notifier"` // log or redis (default: log)
	Redis    RedisConfig `yaml:"redis"`

	Env                  string        `yaml:"env"`        // dev, staging, prod (default: dev)
	LogLevel             string        `yaml:"log_level"`  // debug, info, warn, error (default: info)
	LogFormat            string        `yaml:"log_format"` // json, text (default: json)
	Port                 int           `yaml:"port"`       // default: 8080
	ShutdownGracePeriod  time.Duration `yaml:"shutdown_grace_period"`
	HousekeepingInterval time.Duration `yaml:"housekeeping_interval"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Queue    string `yaml:"queue"`
}

func DefaultConfig() Config {
	return Config{
		DatabaseFile: "vault.db",
		Issuer:       "passkeep",
		AccessTTL:    30 * time.Minute,
		ResetTTL:     15 * time.Minute,
		PepperFile:   "pepper",
		Notifier:     "log",
		Redis: RedisConfig{
			Addr:  "localhost:6379",
			Queue: notify.DefaultQueue,
		},
		Env:                  "dev",
		LogLevel:             "info",
		LogFormat:            "json",
		Port:                 8080,
		ShutdownGracePeriod:  10 * time.Second,
		HousekeepingInterval: 1 * time.Hour,
	}
}

// LoadConfig layers defaults, the optional YAML file at path, a .env file in
// the working directory and finally the process environment.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return Config{}, err
		}
	}

	// .env never overrides variables that are already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func (c *Config) loadFromEnv() {
	c.DatabaseFile = getEnvOrDefault("VAULT_DATABASE_FILE", c.DatabaseFile)
	c.EncryptionKey = getEnvOrDefault("VAULT_ENCRYPTION_KEY", c.EncryptionKey)
	c.EncryptionKeyFile = getEnvOrDefault("VAULT_ENCRYPTION_KEY_FILE", c.EncryptionKeyFile)
	c.JWTSecret = getEnvOrDefault("VAULT_JWT_SECRET", c.JWTSecret)
	c.Issuer = getEnvOrDefault("VAULT_ISSUER", c.Issuer)
	c.AccessTTL = getEnvDurationOrDefault("VAULT_ACCESS_TTL", c.AccessTTL)
	c.ResetTTL = getEnvDurationOrDefault("VAULT_RESET_TTL", c.ResetTTL)
	c.PepperFile = getEnvOrDefault("VAULT_PEPPER_FILE", c.PepperFile)

	c.Notifier = getEnvOrDefault("VAULT_NOTIFIER", c.Notifier)
	c.Redis.Addr = getEnvOrDefault("VAULT_REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnvOrDefault("VAULT_REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvIntOrDefault("VAULT_REDIS_DB", c.Redis.DB)
	c.Redis.Queue = getEnvOrDefault("VAULT_REDIS_QUEUE", c.Redis.Queue)

	c.Env = getEnvOrDefault("ENV", c.Env)
	c.LogLevel = getEnvOrDefault("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnvOrDefault("LOG_FORMAT", c.LogFormat)
	c.Port = getEnvIntOrDefault("PORT", c.Port)
	c.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", c.ShutdownGracePeriod)
	c.HousekeepingInterval = getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", c.HousekeepingInterval)
}

// Validate checks the settings that can be judged without touching the
// filesystem. Key material is parsed later by InitSecrets.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.DatabaseFile == "" {
		return errors.New("database_file is required")
	}
	if c.EncryptionKey == "" && c.EncryptionKeyFile == "" {
		return errors.New("an encryption key is required (VAULT_ENCRYPTION_KEY or VAULT_ENCRYPTION_KEY_FILE)")
	}
	if c.Issuer == "" {
		return errors.New("issuer is required")
	}
	if c.AccessTTL <= 0 || c.ResetTTL <= 0 {
		return errors.New("access_ttl and reset_ttl must be positive")
	}
	if c.PepperFile == "" {
		return errors.New("pepper_file is required")
	}

	switch c.Notifier {
	case "log":
	case "redis":
		if c.Redis.Addr == "" {
			return errors.New("redis addr is required when notifier is 'redis'")
		}
		if c.Redis.Queue == "" {
			return errors.New("redis queue is required when notifier is 'redis'")
		}
	default:
		return fmt.Errorf("invalid notifier: %s (must be 'log' or 'redis')", c.Notifier)
	}

	if c.ShutdownGracePeriod <= 0 || c.HousekeepingInterval <= 0 {
		return errors.New("shutdown_grace_period and housekeeping_interval must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
