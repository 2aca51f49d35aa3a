package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"mortgage-calc/money"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LogConfig       `yaml:"logging"`
	Display   DisplayConfig   `yaml:"display"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
	Scenarios ScenarioConfig  `yaml:"scenarios"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DisplayConfig controls how money is rendered; it never affects amounts.
type DisplayConfig struct {
	Locale       string `yaml:"locale"`
	CurrencyCode string `yaml:"currency_code"`
}

type RateLimitConfig struct {
	PerMinute int `yaml:"per_minute"`
	Burst     int `yaml:"burst"`
}

// RedisConfig is optional; an empty Addr keeps rate limiting in memory.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ScenarioConfig struct {
	Max     int `yaml:"max"`
	Workers int `yaml:"workers"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LogConfig{Level: "info"},
		Display: DisplayConfig{
			Locale:       money.DefaultLocale,
			CurrencyCode: money.DefaultCurrency,
		},
		RateLimit: RateLimitConfig{PerMinute: 60, Burst: 10},
		Scenarios: ScenarioConfig{Max: 10, Workers: 4},
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables (a .env file is read first).
func Load() (Config, error) {
	cfg := Default()

	if err := loadEnv(); err != nil {
		return cfg, err
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	var err error

	if cfg.Server.Port, err = parseIntEnv("SERVER_PORT", cfg.Server.Port); err != nil {
		return err
	}
	if cfg.Server.ReadTimeout, err = parseDurationEnv("SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout); err != nil {
		return err
	}
	if cfg.Server.WriteTimeout, err = parseDurationEnv("SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout); err != nil {
		return err
	}
	if cfg.Server.IdleTimeout, err = parseDurationEnv("SERVER_IDLE_TIMEOUT", cfg.Server.IdleTimeout); err != nil {
		return err
	}
	if cfg.Server.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout); err != nil {
		return err
	}

	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Display.Locale = getEnv("LOCALE", cfg.Display.Locale)
	cfg.Display.CurrencyCode = getEnv("CURRENCY_CODE", cfg.Display.CurrencyCode)

	if cfg.RateLimit.PerMinute, err = parseIntEnv("RATE_LIMIT_PER_MINUTE", cfg.RateLimit.PerMinute); err != nil {
		return err
	}
	if cfg.RateLimit.Burst, err = parseIntEnv("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return err
	}

	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	if value, ok := os.LookupEnv("REDIS_DB"); ok {
		db, err := strconv.Atoi(value)
		if err != nil || db < 0 {
			return fmt.Errorf("REDIS_DB must be a non-negative integer")
		}
		cfg.Redis.DB = db
	}

	if cfg.Scenarios.Max, err = parseIntEnv("SCENARIO_MAX", cfg.Scenarios.Max); err != nil {
		return err
	}
	if cfg.Scenarios.Workers, err = parseIntEnv("SCENARIO_WORKERS", cfg.Scenarios.Workers); err != nil {
		return err
	}
	return nil
}

func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535")
	}
	if c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be greater than 0")
	}
	if c.Scenarios.Max <= 0 || c.Scenarios.Workers <= 0 {
		return fmt.Errorf("SCENARIO_MAX and SCENARIO_WORKERS must be greater than 0")
	}
	if _, err := money.NewFormatter(c.Display.Locale, c.Display.CurrencyCode); err != nil {
		return fmt.Errorf("invalid display settings: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return parsed, nil
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return parsed, nil
}

func loadEnv() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}
