package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/oggyb/omni-notify/internal/domain/notification"
)

type Config struct {
	App struct {
		Name string
		Env  string
	}

	API struct {
		Host string
		Port string
	}

	DB struct {
		Host            string
		Port            int
		User            string
		Password        string
		Name            string
		SSLMode         string
		MaxOpenConns    int
		MaxIdleConns    int
		ConnMaxLifetime time.Duration
		LogLevel        string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Omni OmniConfig

	// ProjectSettingsPath points to an optional YAML file whose omni
	// section overrides the environment.
	ProjectSettingsPath string

	Scheduler struct {
		Interval     time.Duration
		BatchTimeout time.Duration
	}

	Worker struct {
		BatchSize         int
		MaxWorkers        int
		PerMessageTimeout time.Duration
	}
}

// OmniConfig describes how to reach the gateway and who gets notified.
type OmniConfig struct {
	Enabled       bool          `yaml:"-"`
	Host          string        `yaml:"host"`
	APIKey        string        `yaml:"api_key,omitempty"`
	Instance      string        `yaml:"instance"`
	Recipient     string        `yaml:"recipient"`
	RecipientType string        `yaml:"recipient_type"`
	Timeout       time.Duration `yaml:"-"`
	CacheTTL      time.Duration `yaml:"-"`
}

// Validate checks the gateway settings. A disabled config is always valid.
func (o OmniConfig) Validate() error {
	if !o.Enabled {
		return nil
	}

	var errs []error
	if o.Host == "" {
		errs = append(errs, errors.New("omni host is required (OMNI_HOST)"))
	} else if !strings.HasPrefix(o.Host, "http://") && !strings.HasPrefix(o.Host, "https://") {
		errs = append(errs, fmt.Errorf("omni host %q must start with http:// or https://", o.Host))
	}
	if o.Instance == "" {
		errs = append(errs, errors.New("omni instance is required (OMNI_INSTANCE)"))
	}
	if o.Recipient == "" {
		errs = append(errs, errors.New("omni recipient is required (OMNI_RECIPIENT)"))
	}
	if _, err := notification.ParseRecipientType(o.RecipientType); err != nil {
		errs = append(errs, fmt.Errorf("omni recipient type %q: %w", o.RecipientType, err))
	}

	return errors.Join(errs...)
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// App
	cfg.App.Name = getEnv("APP_NAME", "omni-notify")
	cfg.App.Env = getEnv("APP_ENV", "development")

	// API
	cfg.API.Host = getEnv("API_HOST", "0.0.0.0")
	cfg.API.Port = getEnv("API_PORT", "8080")

	// DB
	cfg.DB.Host = getEnv("DB_HOST", "db")
	cfg.DB.Port = getInt("DB_PORT", 5432)
	cfg.DB.User = getEnv("DB_USER", "root")
	cfg.DB.Password = getEnv("DB_PASSWORD", "123456")
	cfg.DB.Name = getEnv("DB_NAME", "db_omni_notify")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.DB.MaxOpenConns = getInt("DB_MAX_OPEN_CONNS", 10)
	cfg.DB.MaxIdleConns = getInt("DB_MAX_IDLE_CONNS", 5)
	cfg.DB.ConnMaxLifetime = getDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	cfg.DB.LogLevel = getEnv("DB_LOG_LEVEL", "warn")

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "redis:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	// Omni gateway
	cfg.Omni.Enabled = getBool("OMNI_ENABLED", false)
	cfg.Omni.Host = getEnv("OMNI_HOST", "")
	cfg.Omni.APIKey = getEnv("OMNI_API_KEY", "")
	cfg.Omni.Instance = getEnv("OMNI_INSTANCE", "")
	cfg.Omni.Recipient = getEnv("OMNI_RECIPIENT", "")
	cfg.Omni.RecipientType = getEnv("OMNI_RECIPIENT_TYPE", "phone_number")
	cfg.Omni.Timeout = getDuration("OMNI_TIMEOUT", 10*time.Second)
	cfg.Omni.CacheTTL = getDuration("OMNI_INSTANCES_CACHE_TTL", time.Minute)

	cfg.ProjectSettingsPath = getEnv("PROJECT_SETTINGS_PATH", "")

	// Scheduler
	cfg.Scheduler.Interval = getDuration("SCHEDULER_INTERVAL", 5*time.Second)
	cfg.Scheduler.BatchTimeout = getDuration("SCHEDULER_BATCH_TIMEOUT", 30*time.Second)

	// Worker / notification dispatch
	cfg.Worker.BatchSize = getInt("NOTIFY_BATCH_SIZE", 100)
	cfg.Worker.MaxWorkers = getInt("NOTIFY_MAX_WORKERS", 4)
	cfg.Worker.PerMessageTimeout = getDuration("NOTIFY_PER_MESSAGE_TIMEOUT", 10*time.Second)

	return cfg
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return isTruthy(v)
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.SSLMode,
	)
}
