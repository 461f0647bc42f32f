package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMemory   = "memory"
)

// Config holds the application configuration.
type Config struct {
	Port     string `mapstructure:"PORT"`
	GinMode  string `mapstructure:"GIN_MODE"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// LogFormat is "json" or "text".
	LogFormat string `mapstructure:"LOG_FORMAT"`

	StoreDriver      string        `mapstructure:"STORE_DRIVER"`
	StoreTimeout     time.Duration `mapstructure:"STORE_TIMEOUT"`
	SupabaseURL      string        `mapstructure:"SUPABASE_URL"`
	SupabaseAnonKey  string        `mapstructure:"SUPABASE_ANON_KEY"`
	DatabaseURL      string        `mapstructure:"DATABASE_URL"`
	JWTSecret        string        `mapstructure:"JWT_SECRET"`
	AccessTokenTTL   time.Duration `mapstructure:"ACCESS_TOKEN_TTL"`
	RecoveryTokenTTL time.Duration `mapstructure:"RECOVERY_TOKEN_TTL"`

	RedisURL    string        `mapstructure:"REDIS_URL"`
	CacheTTL    time.Duration `mapstructure:"CACHE_TTL"`
	CachePrefix string        `mapstructure:"CACHE_PREFIX"`
	RabbitMQURL string        `mapstructure:"RABBITMQ_URL"`

	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"`

	ContactWhatsApp  string `mapstructure:"CONTACT_WHATSAPP"`
	ContactInstagram string `mapstructure:"CONTACT_INSTAGRAM"`
	SiteURL          string `mapstructure:"SITE_URL"`
	DefaultLanguage  string `mapstructure:"DEFAULT_LANGUAGE"`
}

var defaults = map[string]any{
	"PORT":               "8080",
	"GIN_MODE":           "release",
	"LOG_LEVEL":          "info",
	"LOG_FORMAT":         "json",
	"STORE_DRIVER":       DriverSupabase,
	"STORE_TIMEOUT":      "10s",
	"SUPABASE_URL":       "",
	"SUPABASE_ANON_KEY":  "",
	"DATABASE_URL":       "",
	"JWT_SECRET":         "",
	"ACCESS_TOKEN_TTL":   "1h",
	"RECOVERY_TOKEN_TTL": "15m",
	"REDIS_URL":          "",
	"CACHE_TTL":          "1m",
	"CACHE_PREFIX":       "storefront",
	"RABBITMQ_URL":       "",
	"RATE_LIMIT_RPS":     1.0,
	"RATE_LIMIT_BURST":   5,
	"CONTACT_WHATSAPP":   "6208972190700",
	"CONTACT_INSTAGRAM":  "https://www.instagram.com/",
	"SITE_URL":           "http://localhost:3000",
	"DEFAULT_LANGUAGE":   "id",
}

// Load loads the configuration from a .env file in dir and environment variables.
// Environment variables win over the file.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Defaults make every key visible to AutomaticEnv during Unmarshal.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	return &cfg, nil
}

// Validate checks the settings the selected store driver depends on.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverSupabase:
		if c.SupabaseURL == "" || c.SupabaseAnonKey == "" {
			return errors.New("SUPABASE_URL and SUPABASE_ANON_KEY are required for the supabase driver")
		}
	case DriverPostgres, DriverMySQL:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s driver", c.StoreDriver)
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.DefaultLanguage != "id" && c.DefaultLanguage != "en" {
		return fmt.Errorf("DEFAULT_LANGUAGE must be id or en, got %q", c.DefaultLanguage)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}
