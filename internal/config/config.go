// Package config loads process configuration from the environment, with an
// optional .env file for local runs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/comitanigiacomo/kanso-reading-plan/internal/catalog"
	"github.com/comitanigiacomo/kanso-reading-plan/internal/core/domain"
)

const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"

	devJWTSecret = "kanso-dev-secret-change-me"
)

type Config struct {
	Env      string `validate:"oneof=development staging production"`
	LogLevel string `validate:"oneof=debug info warn error"`
	Port     string `validate:"required,numeric"`
	TimeZone string `validate:"required"`

	Plan      PlanConfig
	Storage   StorageConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Retry     RetryConfig

	CORSOrigins []string
}

type PlanConfig struct {
	Catalog          string `validate:"required"`
	Year             int    `validate:"gte=1,lte=9999"`
	ReservedLeadDays int    `validate:"gte=0,lte=366"`
	QuotaTiers       string `validate:"required"`
}

type StorageConfig struct {
	Backend    string `validate:"oneof=postgres sqlite memory"`
	DBDriver   string `validate:"oneof=pgx postgres"`
	DBHost     string
	DBPort     string `validate:"omitempty,numeric"`
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	SQLitePath string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string `validate:"omitempty,numeric"`
	Password string
	DB       int `validate:"gte=0,lte=15"`
}

type JWTConfig struct {
	Secret string
	Issuer string        `validate:"required"`
	TTL    time.Duration `validate:"gt=0"`
}

type RateLimitConfig struct {
	Requests int           `validate:"gte=0"`
	Window   time.Duration `validate:"gt=0"`
}

type RetryConfig struct {
	Interval   time.Duration `validate:"gt=0"`
	MaxPending int           `validate:"gt=0"`
}

// Load reads .env (if present) and the environment, applies defaults and
// validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the config from the current environment only.
func FromEnv() (*Config, error) {
	p := &envParser{}

	catalogName := getEnv("PLAN_CATALOG", catalog.NameBible)
	preset := catalog.PresetFor(catalogName)

	cfg := &Config{
		Env:      getEnv("APP_ENV", EnvDevelopment),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Port:     getEnv("PORT", "8080"),
		TimeZone: getEnv("APP_TIMEZONE", "UTC"),

		Plan: PlanConfig{
			Catalog:          catalogName,
			Year:             p.intVar("PLAN_YEAR", catalog.DefaultYear),
			ReservedLeadDays: p.intVar("PLAN_RESERVED_DAYS", preset.ReservedLeadDays),
			QuotaTiers:       getEnv("PLAN_QUOTA_TIERS", preset.QuotaTiers),
		},

		Storage: StorageConfig{
			Backend:    strings.ToLower(getEnv("STORAGE_BACKEND", "sqlite")),
			DBDriver:   getEnv("DB_DRIVER", "pgx"),
			DBHost:     getEnv("DB_HOST", "localhost"),
			DBPort:     getEnv("DB_PORT", "5432"),
			DBUser:     os.Getenv("DB_USER"),
			DBPassword: os.Getenv("DB_PASSWORD"),
			DBName:     os.Getenv("DB_NAME"),
			DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "data/reading_plan.db"),
		},

		Redis: RedisConfig{
			Enabled:  p.boolVar("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       p.intVar("REDIS_DB", 0),
		},

		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			Issuer: getEnv("JWT_ISSUER", "kanso-reading-plan"),
			TTL:    p.durationVar("JWT_TTL", 72*time.Hour),
		},

		RateLimit: RateLimitConfig{
			Requests: p.intVar("RATE_LIMIT_REQUESTS", 100),
			Window:   p.durationVar("RATE_LIMIT_WINDOW", time.Minute),
		},

		Retry: RetryConfig{
			Interval:   p.durationVar("SAVE_RETRY_INTERVAL", 5*time.Second),
			MaxPending: p.intVar("SAVE_RETRY_MAX_PENDING", 1000),
		},

		CORSOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.JWT.Secret == "" && cfg.Env == EnvDevelopment {
		cfg.JWT.Secret = devJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var errs []error
	if c.Storage.Backend == "postgres" && (c.Storage.DBUser == "" || c.Storage.DBName == "") {
		errs = append(errs, errors.New("DB_USER and DB_NAME are required when STORAGE_BACKEND=postgres"))
	}
	if c.Storage.Backend == "sqlite" && c.Storage.SQLitePath == "" {
		errs = append(errs, errors.New("SQLITE_PATH is required when STORAGE_BACKEND=sqlite"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required outside development"))
	}
	if c.Env == EnvProduction && c.JWT.Secret == devJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must not be the development default in production"))
	}
	if _, err := domain.ParseQuotaTiers(c.Plan.QuotaTiers); err != nil {
		errs = append(errs, fmt.Errorf("PLAN_QUOTA_TIERS: %w", err))
	}
	if _, err := catalog.ByName(c.Plan.Catalog); err != nil {
		errs = append(errs, fmt.Errorf("PLAN_CATALOG: %w", err))
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		errs = append(errs, fmt.Errorf("APP_TIMEZONE: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// PostgresDSN builds the connection URL from the DB_* settings.
func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Storage.DBUser, c.Storage.DBPassword),
		Host:     c.Storage.DBHost + ":" + c.Storage.DBPort,
		Path:     "/" + c.Storage.DBName,
		RawQuery: "sslmode=" + c.Storage.DBSSLMode,
	}
	return u.String()
}

// Location is the zone "today" is resolved in. Validate has already checked it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) UsingDevSecret() bool {
	return c.JWT.Secret == devJWTSecret
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// envParser collects every malformed variable instead of stopping at the first.
type envParser struct {
	errs []error
}

func (p *envParser) intVar(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: not an integer: %q", key, raw))
		return fallback
	}
	return v
}

func (p *envParser) boolVar(key string, fallback bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: not a boolean: %q", key, raw))
		return fallback
	}
	return v
}

func (p *envParser) durationVar(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: not a duration: %q", key, raw))
		return fallback
	}
	return v
}
