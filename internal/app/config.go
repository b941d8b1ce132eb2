package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"

	"github.com/yungbote/bookfront/internal/observability"
)

// Config is read once at startup and passed down; nothing reads the
// environment after LoadConfig returns.
type Config struct {
	APIURL        string        `env:"API_URL" envDefault:"http://localhost:5000/api"`
	ReaderURL     string        `env:"READER_URL" envDefault:"http://localhost:3002"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
	APIMaxRetries int           `env:"API_MAX_RETRIES" envDefault:"1"`

	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	LogMode      string `env:"LOG_MODE" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL"`
	LogRedaction bool   `env:"LOG_REDACTION_ENABLED" envDefault:"true"`
	LogHashSalt  string `env:"LOG_HASH_SALT"`

	RedisAddr           string        `env:"REDIS_ADDR"`
	RedisPrefix         string        `env:"REDIS_PREFIX" envDefault:"bookfront"`
	LandingPageCacheTTL time.Duration `env:"LANDING_PAGE_CACHE_TTL" envDefault:"0s"`

	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	ServiceName    string `env:"SERVICE_NAME" envDefault:"bookfront"`
	Environment    string `env:"ENVIRONMENT" envDefault:"local"`

	SupportEmail string `env:"SUPPORT_EMAIL" envDefault:"support@word2wallet.com"`
	BrandName    string `env:"BRAND_NAME" envDefault:"Word2Wallet"`

	Otel observability.OtelConfig
}

// LoadConfig loads an optional .env file, then parses the environment.
// A missing env file is not an error.
func LoadConfig() (Config, error) {
	path := strings.TrimSpace(os.Getenv("BOOKFRONT_ENV_FILE"))
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	c.ReaderURL = strings.TrimRight(strings.TrimSpace(c.ReaderURL), "/")
	c.RedisAddr = strings.TrimSpace(c.RedisAddr)
	if c.APIMaxRetries < 0 {
		c.APIMaxRetries = 0
	}
	c.Otel.ServiceName = c.ServiceName
	c.Otel.Environment = c.Environment
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIURL, validation.Required, is.URL),
		validation.Field(&c.ReaderURL, validation.Required, is.URL),
		validation.Field(&c.HTTPAddr, validation.Required),
		validation.Field(&c.APITimeout, validation.Min(time.Millisecond)),
		validation.Field(&c.ShutdownTimeout, validation.Min(time.Millisecond)),
		validation.Field(&c.SupportEmail, validation.Required, is.EmailFormat),
		validation.Field(&c.LandingPageCacheTTL, validation.Min(time.Duration(0))),
	)
}

// CacheEnabled reports whether landing pages are cached in redis.
func (c Config) CacheEnabled() bool {
	return c.RedisAddr != "" && c.LandingPageCacheTTL > 0
}
