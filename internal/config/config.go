package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/panampa98/portfolio/internal/portfolio"
	"github.com/panampa98/portfolio/pkg/logger"
	"github.com/panampa98/portfolio/pkg/redis"
	"github.com/panampa98/portfolio/pkg/storage"
)

// Document sources.
const (
	SourceEmbed = "embed"
	SourceDir   = "dir"
	SourceHTTP  = "http"
	SourceS3    = "s3"
)

// Document caches.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the full runtime configuration, read from the environment.
type Config struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`

	Log     logger.Config
	Sentry  logger.SentryConfig
	Site    Site
	Lang    Lang
	Cookie  Cookie
	Redis   redis.Config
	Storage storage.Config
}

// Site describes the published site.
type Site struct {
	Name            string   `env:"SITE_NAME" envDefault:"DevPold"`
	Languages       []string `env:"LANGUAGES" envSeparator:"," envDefault:"en,es"`
	DefaultLanguage string   `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	Negotiate       bool     `env:"LANG_NEGOTIATE" envDefault:"false"`
}

// Lang selects where language documents come from and how they are cached.
type Lang struct {
	Source      string        `env:"LANG_SOURCE" envDefault:"embed"`
	Dir         string        `env:"LANG_DIR"`
	BaseURL     string        `env:"LANG_BASE_URL"`
	HTTPTimeout time.Duration `env:"LANG_HTTP_TIMEOUT" envDefault:"5s"`
	Cache       string        `env:"LANG_CACHE" envDefault:"none"`
	CacheTTL    time.Duration `env:"LANG_CACHE_TTL" envDefault:"5m"`
}

// Cookie configures the stored language preference.
type Cookie struct {
	Name   string `env:"LANG_COOKIE" envDefault:"lang"`
	Secret string `env:"COOKIE_SECRET"`
	Secure bool   `env:"COOKIE_SECURE" envDefault:"false"`
}

// Load reads .env files, then the environment, and validates the result.
// Without arguments it reads ./.env if present; named files must exist.
// Variables already set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(ErrLoadEnvFile, err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return nil, errors.Join(ErrLoadEnvFile, err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field requirements.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Languages(); err != nil {
		errs = append(errs, err)
	}

	switch c.Lang.Source {
	case SourceEmbed:
	case SourceDir:
		if c.Lang.Dir == "" {
			errs = append(errs, fmt.Errorf("LANG_DIR is required for source %q", c.Lang.Source))
		}
	case SourceHTTP:
		if c.Lang.BaseURL == "" {
			errs = append(errs, fmt.Errorf("LANG_BASE_URL is required for source %q", c.Lang.Source))
		}
	case SourceS3:
		if c.Storage.Bucket == "" {
			errs = append(errs, fmt.Errorf("STORAGE_BUCKET is required for source %q", c.Lang.Source))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown LANG_SOURCE %q", c.Lang.Source))
	}

	switch c.Lang.Cache {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.Redis.URL == "" {
			errs = append(errs, fmt.Errorf("REDIS_URL is required for cache %q", c.Lang.Cache))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown LANG_CACHE %q", c.Lang.Cache))
	}

	if c.Cookie.Name == "" {
		errs = append(errs, errors.New("LANG_COOKIE must not be empty"))
	}
	if c.Cookie.Secret != "" && len(c.Cookie.Secret) < 32 {
		errs = append(errs, errors.New("COOKIE_SECRET must be at least 32 bytes"))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalid}, errs...)...)
	}
	return nil
}

// Languages builds the supported set with the default first.
func (c *Config) Languages() (portfolio.Languages, error) {
	return portfolio.NewLanguages(c.Site.DefaultLanguage, c.Site.Languages...)
}
