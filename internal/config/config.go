// Package config reads storefront settings from the environment (and an optional .env file).
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config is every setting the storefront reads at startup.
type Config struct {
	BackendURL string        `envconfig:"BACKEND_URL" default:"http://localhost:8001"`
	Port       string        `envconfig:"PORT"        default:":8080"`
	LogLevel   string        `envconfig:"LOG_LEVEL"   default:"info"`
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	CORSOrigin string        `envconfig:"CORS_ORIGIN"`

	// --- Admin session cookie ---
	SessionSecret string        `envconfig:"SESSION_SECRET"`
	SessionCookie string        `envconfig:"SESSION_COOKIE" default:"adminToken"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL"    default:"720h"`
	CookieSecure  bool          `envconfig:"COOKIE_SECURE"  default:"false"`

	// --- Dashboard view state ---
	ViewStateBackend string        `envconfig:"VIEWSTATE_BACKEND" default:"memory"`
	ViewStateTTL     time.Duration `envconfig:"VIEWSTATE_TTL"     default:"30m"`
	RedisAddr        string        `envconfig:"REDIS_ADDR"        default:"localhost:6379"`
	RedisPassword    string        `envconfig:"REDIS_PASSWORD"`
	RedisDB          int           `envconfig:"REDIS_DB"          default:"0"`

	// --- Storefront variants ---
	VideoShowcase    bool `envconfig:"FEATURE_VIDEO_SHOWCASE" default:"true"`
	FilterPanel      bool `envconfig:"FEATURE_FILTER_PANEL"   default:"true"`
	HomeSectionLimit int  `envconfig:"HOME_SECTION_LIMIT"     default:"4"`

	// --- Tracing ---
	TraceExporter   string  `envconfig:"OTEL_TRACES_EXPORTER"        default:"none"`
	TraceEndpoint   string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4318"`
	TraceInsecure   bool    `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	TraceService    string  `envconfig:"OTEL_SERVICE_NAME"           default:"bklyn-storefront"`
	TraceSampleRate float64 `envconfig:"OTEL_TRACES_SAMPLE_RATE"     default:"1.0"`
}

// Load reads .env when present, then the process environment.
func Load(logger *logrus.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}
	return Process()
}

// Process fills a Config from the environment alone and validates it.
func Process() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("configuration error: BACKEND_URL is empty")
	}
	if !strings.Contains(c.Port, ":") {
		c.Port = ":" + c.Port
	}
	switch c.ViewStateBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("configuration error: VIEWSTATE_BACKEND must be memory or redis, got %q", c.ViewStateBackend)
	}
	if c.HomeSectionLimit <= 0 {
		return fmt.Errorf("configuration error: HOME_SECTION_LIMIT must be positive")
	}
	switch c.TraceExporter {
	case "none", "stdout", "otlp":
	default:
		return fmt.Errorf("configuration error: OTEL_TRACES_EXPORTER must be none, stdout or otlp, got %q", c.TraceExporter)
	}
	if c.TraceSampleRate < 0 || c.TraceSampleRate > 1 {
		return fmt.Errorf("configuration error: OTEL_TRACES_SAMPLE_RATE must be between 0 and 1")
	}
	return nil
}

// LogrusLevel parses LogLevel, falling back to info.
func (c *Config) LogrusLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
