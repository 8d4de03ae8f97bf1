package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Scraping  ScrapingConfig
	Store     StoreConfig
	Lifecycle LifecycleConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig must match the marketplace auth service that mints the tokens.
type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration string        `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:"creator-market-auth"`
	Audience string        `envconfig:"JWT_AUDIENCE" default:"creator-market"`
	Leeway   time.Duration `envconfig:"JWT_LEEWAY" default:"30s"`
}

type ScrapingConfig struct {
	BaseURL         string        `envconfig:"SCRAPER_BASE_URL" default:"http://localhost:9000"`
	RequestTimeout  time.Duration `envconfig:"SCRAPER_REQUEST_TIMEOUT" default:"30s"`
	GoogleCooldown  time.Duration `envconfig:"SCRAPER_GOOGLE_COOLDOWN" default:"15m"`
	BingCooldown    time.Duration `envconfig:"SCRAPER_BING_COOLDOWN" default:"10m"`
	DefaultMaxItems int           `envconfig:"SCRAPER_DEFAULT_MAX_RESULTS" default:"50"`
}

// LifecycleConfig controls the cadence of cooldown and countdown tickers.
type LifecycleConfig struct {
	TickInterval time.Duration `envconfig:"TICK_INTERVAL" default:"1s"`
}

// StoreConfig selects the durable key-value backend for cooldown state.
type StoreConfig struct {
	Backend string `envconfig:"KV_BACKEND" default:"postgres"`
}

const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// Validate rejects values envconfig accepts but the service cannot run with.
func (c Config) Validate() error {
	var problems []string
	if c.Scraping.GoogleCooldown <= 0 {
		problems = append(problems, "SCRAPER_GOOGLE_COOLDOWN must be positive")
	}
	if c.Scraping.BingCooldown <= 0 {
		problems = append(problems, "SCRAPER_BING_COOLDOWN must be positive")
	}
	if c.Scraping.DefaultMaxItems < 1 || c.Scraping.DefaultMaxItems > 500 {
		problems = append(problems, "SCRAPER_DEFAULT_MAX_RESULTS must be within 1..500")
	}
	if c.Scraping.RequestTimeout <= 0 {
		problems = append(problems, "SCRAPER_REQUEST_TIMEOUT must be positive")
	}
	if c.Lifecycle.TickInterval <= 0 {
		problems = append(problems, "TICK_INTERVAL must be positive")
	}
	switch c.Store.Backend {
	case StoreBackendPostgres, StoreBackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("KV_BACKEND %q is not one of postgres, memory", c.Store.Backend))
	}
	if _, err := time.ParseDuration(c.JWT.Duration); err != nil {
		problems = append(problems, "JWT_DURATION is not a duration")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
			Issuer:   "creator-market-auth",
			Audience: "creator-market",
		},
		Scraping: ScrapingConfig{
			BaseURL:         "http://localhost:9000",
			RequestTimeout:  5 * time.Second,
			GoogleCooldown:  15 * time.Minute,
			BingCooldown:    10 * time.Minute,
			DefaultMaxItems: 50,
		},
		Store: StoreConfig{
			Backend: StoreBackendMemory,
		},
		Lifecycle: LifecycleConfig{
			TickInterval: time.Second,
		},
	}
}
