package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - empty default: optional sinks (database, telegram) that degrade to no-ops when unset
// - default: values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Telegram   TelegramConfig
	Submission SubmissionConfig
	CORS       CORSConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"PORT" default:"3002"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	PortMaxAttempts int           `envconfig:"PORT_MAX_ATTEMPTS" default:"10"`
	StaticDir       string        `envconfig:"STATIC_DIR" default:"./public"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	URL             string        `envconfig:"DATABASE_URL"`
	FallbackURL     string        `envconfig:"POSTGRES_URL"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"0"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	ConnectTimeout  time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`
}

type TelegramConfig struct {
	BotToken string        `envconfig:"TELEGRAM_BOT_TOKEN"`
	ChatID   string        `envconfig:"TELEGRAM_CHAT_ID"`
	APIBase  string        `envconfig:"TELEGRAM_API_BASE" default:"https://api.telegram.org"`
	Timeout  time.Duration `envconfig:"TELEGRAM_TIMEOUT" default:"10s"`
}

type SubmissionConfig struct {
	TimeZone       string `envconfig:"DISPLAY_TIMEZONE" default:"Asia/Tashkent"`
	TimeZoneOffset int    `envconfig:"DISPLAY_TIMEZONE_OFFSET" default:"18000"` // 5*60*60
	TimeFormat     string `envconfig:"DISPLAY_TIME_FORMAT" default:"02/01/2006, 15:04:05"`
	Currency       string `envconfig:"CURRENCY_LABEL" default:"so'm"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tashkent"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"18000"` // 5*60*60
}

// DSN returns DATABASE_URL, falling back to POSTGRES_URL. Empty disables persistence.
func (c *DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return c.FallbackURL
}

func (c *DBConfig) Enabled() bool {
	return c.DSN() != ""
}

func (c *TelegramConfig) HasBotToken() bool {
	return c.BotToken != ""
}

func (c *TelegramConfig) HasChatID() bool {
	return c.ChatID != ""
}

func (c *TelegramConfig) Enabled() bool {
	return c.HasBotToken() && c.HasChatID()
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Server.PortMaxAttempts < 1 {
		return Config{}, fmt.Errorf("PORT_MAX_ATTEMPTS must be positive, got %d", cfg.Server.PortMaxAttempts)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            8889, // Test port
			Host:            "127.0.0.1",
			PortMaxAttempts: 10,
			ShutdownTimeout: 5 * time.Second,
		},
		Telegram: TelegramConfig{
			APIBase: "http://127.0.0.1:0",
			Timeout: 2 * time.Second,
		},
		Submission: SubmissionConfig{
			TimeZone:       "Asia/Tashkent",
			TimeZoneOffset: 18000,
			TimeFormat:     "02/01/2006, 15:04:05",
			Currency:       "so'm",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tashkent",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 18000,
		},
	}
}
