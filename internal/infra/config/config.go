package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingCredentials is returned when a required variable is not set.
var ErrMissingCredentials = errors.New("отсутствуют обязательные переменные окружения")

const (
	defaultEndpoint      = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultRetrySchedule = "@every 10m"
	defaultHTTPTimeout   = 30 * time.Second
	defaultSendRate      = 1.0
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken   string
	TelegramToken    string
	TelegramChatID   string // Numeric chat id or @channel username
	Endpoint         string
	RetrySchedule    string // robfig/cron spec, e.g. "@every 10m"
	HTTPTimeout      time.Duration
	InitialFromDate  int64 // Zero means "start from now"
	TelegramSendRate float64
	DatabaseURL      string // Optional; enables the delivery journal
	LogLevel         string
	Environment      string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from getenv, usually os.Getenv.
func FromEnv(getenv func(string) string) (*AppConfig, error) {
	cfg := &AppConfig{
		PracticumToken: getenv("PRACTICUM_TOKEN"),
		TelegramToken:  getenv("TELEGRAM_TOKEN"),
		TelegramChatID: getenv("TELEGRAM_CHAT_ID"),
		DatabaseURL:    getenv("DATABASE_URL"),
	}

	var missing []string
	if cfg.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if cfg.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	cfg.Endpoint = getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}

	cfg.RetrySchedule = getenv("RETRY_SCHEDULE")
	if cfg.RetrySchedule == "" {
		cfg.RetrySchedule = defaultRetrySchedule
	}

	cfg.HTTPTimeout = defaultHTTPTimeout
	if v := getenv("HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q", v)
		}
		cfg.HTTPTimeout = d
	}

	if v := getenv("POLL_FROM_DATE"); v != "" {
		ts, err := strconv.ParseInt(v, 10, 64)
		if err != nil || ts < 0 {
			return nil, fmt.Errorf("invalid POLL_FROM_DATE %q", v)
		}
		cfg.InitialFromDate = ts
	}

	cfg.TelegramSendRate = defaultSendRate
	if v := getenv("TELEGRAM_SEND_RATE"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r < 0 {
			return nil, fmt.Errorf("invalid TELEGRAM_SEND_RATE %q", v)
		}
		cfg.TelegramSendRate = r
	}

	cfg.LogLevel = strings.ToLower(getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}
