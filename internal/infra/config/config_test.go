package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func requiredVars() map[string]string {
	return map[string]string{
		"PRACTICUM_TOKEN":  "p-token",
		"TELEGRAM_TOKEN":   "t-token",
		"TELEGRAM_CHAT_ID": "123456",
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envOf(requiredVars()))
	require.NoError(t, err)

	assert.Equal(t, "p-token", cfg.PracticumToken)
	assert.Equal(t, "t-token", cfg.TelegramToken)
	assert.Equal(t, "123456", cfg.TelegramChatID)
	assert.Equal(t, defaultEndpoint, cfg.Endpoint)
	assert.Equal(t, "@every 10m", cfg.RetrySchedule)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Zero(t, cfg.InitialFromDate)
	assert.Equal(t, 1.0, cfg.TelegramSendRate)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
}

func TestFromEnvMissingCredentials(t *testing.T) {
	for _, key := range []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"} {
		t.Run(key, func(t *testing.T) {
			vars := requiredVars()
			delete(vars, key)

			_, err := FromEnv(envOf(vars))
			assert.ErrorIs(t, err, ErrMissingCredentials)
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestFromEnvListsEveryMissingVariable(t *testing.T) {
	_, err := FromEnv(envOf(nil))
	require.ErrorIs(t, err, ErrMissingCredentials)
	assert.ErrorContains(t, err, "PRACTICUM_TOKEN, TELEGRAM_TOKEN, TELEGRAM_CHAT_ID")
}

func TestFromEnvOverrides(t *testing.T) {
	vars := requiredVars()
	vars["PRACTICUM_ENDPOINT"] = "http://localhost:8080/statuses/"
	vars["RETRY_SCHEDULE"] = "*/5 * * * *"
	vars["HTTP_TIMEOUT"] = "5s"
	vars["POLL_FROM_DATE"] = "2"
	vars["TELEGRAM_SEND_RATE"] = "0.5"
	vars["DATABASE_URL"] = "postgres://localhost/bot"
	vars["LOG_LEVEL"] = "DEBUG"
	vars["ENVIRONMENT"] = "Production"

	cfg, err := FromEnv(envOf(vars))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/statuses/", cfg.Endpoint)
	assert.Equal(t, "*/5 * * * *", cfg.RetrySchedule)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, int64(2), cfg.InitialFromDate)
	assert.Equal(t, 0.5, cfg.TelegramSendRate)
	assert.Equal(t, "postgres://localhost/bot", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
}

func TestFromEnvRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"HTTP_TIMEOUT":       "soon",
		"POLL_FROM_DATE":     "-1",
		"TELEGRAM_SEND_RATE": "fast",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			vars := requiredVars()
			vars[key] = value

			_, err := FromEnv(envOf(vars))
			assert.ErrorContains(t, err, key)
		})
	}
}
