package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"

	"voicestock_server/pkg/apperr"
)

type Config struct {
	Environment string

	// OpenAI
	OpenAIAPIKey   string
	LLMModel       string
	LLMMaxTokens   int
	LLMTemperature float64

	// Telegram (consumed by the surrounding bot, validated here)
	BotToken       string
	AllowedUserIDs []int64

	// Google Sheets (consumed by the surrounding store, validated here)
	SheetsCredentialsB64 string
	SheetKey             string

	// Timezone for stamping the current date on utterances
	Timezone string
}

func Load() (*Config, error) {
	// .env for local development; env vars win in deployment
	_ = godotenv.Load()

	userIDs, err := parseUserIDs(getEnv("ALLOWED_USER_IDS", ""))
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment: getEnv("ENV", "development"),

		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		LLMModel:       getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMMaxTokens:   getEnvInt("LLM_MAX_TOKENS", 2048),
		LLMTemperature: getEnvFloat("LLM_TEMPERATURE", 0),

		BotToken:       getEnv("BOT_TOKEN", ""),
		AllowedUserIDs: userIDs,

		SheetsCredentialsB64: getEnv("GOOGLE_SHEETS_CREDENTIALS_BASE64", ""),
		SheetKey:             getEnv("GOOGLE_SHEET_KEY", ""),

		Timezone: getEnv("TIMEZONE", "Europe/Moscow"),
	}, nil
}

// Validate checks that everything the running system needs is present.
func (c *Config) Validate() error {
	var missing []string
	if c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.BotToken == "" {
		missing = append(missing, "BOT_TOKEN")
	}
	if len(c.AllowedUserIDs) == 0 {
		missing = append(missing, "ALLOWED_USER_IDS")
	}
	if c.SheetsCredentialsB64 == "" {
		missing = append(missing, "GOOGLE_SHEETS_CREDENTIALS_BASE64")
	}
	if c.SheetKey == "" {
		missing = append(missing, "GOOGLE_SHEET_KEY")
	}
	if len(missing) > 0 {
		return apperr.ConfigError(fmt.Sprintf("missing required environment variables: %s", strings.Join(missing, ", ")))
	}
	return nil
}

// Location resolves the configured timezone, falling back to UTC when the
// name is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GoogleCredentials decodes the base64-encoded service account JSON.
func (c *Config) GoogleCredentials() (map[string]any, error) {
	decoded, err := base64.StdEncoding.DecodeString(c.SheetsCredentialsB64)
	if err != nil {
		return nil, apperr.ConfigError("invalid GOOGLE_SHEETS_CREDENTIALS_BASE64").WithError(err)
	}
	var creds map[string]any
	if err := json.Unmarshal(decoded, &creds); err != nil {
		return nil, apperr.ConfigError("invalid GOOGLE_SHEETS_CREDENTIALS_BASE64").WithError(err)
	}
	return creds, nil
}

// IsUserAllowed reports whether a Telegram user ID is on the allow list.
func (c *Config) IsUserAllowed(userID int64) bool {
	for _, id := range c.AllowedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func parseUserIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, apperr.ConfigError("ALLOWED_USER_IDS must be comma-separated integers").WithError(err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
