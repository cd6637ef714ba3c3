package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultDatabaseURL   = "adledger.db"
	defaultHTTPAddr      = ":8080"
	defaultBotUsername   = "adledger_bot"
	defaultReferralBonus = "5"
	defaultTokenTTL      = "24h"
	defaultLogLevel      = "info"
	defaultBotToken      = "change-me-bot-token"
)

// Config holds the runtime settings for the reward ledger service.
type Config struct {
	AppEnv        string
	DatabaseURL   string
	HTTPAddr      string
	BotToken      string
	BotUsername   string
	AdminID       int64
	ReferralBonus float64
	TokenTTL      time.Duration
	LogLevel      string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.BotToken = strings.TrimSpace(getEnv("BOT_TOKEN", defaultBotToken))
	cfg.BotUsername = strings.TrimSpace(getEnv("BOT_USERNAME", defaultBotUsername))
	cfg.LogLevel = strings.TrimSpace(getEnv("LOG_LEVEL", defaultLogLevel))

	var err error
	cfg.AdminID, err = parseInt64Env("ADMIN_ID", "0")
	if err != nil {
		return nil, err
	}

	cfg.ReferralBonus, err = parseFloatEnv("REFERRAL_BONUS", defaultReferralBonus)
	if err != nil {
		return nil, err
	}

	cfg.TokenTTL, err = parseDurationEnv("TOKEN_TTL", defaultTokenTTL)
	if err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.ReferralBonus < 0 {
		return fmt.Errorf("REFERRAL_BONUS must be >= 0")
	}
	if cfg.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be > 0")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.BotToken, defaultBotToken) {
			return fmt.Errorf("in prod/release BOT_TOKEN must be set and not default")
		}
		if cfg.AdminID <= 0 {
			return fmt.Errorf("in prod/release ADMIN_ID must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseInt64Env(name, fallback string) (int64, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseFloatEnv(name, fallback string) (float64, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return f, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
